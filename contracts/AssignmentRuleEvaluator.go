package contracts

type RuleProgram interface {
	Match(table *Table, row *Row) (bool, error)
	// Prefixes are the item prefixes the rule names through under().
	Prefixes() []string
}

type AssignmentRuleEvaluator interface {
	Compile(rule string) (RuleProgram, error)
}
