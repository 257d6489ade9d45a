package main

import (
	"fmt"
	"github.com/cnuhqi5485/certification/contracts"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"strings"
	"sync"
)

const underFunctionName = "under"

// Rule variables, every one of them is a string except columns.
const (
	ruleVarItemId   = "item_id"
	ruleVarLocation = "location"
	ruleVarTarget   = "target"
	ruleVarQuestion = "question"
	ruleVarAnswer   = "answer"
	ruleVarVerdict  = "verdict"
	ruleVarReviewer = "reviewer"
	ruleVarColumns  = "columns"
)

var ruleVarColumnNames = map[string]string{
	ruleVarItemId:   contracts.ColumnItemId,
	ruleVarLocation: contracts.ColumnLocation,
	ruleVarTarget:   contracts.ColumnTarget,
	ruleVarQuestion: contracts.ColumnQuestion,
	ruleVarAnswer:   contracts.ColumnAnswer,
	ruleVarVerdict:  contracts.ColumnVerdict,
	ruleVarReviewer: contracts.ColumnReviewer,
}

type AssignmentRuleEvaluator struct {
	compilerOptions []expr.Option
	vmPool          *sync.Pool
}

type AssignmentRule struct {
	source   string
	program  *vm.Program
	prefixes []string
	vmPool   *sync.Pool
}

func NewAssignmentRuleEvaluator() *AssignmentRuleEvaluator {
	return &AssignmentRuleEvaluator{
		compilerOptions: []expr.Option{
			expr.Env(makeRuleEnv(&contracts.Table{}, &contracts.Row{})),
			expr.AsBool(),
			expr.Optimize(false),
			anyOfFunction,
			blankFunction,
		},

		vmPool: &sync.Pool{
			New: func() any {
				return new(vm.VM)
			},
		},
	}
}

func (e *AssignmentRuleEvaluator) Compile(rule string) (contracts.RuleProgram, error) {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		return nil, fmt.Errorf("%w: rule is empty", contracts.RuleError)
	}

	visitor := &RulePrefixVisitor{}
	options := append(append([]expr.Option{}, e.compilerOptions...), expr.Patch(visitor))

	program, err := expr.Compile(rule, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.RuleError, err.Error())
	}

	return &AssignmentRule{
		source:   rule,
		program:  program,
		prefixes: visitor.prefixes,
		vmPool:   e.vmPool,
	}, nil
}

func (r *AssignmentRule) Match(table *contracts.Table, row *contracts.Row) (bool, error) {
	v := r.vmPool.Get().(*vm.VM)
	output, err := v.Run(r.program, makeRuleEnv(table, row))
	r.vmPool.Put(v)

	if err != nil {
		return false, fmt.Errorf("%w: %s: row %d: %s", contracts.RuleError, r.source, row.Line+1, err.Error())
	}

	matched, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s: expected bool, got %T", contracts.RuleError, r.source, output)
	}
	return matched, nil
}

func (r *AssignmentRule) Prefixes() []string {
	return r.prefixes
}

func makeRuleEnv(table *contracts.Table, row *contracts.Row) map[string]any {
	env := make(map[string]any, len(ruleVarColumnNames)+2)

	for variable, column := range ruleVarColumnNames {
		env[variable] = table.Get(row, column)
	}

	columns := make(map[string]string, len(table.Header))
	for _, column := range table.Header {
		columns[column] = table.Get(row, column)
	}
	env[ruleVarColumns] = columns

	itemId := table.Get(row, contracts.ColumnItemId)
	env[underFunctionName] = func(prefix string) bool {
		return isUnder(itemId, prefix)
	}

	return env
}
