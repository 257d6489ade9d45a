package main

import (
	"fmt"
	"github.com/expr-lang/expr"
)

var ruleCanonicalizer = NewCanonicalizer()

var checkAnyOf = func(args ...any) (any, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("any_of: expected a field and at least one value, got %d arguments", len(args))
	}

	field := ruleCanonicalizer.Key(fmt.Sprint(args[0]))
	for _, arg := range args[1:] {
		if field == ruleCanonicalizer.Key(fmt.Sprint(arg)) {
			return true, nil
		}
	}
	return false, nil
}

var checkBlank = func(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("blank: expected 1 argument, got %d", len(args))
	}
	return ruleCanonicalizer.IsBlank(fmt.Sprint(args[0])), nil
}

var anyOfFunction = expr.Function("any_of", checkAnyOf)
var blankFunction = expr.Function("blank", checkBlank)

// isUnder reports whether itemId is prefix itself or one of its sub-items,
// so under("1.2") holds for 1.2 and 1.2.3 but not for 1.20.
func isUnder(itemId string, prefix string) bool {
	itemKey := ruleCanonicalizer.Key(itemId)
	prefixKey := ruleCanonicalizer.Key(prefix)
	if prefixKey == "" {
		return false
	}

	return itemKey == prefixKey ||
		(len(itemKey) > len(prefixKey) && itemKey[:len(prefixKey)] == prefixKey && itemKey[len(prefixKey)] == '.')
}
