package main

import (
	"github.com/expr-lang/expr/ast"
)

// RulePrefixVisitor collects the literal prefixes passed to under() calls,
// they are reported back when no row falls under them.
type RulePrefixVisitor struct {
	prefixes []string
}

func (v *RulePrefixVisitor) Visit(node *ast.Node) {
	var ok bool
	var callNode *ast.CallNode
	var identifierNode *ast.IdentifierNode
	var stringNode *ast.StringNode

	if callNode, ok = (*node).(*ast.CallNode); ok && len(callNode.Arguments) > 0 && callNode.Callee != nil {
		if identifierNode, ok = callNode.Callee.(*ast.IdentifierNode); ok && identifierNode.Value == underFunctionName {
			if stringNode, ok = callNode.Arguments[0].(*ast.StringNode); ok {
				v.prefixes = append(v.prefixes, stringNode.Value)
			}
		}
	}
}
