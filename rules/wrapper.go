package rules

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/lintrule/rule"
	"github.com/viant/lintrule/unit"
)

// WrapperTypeEqualityName is the wrapper comparison rule name
const WrapperTypeEqualityName = "WrapperTypeEqualityRule"

var wrapperTypes = map[string]bool{
	"Integer":   true,
	"Long":      true,
	"Short":     true,
	"Byte":      true,
	"Character": true,
	"Boolean":   true,
	"Float":     true,
	"Double":    true,
}

func isWrapper(typeName string) bool {
	return wrapperTypes[strings.TrimPrefix(typeName, "java.lang.")]
}

// wrapperTypeEquality reports == and != between two wrapper typed operands
func wrapperTypeEquality(aUnit *unit.Unit, ctx *rule.Context, reporter rule.Reporter) error {
	for _, expr := range unit.FindNodesByType(aUnit.Root(), "binary_expression") {
		operator := expr.ChildByFieldName("operator")
		if operator == nil || (operator.Type() != "==" && operator.Type() != "!=") {
			continue
		}
		if !wrapperOperand(aUnit, expr.ChildByFieldName("left")) || !wrapperOperand(aUnit, expr.ChildByFieldName("right")) {
			continue
		}
		reporter.AddViolationWithMessageArgs(ctx, expr, "java.oop.WrapperTypeEqualityRule.violation.msg", aUnit.Content(expr))
	}
	return nil
}

func wrapperOperand(aUnit *unit.Unit, node *sitter.Node) bool {
	for node != nil && node.Type() == "parenthesized_expression" {
		node = node.NamedChild(0)
	}
	typeName, ok := aUnit.TypeOf(node)
	return ok && isWrapper(typeName)
}

// NewWrapperTypeEquality creates wrapper comparison rule
func NewWrapperTypeEquality(options ...rule.Option) *rule.Extension {
	options = append([]rule.Option{
		rule.WithDescription("java.oop.WrapperTypeEqualityRule.rule.desc"),
		rule.WithMessage("java.oop.WrapperTypeEqualityRule.violation.msg"),
	}, options...)
	return rule.Extend(WrapperTypeEqualityName, rule.VisitorFunc(wrapperTypeEquality), options...)
}
