package rules

import (
	"regexp"

	"github.com/viant/lintrule/rule"
	"github.com/viant/lintrule/unit"
)

// ClassNamingName is the class naming rule name
const ClassNamingName = "ClassNamingShouldBeCamelRule"

var upperCamelCase = regexp.MustCompile(`^I?([A-Z][a-z0-9]+)+(([A-Z])|(DO|DTO|VO|DAO|BO|DAOImpl|YunOS|AO|PO))?$`)

func classNaming(aUnit *unit.Unit, ctx *rule.Context, reporter rule.Reporter) error {
	for _, declaration := range unit.FindNodesByType(aUnit.Root(), "class_declaration", "interface_declaration", "enum_declaration") {
		name := declaration.ChildByFieldName("name")
		if name == nil {
			continue
		}
		if className := aUnit.Content(name); !upperCamelCase.MatchString(className) {
			reporter.AddViolationWithMessageArgs(ctx, name, "java.naming.ClassNamingShouldBeCamelRule.violation.msg", className)
		}
	}
	return nil
}

// NewClassNaming creates class naming rule
func NewClassNaming(options ...rule.Option) *rule.Extension {
	options = append([]rule.Option{
		rule.WithDescription("java.naming.ClassNamingShouldBeCamelRule.rule.desc"),
		rule.WithMessage("java.naming.ClassNamingShouldBeCamelRule.violation.msg"),
	}, options...)
	return rule.Extend(ClassNamingName, rule.VisitorFunc(classNaming), options...)
}
