// Package rules provides java rules built on the rule extension.
package rules

import "github.com/viant/lintrule/rule"

// All returns all rules sharing the supplied options
func All(options ...rule.Option) []rule.Rule {
	return []rule.Rule{
		NewWrapperTypeEquality(options...),
		NewClassNaming(options...),
	}
}
