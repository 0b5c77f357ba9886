package rule

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/lintrule/unit"
)

// Rule represents host facing rule contract
type Rule interface {
	// Name returns rule name
	Name() string
	// Visit is invoked by the host once per compilation unit
	Visit(aUnit *unit.Unit, ctx *Context) error
	// Description returns localized rule description
	Description() string
	// Message returns localized default violation message
	Message() string
	// SetDescription sets rule description, description is a message key
	SetDescription(description string)
	// SetMessage sets default violation message, message is a message key
	SetMessage(message string)
}

// Visitor implements rule specific checks, it is called once the unit has been resolved
type Visitor interface {
	Visit(aUnit *unit.Unit, ctx *Context, reporter Reporter) error
}

// VisitorFunc adapts a function to Visitor
type VisitorFunc func(aUnit *unit.Unit, ctx *Context, reporter Reporter) error

// Visit calls fn
func (fn VisitorFunc) Visit(aUnit *unit.Unit, ctx *Context, reporter Reporter) error {
	return fn(aUnit, ctx, reporter)
}

// Reporter records violations, message arguments are message keys
type Reporter interface {
	AddViolation(ctx *Context, node *sitter.Node)
	AddViolationWithMessage(ctx *Context, node *sitter.Node, message string)
	AddViolationWithMessageArgs(ctx *Context, node *sitter.Node, message string, args ...interface{})
}

// Resolver attaches type information to a unit in place
type Resolver interface {
	Resolve(aUnit *unit.Unit, ctx *Context) error
}

// ResolverFunc adapts a function to Resolver
type ResolverFunc func(aUnit *unit.Unit, ctx *Context) error

// Resolve calls fn
func (fn ResolverFunc) Resolve(aUnit *unit.Unit, ctx *Context) error {
	return fn(aUnit, ctx)
}

// Translator translates message keys, implementations return the key when translation fails
type Translator interface {
	Lookup(key string) string
	LookupWithArgs(key string, args ...interface{}) string
}

type passthrough struct{}

func (passthrough) Lookup(key string) string { return key }

func (passthrough) LookupWithArgs(key string, args ...interface{}) string { return key }
