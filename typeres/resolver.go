// Package typeres attaches declared java types to identifiers of a compilation unit.
package typeres

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/lintrule/rule"
	"github.com/viant/lintrule/unit"
)

var scopeTypes = map[string]bool{
	"class_body":                   true,
	"enum_body":                    true,
	"interface_body":               true,
	"method_declaration":           true,
	"constructor_declaration":      true,
	"lambda_expression":            true,
	"block":                        true,
	"for_statement":                true,
	"enhanced_for_statement":       true,
	"catch_clause":                 true,
	"try_with_resources_statement": true,
}

var literalTypes = map[string]string{
	"decimal_integer_literal":        "int",
	"hex_integer_literal":            "int",
	"octal_integer_literal":          "int",
	"binary_integer_literal":         "int",
	"decimal_floating_point_literal": "double",
	"string_literal":                 "String",
	"character_literal":              "char",
	"true":                           "boolean",
	"false":                          "boolean",
	"null_literal":                   "null",
}

// Resolver resolves identifier types from local, parameter and field declarations
type Resolver struct {
	logger *slog.Logger
}

type scopeKey struct {
	start uint32
	end   uint32
}

// members are visible in the whole body regardless of declaration order
var memberScopes = map[string]bool{
	"class_body":     true,
	"enum_body":      true,
	"interface_body": true,
}

type declaration struct {
	typeName string
	start    uint32
}

// symbols maps scope to declared names
type symbols map[scopeKey]map[string]declaration

func (s symbols) declare(scope, name *sitter.Node, identifier, typeName string) {
	key := scopeKey{start: scope.StartByte(), end: scope.EndByte()}
	names, ok := s[key]
	if !ok {
		names = map[string]declaration{}
		s[key] = names
	}
	names[identifier] = declaration{typeName: typeName, start: name.StartByte()}
}

func (s symbols) lookup(node *sitter.Node, name string) (string, bool) {
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		if !scopeTypes[parent.Type()] {
			continue
		}
		decl, ok := s[scopeKey{start: parent.StartByte(), end: parent.EndByte()}][name]
		if !ok {
			continue
		}
		if memberScopes[parent.Type()] || decl.start <= node.StartByte() {
			return decl.typeName, true
		}
	}
	return "", false
}

// Resolve attaches types to the unit nodes in place
func (r *Resolver) Resolve(aUnit *unit.Unit, ctx *rule.Context) error {
	root := aUnit.Root()
	if root == nil {
		return fmt.Errorf("unit %v has no syntax tree", aUnit.Path)
	}
	table := symbols{}
	r.declare(aUnit, root, table)
	resolved := 0
	unit.Walk(root, func(node *sitter.Node) bool {
		switch node.Type() {
		case "identifier":
			if _, ok := aUnit.TypeOf(node); ok {
				return true
			}
			if typeName, ok := table.lookup(node, aUnit.Content(node)); ok {
				aUnit.SetType(node, typeName)
				resolved++
			}
		case "field_access":
			object := node.ChildByFieldName("object")
			field := node.ChildByFieldName("field")
			if object == nil || field == nil || object.Type() != "this" {
				return true
			}
			if typeName, ok := table.lookupField(node, aUnit.Content(field)); ok {
				aUnit.SetType(field, typeName)
				aUnit.SetType(node, typeName)
				resolved++
			}
			return false
		default:
			if typeName, ok := literalTypes[node.Type()]; ok {
				aUnit.SetType(node, typeName)
			}
		}
		return true
	})
	source := ""
	if ctx != nil {
		source = ctx.SourceName
	}
	r.logger.Debug("resolved types", "source", source, "unit", aUnit.ID, "identifiers", resolved)
	return nil
}

func (s symbols) lookupField(node *sitter.Node, name string) (string, bool) {
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		switch parent.Type() {
		case "class_body", "enum_body":
			decl, ok := s[scopeKey{start: parent.StartByte(), end: parent.EndByte()}][name]
			return decl.typeName, ok
		}
	}
	return "", false
}

func (r *Resolver) declare(aUnit *unit.Unit, root *sitter.Node, table symbols) {
	unit.Walk(root, func(node *sitter.Node) bool {
		switch node.Type() {
		case "field_declaration", "local_variable_declaration", "constant_declaration":
			typeName := typeNameOf(aUnit, node.ChildByFieldName("type"))
			scope := enclosingScope(node)
			for i := 0; i < int(node.NamedChildCount()); i++ {
				declarator := node.NamedChild(i)
				if declarator.Type() != "variable_declarator" {
					continue
				}
				r.declareName(aUnit, table, scope, declarator.ChildByFieldName("name"), typeName+dimensionsOf(aUnit, declarator))
			}
		case "formal_parameter", "spread_parameter":
			typeName := typeNameOf(aUnit, node.ChildByFieldName("type"))
			name := node.ChildByFieldName("name")
			if name == nil {
				if declarator := findChild(node, "variable_declarator"); declarator != nil {
					name = declarator.ChildByFieldName("name")
				}
				typeName += "[]"
			}
			r.declareName(aUnit, table, enclosingScope(node), name, typeName)
		case "enhanced_for_statement":
			typeName := typeNameOf(aUnit, node.ChildByFieldName("type"))
			r.declareName(aUnit, table, node, node.ChildByFieldName("name"), typeName)
		case "catch_formal_parameter":
			typeName := ""
			if catchType := findChild(node, "catch_type"); catchType != nil {
				typeName = aUnit.Content(catchType)
			}
			r.declareName(aUnit, table, enclosingScope(node), node.ChildByFieldName("name"), typeName)
		case "resource":
			typeName := typeNameOf(aUnit, node.ChildByFieldName("type"))
			r.declareName(aUnit, table, enclosingScope(node), node.ChildByFieldName("name"), typeName)
		}
		return true
	})
}

func (r *Resolver) declareName(aUnit *unit.Unit, table symbols, scope, name *sitter.Node, typeName string) {
	if scope == nil || name == nil || typeName == "" {
		return
	}
	table.declare(scope, name, aUnit.Content(name), typeName)
	aUnit.SetType(name, typeName)
}

func enclosingScope(node *sitter.Node) *sitter.Node {
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		if scopeTypes[parent.Type()] {
			return parent
		}
	}
	return nil
}

func findChild(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == nodeType {
			return child
		}
	}
	return nil
}

func dimensionsOf(aUnit *unit.Unit, declarator *sitter.Node) string {
	if dimensions := declarator.ChildByFieldName("dimensions"); dimensions != nil {
		return aUnit.Content(dimensions)
	}
	return ""
}

// typeNameOf returns declared type without type arguments
func typeNameOf(aUnit *unit.Unit, node *sitter.Node) string {
	if node == nil {
		return ""
	}
	typeName := strings.TrimSpace(aUnit.Content(node))
	if index := strings.Index(typeName, "<"); index != -1 {
		suffix := ""
		if end := strings.LastIndex(typeName, ">"); end != -1 {
			suffix = typeName[end+1:]
		}
		typeName = typeName[:index] + suffix
	}
	return typeName
}

// New creates a resolver
func New(options ...Option) *Resolver {
	ret := &Resolver{}
	for _, opt := range options {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return ret
}

// Option represents resolver option
type Option func(r *Resolver)

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}
