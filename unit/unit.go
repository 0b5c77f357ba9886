package unit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// LanguageJava identifies java compilation units
const LanguageJava = "java"

var sequence uint64

// Unit represents a parsed compilation unit (one source file)
type Unit struct {
	ID       uint64 // process-wide, monotonically assigned at creation
	Path     string
	Language string
	Source   []byte

	tree        *sitter.Tree
	fingerprint uint64

	mux   sync.RWMutex
	types map[nodeKey]string
}

type nodeKey struct {
	start uint32
	end   uint32
	kind  string
}

// New creates a unit for already parsed tree, tree can be nil for synthetic units
func New(path string, source []byte, tree *sitter.Tree) *Unit {
	ret := &Unit{
		ID:       atomic.AddUint64(&sequence, 1),
		Path:     path,
		Language: LanguageJava,
		Source:   source,
		tree:     tree,
		types:    make(map[nodeKey]string),
	}
	ret.fingerprint = fingerprint(ret)
	return ret
}

// Parse parses java source into a unit
func Parse(ctx context.Context, path string, source []byte) (*Unit, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %v: %w", path, err)
	}
	return New(path, source, tree), nil
}

// Root returns root syntax node or nil
func (u *Unit) Root() *sitter.Node {
	if u.tree == nil {
		return nil
	}
	return u.tree.RootNode()
}

// Fingerprint returns structural fingerprint of this unit
func (u *Unit) Fingerprint() uint64 {
	return u.fingerprint
}

// Content returns node source text
func (u *Unit) Content(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	return node.Content(u.Source)
}

// Line returns 1-based node line
func (u *Unit) Line(node *sitter.Node) int {
	if node == nil {
		return 0
	}
	return int(node.StartPoint().Row) + 1
}

// SetType attaches resolved type to a node
func (u *Unit) SetType(node *sitter.Node, typeName string) {
	if node == nil || typeName == "" {
		return
	}
	u.mux.Lock()
	u.types[keyOf(node)] = typeName
	u.mux.Unlock()
}

// TypeOf returns type attached to a node
func (u *Unit) TypeOf(node *sitter.Node) (string, bool) {
	if node == nil {
		return "", false
	}
	u.mux.RLock()
	defer u.mux.RUnlock()
	typeName, ok := u.types[keyOf(node)]
	return typeName, ok
}

// TypeCount returns number of typed nodes
func (u *Unit) TypeCount() int {
	u.mux.RLock()
	defer u.mux.RUnlock()
	return len(u.types)
}

func keyOf(node *sitter.Node) nodeKey {
	return nodeKey{start: node.StartByte(), end: node.EndByte(), kind: node.Type()}
}
