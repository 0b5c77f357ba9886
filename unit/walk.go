package unit

import sitter "github.com/smacker/go-tree-sitter"

// Walk visits node and its descendants depth first, returning false skips children
func Walk(node *sitter.Node, fn func(node *sitter.Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		Walk(child, fn)
	}
}

// FindNodesByType finds all nodes of the given types in the tree
func FindNodesByType(node *sitter.Node, nodeTypes ...string) []*sitter.Node {
	var results []*sitter.Node
	Walk(node, func(n *sitter.Node) bool {
		for _, candidate := range nodeTypes {
			if n.Type() == candidate {
				results = append(results, n)
				break
			}
		}
		return true
	})
	return results
}

// EnclosingNode returns the closest ancestor of the given type
func EnclosingNode(node *sitter.Node, nodeType string) *sitter.Node {
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		if parent.Type() == nodeType {
			return parent
		}
	}
	return nil
}
