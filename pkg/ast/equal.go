package ast

import "reflect"

// Equal reports whether two trees are structurally identical: same shape,
// same operators, same literal values. Position is ignored, since two
// trees built from different source text (e.g. before/after a compiler
// pass that folds a subtree into a new node) are still "the same tree" for
// testing compiler idempotence.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Op != b.Op || a.Name != b.Name || a.Path != b.Path {
		return false
	}
	if !literalEqual(a.Literal, b.Literal) {
		return false
	}
	if len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if !Equal(a.Items[i], b.Items[i]) {
			return false
		}
	}
	if !Equal(a.Operand, b.Operand) {
		return false
	}
	if !Equal(a.Left, b.Left) {
		return false
	}
	return Equal(a.Right, b.Right)
}

func literalEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}
