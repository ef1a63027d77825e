// Package treehash computes a stable structural hash of a compiled
// expression tree, used to verify compiler idempotence and as a
// memoization key for repeated compilation of the same source tree.
package treehash

import (
	"github.com/mitchellh/hashstructure"

	"github.com/cesnet/pynspect/pkg/ast"
	"github.com/cesnet/pynspect/pkg/domain"
)

// Hash returns a structural hash of n: two trees with the same shape,
// operators and literal values hash identically regardless of the
// Position values recorded during parsing.
func Hash(n *ast.Node) (uint64, error) {
	return hashstructure.Hash(toHashable(n), nil)
}

// hashableNode mirrors ast.Node but normalizes domain-typed literals to
// plain, hashstructure-friendly values — time.Time and net.IP both carry
// unexported fields hashstructure can't see into, so a Datetime/IPRange
// literal would otherwise hash the same as any other instance of its type.
type hashableNode struct {
	Kind    ast.Kind
	Literal interface{}
	Path    string
	Name    string
	Items   []*hashableNode
	Op      ast.Op
	Operand *hashableNode
	Left    *hashableNode
	Right   *hashableNode
}

func toHashable(n *ast.Node) *hashableNode {
	if n == nil {
		return nil
	}
	items := make([]*hashableNode, len(n.Items))
	for i, item := range n.Items {
		items[i] = toHashable(item)
	}
	return &hashableNode{
		Kind:    n.Kind,
		Literal: hashableLiteral(n.Literal),
		Path:    n.Path,
		Name:    n.Name,
		Items:   items,
		Op:      n.Op,
		Operand: toHashable(n.Operand),
		Left:    toHashable(n.Left),
		Right:   toHashable(n.Right),
	}
}

func hashableLiteral(v interface{}) interface{} {
	switch lit := v.(type) {
	case domain.Datetime:
		return lit.EpochSeconds()
	case domain.Timedelta:
		return lit.Seconds()
	case domain.IPRange:
		return lit.Raw
	default:
		return v
	}
}
