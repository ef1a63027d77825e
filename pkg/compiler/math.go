package compiler

import (
	"time"

	"github.com/cesnet/pynspect/pkg/ast"
	"github.com/cesnet/pynspect/pkg/domain"
)

// VisitMathBinOp implements IDEAFilterCompiler's constant folding and
// time-operand lifting (test_compilers.py test_04/test_05):
//
//  1. if both operands are already numeric literals, fold them into one;
//  2. if exactly one operand is bound to a point in time (a utcnow() call
//     or a known datetime field), lift the other through compile_timeoper;
//  3. for OP_PLUS, canonicalize a literal-number/bare-variable pair to put
//     the variable on the left (the only reordering filters.py's compiler
//     is observed to perform — confirmed only for the commutative PLUS).
func (c *Compiler) VisitMathBinOp(n *ast.Node, l, r interface{}, _ interface{}) (interface{}, error) {
	left := l.(*ast.Node)
	right := r.(*ast.Node)

	if lv, lok := literalNumber(left); lok {
		if rv, rok := literalNumber(right); rok {
			return foldNumeric(n.Op, left, right, lv, rv, n.Pos), nil
		}
	}

	lTime := c.isTimeBound(left)
	rTime := c.isTimeBound(right)
	switch {
	case lTime && !rTime:
		right = compileTimeoper(right)
	case rTime && !lTime:
		left = compileTimeoper(left)
	}

	if n.Op == ast.OpPlus {
		if _, lok := literalNumber(left); lok && right.Kind == ast.KindVariable {
			left, right = right, left
		}
	}

	return ast.NewMathBinOp(n.Op, left, right, n.Pos), nil
}

func literalNumber(n *ast.Node) (float64, bool) {
	switch n.Kind {
	case ast.KindInteger:
		return float64(n.Literal.(int64)), true
	case ast.KindFloat:
		return n.Literal.(float64), true
	default:
		return 0, false
	}
}

func foldNumeric(op ast.Op, leftNode, rightNode *ast.Node, lv, rv float64, pos ast.Position) *ast.Node {
	var v float64
	switch op {
	case ast.OpPlus:
		v = lv + rv
	case ast.OpMinus:
		v = lv - rv
	case ast.OpTimes:
		v = lv * rv
	case ast.OpDivide:
		if rv == 0 {
			return ast.NewMathBinOp(op, leftNode, rightNode, pos)
		}
		return ast.NewFloat(lv/rv, pos)
	case ast.OpModulo:
		if rv == 0 {
			return ast.NewMathBinOp(op, leftNode, rightNode, pos)
		}
		v = float64(int64(lv) % int64(rv))
	default:
		return ast.NewMathBinOp(op, leftNode, rightNode, pos)
	}

	if leftNode.Kind == ast.KindInteger && rightNode.Kind == ast.KindInteger {
		return ast.NewInteger(int64(v), pos)
	}
	return ast.NewFloat(v, pos)
}

// isTimeBound reports whether n anchors a point in time: a utcnow() call,
// or a Variable bound to a datetime field in c's registry.
func (c *Compiler) isTimeBound(n *ast.Node) bool {
	if n.Kind == ast.KindFunction && n.Name == "utcnow" {
		return true
	}
	if n.Kind == ast.KindVariable {
		return c.isDatetimeField(cleanVariable(n.Path))
	}
	return false
}

// compileTimeoper lifts a literal standing next to a time-bound operand
// inside a MathBinOp. A bare number is always a duration offset; a quoted
// constant is an absolute instant if it parses as one, else a duration
// (matching compile_timeoper's NumberRule/ConstantRule dispatch in
// filters.py).
func compileTimeoper(n *ast.Node) *ast.Node {
	switch n.Kind {
	case ast.KindInteger, ast.KindFloat:
		v, _ := literalNumber(n)
		return &ast.Node{Kind: ast.KindTimedelta, Literal: domain.Timedelta{D: time.Duration(v * float64(time.Second))}, Pos: n.Pos}
	case ast.KindConstant:
		raw, ok := n.Literal.(string)
		if !ok {
			return n
		}
		if dt, err := domain.ParseDatetime(raw); err == nil {
			return &ast.Node{Kind: ast.KindDatetime, Literal: dt, Pos: n.Pos}
		}
		if td, err := domain.ParseTimedelta(raw); err == nil {
			return &ast.Node{Kind: ast.KindTimedelta, Literal: td, Pos: n.Pos}
		}
		return n
	default:
		return n
	}
}
