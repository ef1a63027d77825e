package eval

import "github.com/cesnet/pynspect/pkg/ast"

// evalLogical implements two logical-operator families: the plain
// OP_OR/OP_AND/OP_XOR family coerces absent to false before applying a
// two-valued boolean table, while the short-circuit
// OP_OR_P/OP_AND_P/OP_XOR_P family implements Kleene/SQL three-valued logic,
// propagating `absent` only when it isn't already resolved by a dominant
// operand.
func evalLogical(op ast.Op, left, right interface{}) interface{} {
	switch op {
	case ast.OpOr:
		return truthy(left) || truthy(right)
	case ast.OpAnd:
		return truthy(left) && truthy(right)
	case ast.OpXor:
		return truthy(left) != truthy(right)

	case ast.OpOrP:
		lb, lAbsent := threeValue(left)
		rb, rAbsent := threeValue(right)
		if !lAbsent && lb {
			return true
		}
		if !rAbsent && rb {
			return true
		}
		if lAbsent || rAbsent {
			return nil
		}
		return false

	case ast.OpAndP:
		lb, lAbsent := threeValue(left)
		rb, rAbsent := threeValue(right)
		if !lAbsent && !lb {
			return false
		}
		if !rAbsent && !rb {
			return false
		}
		if lAbsent || rAbsent {
			return nil
		}
		return true

	case ast.OpXorP:
		lb, lAbsent := threeValue(left)
		rb, rAbsent := threeValue(right)
		if lAbsent || rAbsent {
			return nil
		}
		return lb != rb

	default:
		panic("eval: unknown logical operator")
	}
}

// threeValue reports the truthiness of v and whether v is absent (nil).
func threeValue(v interface{}) (value bool, absent bool) {
	if v == nil {
		return false, true
	}
	return truthy(v), false
}
