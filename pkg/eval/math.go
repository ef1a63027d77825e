package eval

import (
	"github.com/cesnet/pynspect/pkg/ast"
	"github.com/cesnet/pynspect/pkg/domain"
)

// evalMath implements filters.py's evaluate_binop_math / _calculate_vector:
// both operands are normalized to sequences; an empty sequence on either
// side (including the absent case) yields absent. When one side is a
// singleton it broadcasts against every element of the other; equal-length
// sequences zip pairwise; anything else is an Error. A one-element result
// collapses back to a scalar.
func evalMath(op ast.Op, left, right interface{}) (interface{}, error) {
	if left == nil || right == nil {
		return nil, nil
	}
	lseq := toSequence(left)
	rseq := toSequence(right)
	if len(lseq) == 0 || len(rseq) == 0 {
		return nil, nil
	}

	var out []interface{}
	switch {
	case len(rseq) == 1:
		for _, l := range lseq {
			v, ok := applyMath(op, l, rseq[0])
			if !ok {
				return nil, nil
			}
			out = append(out, v)
		}

	case len(lseq) == 1:
		for _, r := range rseq {
			v, ok := applyMath(op, lseq[0], r)
			if !ok {
				return nil, nil
			}
			out = append(out, v)
		}

	case len(lseq) == len(rseq):
		for i := range lseq {
			v, ok := applyMath(op, lseq[i], rseq[i])
			if !ok {
				return nil, nil
			}
			out = append(out, v)
		}

	default:
		return nil, &Error{Reason: "uneven length of math operation operands"}
	}

	return unwrapSingleton(out), nil
}

// applyMath computes a single pairwise result. A Datetime combined with a
// Timedelta shifts the instant; everything else is coerced through
// domain.ToNumeric and computed as a plain number, staying an int64 when
// both raw operands were integral (except for division, which always
// yields a float64).
func applyMath(op ast.Op, lraw, rraw interface{}) (interface{}, bool) {
	if dt, ok := lraw.(domain.Datetime); ok {
		if td, ok := rraw.(domain.Timedelta); ok {
			switch op {
			case ast.OpPlus:
				return dt.Add(td), true
			case ast.OpMinus:
				return dt.Add(domain.Timedelta{D: -td.D}), true
			}
		}
	}
	if td, ok := lraw.(domain.Timedelta); ok {
		if dt, ok := rraw.(domain.Datetime); ok && op == ast.OpPlus {
			return dt.Add(td), true
		}
	}

	ln, lok := domain.ToNumeric(lraw)
	rn, rok := domain.ToNumeric(rraw)
	if !lok || !rok {
		return nil, false
	}

	var v float64
	switch op {
	case ast.OpPlus:
		v = ln + rn
	case ast.OpMinus:
		v = ln - rn
	case ast.OpTimes:
		v = ln * rn
	case ast.OpDivide:
		if rn == 0 {
			return nil, false
		}
		v = ln / rn
	case ast.OpModulo:
		if rn == 0 {
			return nil, false
		}
		v = float64(int64(ln) % int64(rn))
	default:
		return nil, false
	}

	if isIntegral(lraw) && isIntegral(rraw) && op != ast.OpDivide {
		return int64(v), true
	}
	return v, true
}

func isIntegral(v interface{}) bool {
	switch v.(type) {
	case int, int64:
		return true
	default:
		return false
	}
}
