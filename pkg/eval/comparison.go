package eval

import (
	"net"
	"reflect"
	"regexp"
	"strings"

	"github.com/cesnet/pynspect/pkg/ast"
	"github.com/cesnet/pynspect/pkg/domain"
)

// evalComparison implements filters.py's evaluate_binop_comparison: operands
// are normalized to sequences, an empty sequence on either side yields
// absent, OP_IS compares the two sequences as whole values, OP_IN asks
// whether any left element is a member of the right sequence, and every
// other operator is existentially quantified over all (left, right) pairs.
func evalComparison(op ast.Op, left, right interface{}) interface{} {
	if left == nil || right == nil {
		return nil
	}
	lseq := toSequence(left)
	rseq := toSequence(right)
	if len(lseq) == 0 || len(rseq) == 0 {
		return nil
	}

	if op == ast.OpIs {
		return sequenceEqual(lseq, rseq)
	}

	if op == ast.OpIn {
		for _, l := range lseq {
			for _, r := range rseq {
				if elementEqual(l, r) {
					return true
				}
			}
		}
		return false
	}

	for _, l := range lseq {
		if l == nil {
			continue
		}
		for _, r := range rseq {
			if r == nil {
				continue
			}
			if compareElements(op, l, r) {
				return true
			}
		}
	}
	return false
}

func sequenceEqual(a, b []interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !elementEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func elementEqual(a, b interface{}) bool {
	return compareElements(ast.OpEq, a, b)
}

func compareElements(op ast.Op, a, b interface{}) bool {
	if op == ast.OpLike {
		as, aok := a.(string)
		bs, bok := b.(string)
		if !aok || !bok {
			return false
		}
		re, err := regexp.Compile(bs)
		if err != nil {
			return strings.Contains(as, bs)
		}
		return re.MatchString(as)
	}

	if rng, ok := ipRangeOf(a); ok {
		return compareIPRange(op, rng, b)
	}
	if rng, ok := ipRangeOf(b); ok {
		return compareIPRange(flip(op), rng, a)
	}

	if dt, ok := a.(domain.Datetime); ok {
		if odt, ok := toDatetime(b); ok {
			return compareOrdered(op, dt.Compare(odt))
		}
	}
	if dt, ok := b.(domain.Datetime); ok {
		if odt, ok := toDatetime(a); ok {
			return compareOrdered(flip(op), dt.Compare(odt))
		}
	}

	if an, aok := domain.ToNumeric(a); aok {
		if bn, bok := domain.ToNumeric(b); bok {
			switch {
			case an < bn:
				return compareOrdered(op, -1)
			case an > bn:
				return compareOrdered(op, 1)
			default:
				return compareOrdered(op, 0)
			}
		}
	}

	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		switch {
		case as < bs:
			return compareOrdered(op, -1)
		case as > bs:
			return compareOrdered(op, 1)
		default:
			return compareOrdered(op, 0)
		}
	}

	switch op {
	case ast.OpEq:
		return reflect.DeepEqual(a, b)
	case ast.OpNe:
		return !reflect.DeepEqual(a, b)
	default:
		return false
	}
}

func compareOrdered(op ast.Op, cmp int) bool {
	switch op {
	case ast.OpEq:
		return cmp == 0
	case ast.OpNe:
		return cmp != 0
	case ast.OpGt:
		return cmp > 0
	case ast.OpGe:
		return cmp >= 0
	case ast.OpLt:
		return cmp < 0
	case ast.OpLe:
		return cmp <= 0
	default:
		return false
	}
}

// flip swaps an ordering operator's operand order, used when the IP range
// or datetime operand is on the right rather than the left.
func flip(op ast.Op) ast.Op {
	switch op {
	case ast.OpGt:
		return ast.OpLt
	case ast.OpGe:
		return ast.OpLe
	case ast.OpLt:
		return ast.OpGt
	case ast.OpLe:
		return ast.OpGe
	default:
		return op
	}
}

func ipRangeOf(v interface{}) (domain.IPRange, bool) {
	if r, ok := v.(domain.IPRange); ok {
		return r, true
	}
	return domain.IPRange{}, false
}

// compareIPRange handles a typed IPRange against either another IPRange
// or a bare string/net.IP the compiler hasn't lifted yet.
func compareIPRange(op ast.Op, rng domain.IPRange, other interface{}) bool {
	switch v := other.(type) {
	case domain.IPRange:
		return compareOrdered(op, rng.Compare(v))
	case string:
		if ip := net.ParseIP(v); ip != nil {
			if op == ast.OpEq || op == ast.OpIn {
				return rng.Contains(ip)
			}
			return false
		}
		return false
	case net.IP:
		if op == ast.OpEq || op == ast.OpIn {
			return rng.Contains(v)
		}
		return false
	default:
		return false
	}
}

func toDatetime(v interface{}) (domain.Datetime, bool) {
	if dt, ok := v.(domain.Datetime); ok {
		return dt, true
	}
	if s, ok := v.(string); ok {
		if dt, err := domain.ParseDatetime(s); err == nil {
			return dt, true
		}
	}
	return domain.Datetime{}, false
}
