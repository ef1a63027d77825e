// Package eval implements the data-object filter: it reduces a parsed
// (optionally compiler-lifted) expression tree against a record, using the
// ast.Visitor post-order contract.
package eval

import (
	"github.com/cesnet/pynspect/pkg/ast"
	"github.com/cesnet/pynspect/pkg/domain"
	"github.com/cesnet/pynspect/pkg/jpath"
)

// Evaluator reduces an expression tree against a record. The zero value is
// not usable; construct with New.
type Evaluator struct {
	Functions map[string]Func
}

// New returns an Evaluator with the built-in utcnow/size functions
// registered.
func New() *Evaluator {
	return &Evaluator{Functions: defaultFunctions()}
}

// Filter evaluates node against record and returns the raw result: a bool
// for a well-formed predicate, some other scalar/sequence for a bare
// expression, or nil if the result is absent.
func Filter(record map[string]interface{}, node *ast.Node) (interface{}, error) {
	return New().Filter(record, node)
}

// Filter evaluates node against record using e's function registry.
func (e *Evaluator) Filter(record map[string]interface{}, node *ast.Node) (interface{}, error) {
	return ast.Accept(node, e, record)
}

// Match is a convenience wrapper for boolean predicates: it evaluates node
// and coerces the result through the truthiness rule, so an absent result
// reads as no match rather than an error.
func (e *Evaluator) Match(record map[string]interface{}, node *ast.Node) (bool, error) {
	v, err := e.Filter(record, node)
	if err != nil {
		return false, err
	}
	return truthy(v), nil
}

func (e *Evaluator) VisitIPv4(n *ast.Node, _ interface{}) (interface{}, error) {
	return literalIPRange(n.Literal, domain.ParseIPv4), nil
}

func (e *Evaluator) VisitIPv6(n *ast.Node, _ interface{}) (interface{}, error) {
	return literalIPRange(n.Literal, domain.ParseIPv6), nil
}

func literalIPRange(lit interface{}, parse func(string) (domain.IPRange, error)) interface{} {
	if r, ok := lit.(domain.IPRange); ok {
		return r
	}
	if s, ok := lit.(string); ok {
		if r, err := parse(s); err == nil {
			return r
		}
		return s
	}
	return lit
}

func (e *Evaluator) VisitDatetime(n *ast.Node, _ interface{}) (interface{}, error) {
	if dt, ok := n.Literal.(domain.Datetime); ok {
		return dt, nil
	}
	if s, ok := n.Literal.(string); ok {
		if dt, err := domain.ParseDatetime(s); err == nil {
			return dt, nil
		}
		return s, nil
	}
	return n.Literal, nil
}

func (e *Evaluator) VisitTimedelta(n *ast.Node, _ interface{}) (interface{}, error) {
	if td, ok := n.Literal.(domain.Timedelta); ok {
		return td, nil
	}
	if s, ok := n.Literal.(string); ok {
		if td, err := domain.ParseTimedelta(s); err == nil {
			return td, nil
		}
		return s, nil
	}
	return n.Literal, nil
}

func (e *Evaluator) VisitInteger(n *ast.Node, _ interface{}) (interface{}, error) {
	return n.Literal, nil
}

func (e *Evaluator) VisitFloat(n *ast.Node, _ interface{}) (interface{}, error) {
	return n.Literal, nil
}

func (e *Evaluator) VisitConstant(n *ast.Node, _ interface{}) (interface{}, error) {
	return n.Literal, nil
}

func (e *Evaluator) VisitVariable(n *ast.Node, ctx interface{}) (interface{}, error) {
	record, _ := ctx.(map[string]interface{})
	vals, err := jpath.Values(record, n.Path)
	if err != nil {
		return nil, err
	}
	return vals, nil
}

func (e *Evaluator) VisitList(n *ast.Node, items []interface{}, _ interface{}) (interface{}, error) {
	var out []interface{}
	for _, item := range items {
		if seq, ok := item.([]interface{}); ok {
			out = append(out, seq...)
		} else {
			out = append(out, item)
		}
	}
	return out, nil
}

func (e *Evaluator) VisitFunction(n *ast.Node, args []interface{}, _ interface{}) (interface{}, error) {
	fn, ok := e.Functions[n.Name]
	if !ok {
		return nil, &Error{Reason: "unknown function " + n.Name}
	}
	return fn(args)
}

func (e *Evaluator) VisitUnaryOp(n *ast.Node, operand interface{}, _ interface{}) (interface{}, error) {
	if operand == nil {
		return nil, nil
	}
	switch n.Op {
	case ast.OpNot:
		return !truthy(operand), nil
	case ast.OpExists:
		return truthy(operand), nil
	default:
		return nil, &Error{Reason: "unknown unary operator"}
	}
}

func (e *Evaluator) VisitLogicalBinOp(n *ast.Node, left, right interface{}, _ interface{}) (interface{}, error) {
	return evalLogical(n.Op, left, right), nil
}

func (e *Evaluator) VisitComparisonBinOp(n *ast.Node, left, right interface{}, _ interface{}) (interface{}, error) {
	return evalComparison(n.Op, left, right), nil
}

func (e *Evaluator) VisitMathBinOp(n *ast.Node, left, right interface{}, _ interface{}) (interface{}, error) {
	return evalMath(n.Op, left, right)
}
