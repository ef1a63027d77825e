// Package compiler implements the domain-typing compiler: a bottom-up,
// idempotent rewrite of a parsed expression tree that lifts string/number
// literals standing opposite a known typed variable (or a
// utcnow()/datetime-bound math operand) into their proper domain type, and
// folds constant arithmetic.
package compiler

import (
	"regexp"

	"github.com/cesnet/pynspect/pkg/ast"
	"github.com/cesnet/pynspect/pkg/domain"
)

// Compiler rewrites an expression tree via the ast.Visitor contract; every
// Visit* method returns a (possibly new) *ast.Node wrapped as interface{}.
// Its typed-field registry (which JPaths are known IP/datetime fields) is
// fixed at construction, so callers can configure which fields get lifted.
type Compiler struct {
	fields map[string]fieldCompiler
}

// New returns a Compiler consulting the default typed-field registry (the
// IDEA Source/Target.IP4/IP6 fields and the six *Time datetime fields).
func New() *Compiler {
	return &Compiler{fields: cloneFieldRegistry(defaultFieldRegistry)}
}

// NewWithFields returns a Compiler whose typed-field registry extends the
// default with additional JPaths bound to each domain type, for records
// whose schema carries more typed fields than the built-in IDEA set.
func NewWithFields(extraDatetime, extraIPv4, extraIPv6 []string) *Compiler {
	reg := cloneFieldRegistry(defaultFieldRegistry)
	for _, f := range extraDatetime {
		reg[f] = fieldCompiler{kind: ast.KindDatetime, parse: parseDatetime}
	}
	for _, f := range extraIPv4 {
		reg[f] = fieldCompiler{kind: ast.KindIPv4, parse: parseIPv4}
	}
	for _, f := range extraIPv6 {
		reg[f] = fieldCompiler{kind: ast.KindIPv6, parse: parseIPv6}
	}
	return &Compiler{fields: reg}
}

var defaultCompiler = New()

// Compile lifts and folds node into its domain-typed, constant-folded form
// using the default typed-field registry. Callers needing a custom
// registry should construct a Compiler via NewWithFields and call its
// Compile method instead.
func Compile(n *ast.Node) (*ast.Node, error) {
	return defaultCompiler.Compile(n)
}

// Compile lifts and folds node using c's typed-field registry.
func (c *Compiler) Compile(n *ast.Node) (*ast.Node, error) {
	res, err := ast.Accept(n, c, nil)
	if err != nil {
		return nil, err
	}
	return res.(*ast.Node), nil
}

func (c *Compiler) VisitIPv4(n *ast.Node, _ interface{}) (interface{}, error)      { return n, nil }
func (c *Compiler) VisitIPv6(n *ast.Node, _ interface{}) (interface{}, error)      { return n, nil }
func (c *Compiler) VisitDatetime(n *ast.Node, _ interface{}) (interface{}, error)  { return n, nil }
func (c *Compiler) VisitTimedelta(n *ast.Node, _ interface{}) (interface{}, error) { return n, nil }
func (c *Compiler) VisitInteger(n *ast.Node, _ interface{}) (interface{}, error)   { return n, nil }
func (c *Compiler) VisitFloat(n *ast.Node, _ interface{}) (interface{}, error)     { return n, nil }
func (c *Compiler) VisitConstant(n *ast.Node, _ interface{}) (interface{}, error)  { return n, nil }
func (c *Compiler) VisitVariable(n *ast.Node, _ interface{}) (interface{}, error)  { return n, nil }

func (c *Compiler) VisitList(n *ast.Node, items []interface{}, _ interface{}) (interface{}, error) {
	newItems := make([]*ast.Node, len(items))
	for i, it := range items {
		newItems[i] = it.(*ast.Node)
	}
	return ast.NewList(newItems, n.Pos), nil
}

func (c *Compiler) VisitFunction(n *ast.Node, args []interface{}, _ interface{}) (interface{}, error) {
	newArgs := make([]*ast.Node, len(args))
	for i, a := range args {
		newArgs[i] = a.(*ast.Node)
	}
	return ast.NewFunction(n.Name, newArgs, n.Pos), nil
}

func (c *Compiler) VisitUnaryOp(n *ast.Node, operand interface{}, _ interface{}) (interface{}, error) {
	return ast.NewUnaryOp(n.Op, operand.(*ast.Node), n.Pos), nil
}

func (c *Compiler) VisitLogicalBinOp(n *ast.Node, left, right interface{}, _ interface{}) (interface{}, error) {
	return ast.NewLogicalBinOp(n.Op, left.(*ast.Node), right.(*ast.Node), n.Pos), nil
}

// reIndexChunk strips numeric JPath indices from a variable's path so it
// can be looked up in fieldRegistry, matching filters.py's clean_variable
// ("Target[1].IP4[22]" -> "Target.IP4").
var reIndexChunk = regexp.MustCompile(`\[\d+\]`)

func cleanVariable(path string) string {
	return reIndexChunk.ReplaceAllString(path, "")
}

// fieldCompiler describes how to lift a raw literal standing opposite a
// known JPath into its domain-typed equivalent.
type fieldCompiler struct {
	kind  ast.Kind
	parse func(string) (interface{}, error)
}

var defaultFieldRegistry = buildFieldRegistry()

func buildFieldRegistry() map[string]fieldCompiler {
	reg := map[string]fieldCompiler{}
	datetimeField := fieldCompiler{kind: ast.KindDatetime, parse: parseDatetime}
	for name := range domain.KnownDatetimeFields {
		reg[name] = datetimeField
	}
	ipv4Field := fieldCompiler{kind: ast.KindIPv4, parse: parseIPv4}
	ipv6Field := fieldCompiler{kind: ast.KindIPv6, parse: parseIPv6}
	reg["Source.IP4"] = ipv4Field
	reg["Target.IP4"] = ipv4Field
	reg["Source.IP6"] = ipv6Field
	reg["Target.IP6"] = ipv6Field
	return reg
}

func cloneFieldRegistry(src map[string]fieldCompiler) map[string]fieldCompiler {
	reg := make(map[string]fieldCompiler, len(src))
	for k, v := range src {
		reg[k] = v
	}
	return reg
}

// isDatetimeField reports whether path (already cleaned) is bound to a
// datetime field in c's registry, for math.go's time-bound operand check.
func (c *Compiler) isDatetimeField(path string) bool {
	fc, ok := c.fields[path]
	return ok && fc.kind == ast.KindDatetime
}

func parseIPv4(s string) (interface{}, error) { return domain.ParseIPv4(s) }
func parseIPv6(s string) (interface{}, error) { return domain.ParseIPv6(s) }
func parseDatetime(s string) (interface{}, error) {
	return domain.ParseDatetime(s)
}

// liftNode rewrites a single literal node into fc's domain type. A node
// that isn't a raw string literal (already lifted, or a non-constant
// operand like a Variable) is returned unchanged — there's nothing to lift.
// A raw string that fails to parse against fc is a genuinely malformed
// constant and raises Error, matching compile_ip_v4/compile_ip_v6's own
// raise-on-unparseable behavior.
func liftNode(n *ast.Node, fc fieldCompiler, field string) (*ast.Node, error) {
	raw, ok := n.Literal.(string)
	if !ok {
		return n, nil
	}
	v, err := fc.parse(raw)
	if err != nil {
		return nil, &Error{Field: field, Raw: raw, Pos: n.Pos}
	}
	return &ast.Node{Kind: fc.kind, Literal: v, Pos: n.Pos}, nil
}

// liftOperand lifts a scalar literal, or every element of a list literal
// (the IDEA "IPLIST" shape used by OP_IN against a typed field).
func liftOperand(n *ast.Node, fc fieldCompiler, field string) (*ast.Node, error) {
	if n.Kind == ast.KindList {
		items := make([]*ast.Node, len(n.Items))
		for i, item := range n.Items {
			lifted, err := liftNode(item, fc, field)
			if err != nil {
				return nil, err
			}
			items[i] = lifted
		}
		return ast.NewList(items, n.Pos), nil
	}
	return liftNode(n, fc, field)
}

func (c *Compiler) VisitComparisonBinOp(n *ast.Node, l, r interface{}, _ interface{}) (interface{}, error) {
	left := l.(*ast.Node)
	right := r.(*ast.Node)

	if left.Kind == ast.KindVariable {
		if fc, ok := c.fields[cleanVariable(left.Path)]; ok {
			lifted, err := liftOperand(right, fc, left.Path)
			if err != nil {
				return nil, err
			}
			right = lifted
		}
	}
	if right.Kind == ast.KindVariable {
		if fc, ok := c.fields[cleanVariable(right.Path)]; ok {
			lifted, err := liftOperand(left, fc, right.Path)
			if err != nil {
				return nil, err
			}
			left = lifted
		}
	}

	return ast.NewComparisonBinOp(n.Op, left, right, n.Pos), nil
}
