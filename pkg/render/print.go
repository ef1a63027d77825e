// Package render implements reference printing and HTML diagnostic
// visitors: plain-text/ANSI-colorized tree dumps for tests and CLI
// diagnostics, and an HTML variant for web-facing tooling. Each node
// renders as "KIND(value)" or "KIND(op;left;right)".
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/starkandwayne/goutils/ansi"

	"github.com/cesnet/pynspect/pkg/ast"
	"github.com/cesnet/pynspect/pkg/domain"
)

// EnableColorFromWriter sets the package-wide ansi color state based on
// whether w is a terminal, called once at program startup.
func EnableColorFromWriter(w io.Writer) {
	f, ok := w.(interface{ Fd() uintptr })
	ansi.Color(ok && isatty.IsTerminal(f.Fd()))
}

// opCode renders op using the original rule system's OP_* spelling, the
// form traversers.py's PrintingTreeTraverser embeds into its LOGBINOP/
// COMPBINOP/MATHBINOP/UNOP output.
func opCode(op ast.Op) string {
	switch op {
	case ast.OpNot:
		return "OP_NOT"
	case ast.OpExists:
		return "OP_EXISTS"
	case ast.OpOr:
		return "OP_OR"
	case ast.OpAnd:
		return "OP_AND"
	case ast.OpXor:
		return "OP_XOR"
	case ast.OpOrP:
		return "OP_OR_P"
	case ast.OpAndP:
		return "OP_AND_P"
	case ast.OpXorP:
		return "OP_XOR_P"
	case ast.OpEq:
		return "OP_EQ"
	case ast.OpNe:
		return "OP_NE"
	case ast.OpGt:
		return "OP_GT"
	case ast.OpGe:
		return "OP_GE"
	case ast.OpLt:
		return "OP_LT"
	case ast.OpLe:
		return "OP_LE"
	case ast.OpLike:
		return "OP_LIKE"
	case ast.OpIn:
		return "OP_IN"
	case ast.OpIs:
		return "OP_IS"
	case ast.OpPlus:
		return "OP_PLUS"
	case ast.OpMinus:
		return "OP_MINUS"
	case ast.OpTimes:
		return "OP_TIMES"
	case ast.OpDivide:
		return "OP_DIVIDE"
	case ast.OpModulo:
		return "OP_MODULO"
	default:
		return "OP_UNKNOWN"
	}
}

// literalText renders a node's Literal the way Python's str() would: a
// domain type prints its own String(), everything else via fmt.Sprint.
func literalText(lit interface{}) string {
	switch v := lit.(type) {
	case domain.IPRange:
		return v.String()
	case domain.Datetime:
		return v.String()
	case domain.Timedelta:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Printer is the terminal reference visitor. Color is driven by the
// package-wide ansi state (see EnableColorFromWriter) rather than a field
// here, set once at program startup.
type Printer struct{}

// Print renders n as a single-line, fully-parenthesized diagnostic string.
func Print(n *ast.Node) (string, error) {
	out, err := ast.Accept(n, &Printer{}, nil)
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (p *Printer) VisitIPv4(n *ast.Node, _ interface{}) (interface{}, error) {
	return ansi.Sprintf("@c{IPV4(%s)}", literalText(n.Literal)), nil
}

func (p *Printer) VisitIPv6(n *ast.Node, _ interface{}) (interface{}, error) {
	return ansi.Sprintf("@c{IPV6(%s)}", literalText(n.Literal)), nil
}

func (p *Printer) VisitDatetime(n *ast.Node, _ interface{}) (interface{}, error) {
	return ansi.Sprintf("@c{DATETIME(%s)}", literalText(n.Literal)), nil
}

func (p *Printer) VisitTimedelta(n *ast.Node, _ interface{}) (interface{}, error) {
	return ansi.Sprintf("@c{TIMEDELTA(%s)}", literalText(n.Literal)), nil
}

func (p *Printer) VisitInteger(n *ast.Node, _ interface{}) (interface{}, error) {
	return ansi.Sprintf("@m{INTEGER(%s)}", literalText(n.Literal)), nil
}

func (p *Printer) VisitFloat(n *ast.Node, _ interface{}) (interface{}, error) {
	return ansi.Sprintf("@m{FLOAT(%s)}", literalText(n.Literal)), nil
}

func (p *Printer) VisitConstant(n *ast.Node, _ interface{}) (interface{}, error) {
	return ansi.Sprintf("@g{CONSTANT(%s)}", literalText(n.Literal)), nil
}

func (p *Printer) VisitVariable(n *ast.Node, _ interface{}) (interface{}, error) {
	return ansi.Sprintf("@y{VARIABLE(%s)}", n.Path), nil
}

func (p *Printer) VisitList(n *ast.Node, items []interface{}, _ interface{}) (interface{}, error) {
	strs := make([]string, len(items))
	for i, it := range items {
		strs[i] = it.(string)
	}
	// All-IP lists print as the IDEA-style IPLIST(...) the original
	// compiler's list rule produces once every element has been lifted.
	label := "LIST"
	if len(n.Items) > 0 && allIPLifted(n.Items) {
		label = "IPLIST"
	}
	return fmt.Sprintf("%s(%s)", label, strings.Join(strs, ", ")), nil
}

func allIPLifted(items []*ast.Node) bool {
	for _, it := range items {
		if it.Kind != ast.KindIPv4 && it.Kind != ast.KindIPv6 {
			return false
		}
		if _, ok := it.Literal.(domain.IPRange); !ok {
			return false
		}
	}
	return true
}

func (p *Printer) VisitFunction(n *ast.Node, args []interface{}, _ interface{}) (interface{}, error) {
	strs := make([]string, len(args))
	for i, a := range args {
		strs[i] = a.(string)
	}
	return ansi.Sprintf("@b{FUNCTION(%s;%s)}", n.Name, strings.Join(strs, ", ")), nil
}

func (p *Printer) VisitUnaryOp(n *ast.Node, operand interface{}, _ interface{}) (interface{}, error) {
	return fmt.Sprintf("UNOP(%s;%s)", opCode(n.Op), operand.(string)), nil
}

func (p *Printer) VisitLogicalBinOp(n *ast.Node, left, right interface{}, _ interface{}) (interface{}, error) {
	return fmt.Sprintf("LOGBINOP(%s;%s;%s)", opCode(n.Op), left.(string), right.(string)), nil
}

func (p *Printer) VisitComparisonBinOp(n *ast.Node, left, right interface{}, _ interface{}) (interface{}, error) {
	return fmt.Sprintf("COMPBINOP(%s;%s;%s)", opCode(n.Op), left.(string), right.(string)), nil
}

func (p *Printer) VisitMathBinOp(n *ast.Node, left, right interface{}, _ interface{}) (interface{}, error) {
	return fmt.Sprintf("MATHBINOP(%s;%s;%s)", opCode(n.Op), left.(string), right.(string)), nil
}
