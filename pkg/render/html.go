package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/cesnet/pynspect/pkg/ast"
)

// HTML renders n as a nested <span> tree for web-facing diagnostics: each
// node gets a class named after its Kind so a stylesheet can colorize it
// the way Printer uses ansi tags for a terminal.
func HTML(n *ast.Node) (string, error) {
	out, err := ast.Accept(n, &htmlVisitor{}, nil)
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

type htmlVisitor struct{}

func span(class, body string) string {
	return fmt.Sprintf(`<span class="pynspect-%s">%s</span>`, class, body)
}

func leaf(class, label string) string {
	return span(class, fmt.Sprintf("%s(%s)", strings.ToUpper(class), html.EscapeString(label)))
}

func (h *htmlVisitor) VisitIPv4(n *ast.Node, _ interface{}) (interface{}, error) {
	return leaf("ipv4", literalText(n.Literal)), nil
}

func (h *htmlVisitor) VisitIPv6(n *ast.Node, _ interface{}) (interface{}, error) {
	return leaf("ipv6", literalText(n.Literal)), nil
}

func (h *htmlVisitor) VisitDatetime(n *ast.Node, _ interface{}) (interface{}, error) {
	return leaf("datetime", literalText(n.Literal)), nil
}

func (h *htmlVisitor) VisitTimedelta(n *ast.Node, _ interface{}) (interface{}, error) {
	return leaf("timedelta", literalText(n.Literal)), nil
}

func (h *htmlVisitor) VisitInteger(n *ast.Node, _ interface{}) (interface{}, error) {
	return leaf("integer", literalText(n.Literal)), nil
}

func (h *htmlVisitor) VisitFloat(n *ast.Node, _ interface{}) (interface{}, error) {
	return leaf("float", literalText(n.Literal)), nil
}

func (h *htmlVisitor) VisitConstant(n *ast.Node, _ interface{}) (interface{}, error) {
	return leaf("constant", literalText(n.Literal)), nil
}

func (h *htmlVisitor) VisitVariable(n *ast.Node, _ interface{}) (interface{}, error) {
	return leaf("variable", n.Path), nil
}

func (h *htmlVisitor) VisitList(n *ast.Node, items []interface{}, _ interface{}) (interface{}, error) {
	strs := make([]string, len(items))
	for i, it := range items {
		strs[i] = it.(string)
	}
	label := "LIST"
	if len(n.Items) > 0 && allIPLifted(n.Items) {
		label = "IPLIST"
	}
	return span("list", fmt.Sprintf("%s(%s)", label, strings.Join(strs, ", "))), nil
}

func (h *htmlVisitor) VisitFunction(n *ast.Node, args []interface{}, _ interface{}) (interface{}, error) {
	strs := make([]string, len(args))
	for i, a := range args {
		strs[i] = a.(string)
	}
	body := fmt.Sprintf("FUNCTION(%s;%s)", html.EscapeString(n.Name), strings.Join(strs, ", "))
	return span("function", body), nil
}

func (h *htmlVisitor) VisitUnaryOp(n *ast.Node, operand interface{}, _ interface{}) (interface{}, error) {
	return span("unop", fmt.Sprintf("UNOP(%s;%s)", opCode(n.Op), operand.(string))), nil
}

func (h *htmlVisitor) VisitLogicalBinOp(n *ast.Node, left, right interface{}, _ interface{}) (interface{}, error) {
	return span("logbinop", fmt.Sprintf("LOGBINOP(%s;%s;%s)", opCode(n.Op), left.(string), right.(string))), nil
}

func (h *htmlVisitor) VisitComparisonBinOp(n *ast.Node, left, right interface{}, _ interface{}) (interface{}, error) {
	return span("compbinop", fmt.Sprintf("COMPBINOP(%s;%s;%s)", opCode(n.Op), left.(string), right.(string))), nil
}

func (h *htmlVisitor) VisitMathBinOp(n *ast.Node, left, right interface{}, _ interface{}) (interface{}, error) {
	return span("mathbinop", fmt.Sprintf("MATHBINOP(%s;%s;%s)", opCode(n.Op), left.(string), right.(string))), nil
}
