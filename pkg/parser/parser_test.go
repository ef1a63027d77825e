package parser

import (
	"testing"

	"github.com/cesnet/pynspect/pkg/ast"
)

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	n, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", src, err)
	}
	return n
}

func TestLogicalOperations(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.Kind
		op   ast.Op
	}{
		{"1 and 1", ast.KindLogicalBinOp, ast.OpAnd},
		{"1 AND 1", ast.KindLogicalBinOp, ast.OpAnd},
		{"1 && 1", ast.KindLogicalBinOp, ast.OpAndP},
		{"1 or 1", ast.KindLogicalBinOp, ast.OpOr},
		{"1 || 1", ast.KindLogicalBinOp, ast.OpOrP},
		{"1 xor 1", ast.KindLogicalBinOp, ast.OpXor},
		{"1 ^^ 1", ast.KindLogicalBinOp, ast.OpXorP},
		{"(1 and 1)", ast.KindLogicalBinOp, ast.OpAnd},
		{"((1 and 1))", ast.KindLogicalBinOp, ast.OpAnd},
	}
	for _, tt := range tests {
		n := mustParse(t, tt.src)
		if n.Kind != tt.kind || n.Op != tt.op {
			t.Errorf("Parse(%q) = Kind %v Op %v, want %v %v", tt.src, n.Kind, n.Op, tt.kind, tt.op)
		}
	}
}

func TestUnaryOperations(t *testing.T) {
	tests := []struct {
		src string
		op  ast.Op
	}{
		{"not 1", ast.OpNot},
		{"NOT 1", ast.OpNot},
		{"! 1", ast.OpNot},
		{"exists 1", ast.OpExists},
		{"EXISTS 1", ast.OpExists},
		{"? 1", ast.OpExists},
	}
	for _, tt := range tests {
		n := mustParse(t, tt.src)
		if n.Kind != ast.KindUnaryOp || n.Op != tt.op {
			t.Errorf("Parse(%q) = Kind %v Op %v, want UnaryOp %v", tt.src, n.Kind, n.Op, tt.op)
		}
		if n.Operand.Kind != ast.KindInteger {
			t.Errorf("Parse(%q): operand Kind = %v, want Integer", tt.src, n.Operand.Kind)
		}
	}
}

func TestComparisonOperations(t *testing.T) {
	tests := []struct {
		src string
		op  ast.Op
	}{
		{"2 like 2", ast.OpLike}, {"2 =~ 2", ast.OpLike},
		{"2 in 2", ast.OpIn}, {"2 ~~ 2", ast.OpIn},
		{"2 is 2", ast.OpIs},
		{"2 eq 2", ast.OpEq}, {"2 == 2", ast.OpEq},
		{"2 ne 2", ast.OpNe}, {"2 != 2", ast.OpNe}, {"2 <> 2", ast.OpNe},
		{"2 ge 2", ast.OpGe}, {"2 >= 2", ast.OpGe},
		{"2 gt 2", ast.OpGt}, {"2 > 2", ast.OpGt},
		{"2 le 2", ast.OpLe}, {"2 <= 2", ast.OpLe},
		{"2 lt 2", ast.OpLt}, {"2 < 2", ast.OpLt},
	}
	for _, tt := range tests {
		n := mustParse(t, tt.src)
		if n.Kind != ast.KindComparisonBinOp || n.Op != tt.op {
			t.Errorf("Parse(%q) = Kind %v Op %v, want ComparisonBinOp %v", tt.src, n.Kind, n.Op, tt.op)
		}
	}
}

func TestMathOperations(t *testing.T) {
	tests := []struct {
		src string
		op  ast.Op
	}{
		{"3 + 3", ast.OpPlus}, {"3 - 3", ast.OpMinus}, {"3 * 3", ast.OpTimes},
		{"3 / 3", ast.OpDivide}, {"3 % 3", ast.OpModulo},
	}
	for _, tt := range tests {
		n := mustParse(t, tt.src)
		if n.Kind != ast.KindMathBinOp || n.Op != tt.op {
			t.Errorf("Parse(%q) = Kind %v Op %v, want MathBinOp %v", tt.src, n.Kind, n.Op, tt.op)
		}
	}
}

func TestRightAssociativity(t *testing.T) {
	// "9 - 6 + Test" parses as MATHBINOP(9 OP_MINUS MATHBINOP(6 OP_PLUS Test))
	n := mustParse(t, "9 - 6 + Test")
	if n.Kind != ast.KindMathBinOp || n.Op != ast.OpMinus {
		t.Fatalf("outer = Kind %v Op %v, want MathBinOp OP_MINUS", n.Kind, n.Op)
	}
	if n.Left.Kind != ast.KindInteger || n.Left.Literal.(int64) != 9 {
		t.Errorf("left = %+v, want Integer(9)", n.Left)
	}
	inner := n.Right
	if inner.Kind != ast.KindMathBinOp || inner.Op != ast.OpPlus {
		t.Fatalf("inner = Kind %v Op %v, want MathBinOp OP_PLUS", inner.Kind, inner.Op)
	}
	if inner.Left.Kind != ast.KindInteger || inner.Left.Literal.(int64) != 6 {
		t.Errorf("inner.Left = %+v, want Integer(6)", inner.Left)
	}
	if inner.Right.Kind != ast.KindVariable || inner.Right.Path != "Test" {
		t.Errorf("inner.Right = %+v, want Variable('Test')", inner.Right)
	}
}

func TestFactors(t *testing.T) {
	n := mustParse(t, "127.0.0.1")
	if n.Kind != ast.KindIPv4 || n.Literal != "127.0.0.1" {
		t.Errorf("got %+v", n)
	}
	n = mustParse(t, "::1")
	if n.Kind != ast.KindIPv6 || n.Literal != "::1" {
		t.Errorf("got %+v", n)
	}
	n = mustParse(t, "1")
	if n.Kind != ast.KindInteger || n.Literal.(int64) != 1 {
		t.Errorf("got %+v", n)
	}
	n = mustParse(t, "1.1")
	if n.Kind != ast.KindFloat || n.Literal.(float64) != 1.1 {
		t.Errorf("got %+v", n)
	}
	n = mustParse(t, "Test")
	if n.Kind != ast.KindVariable || n.Path != "Test" {
		t.Errorf("got %+v", n)
	}
	n = mustParse(t, `"constant1"`)
	if n.Kind != ast.KindConstant || n.Literal != "constant1" {
		t.Errorf("got %+v", n)
	}
	n = mustParse(t, "func()")
	if n.Kind != ast.KindFunction || n.Name != "func" || len(n.Items) != 0 {
		t.Errorf("got %+v", n)
	}
}

func TestParenUnwrapping(t *testing.T) {
	n := mustParse(t, "((Test))")
	if n.Kind != ast.KindVariable || n.Path != "Test" {
		t.Errorf("got %+v", n)
	}
}

func TestListLiterals(t *testing.T) {
	n := mustParse(t, "[127.0.0.1]")
	if n.Kind != ast.KindList || len(n.Items) != 1 || n.Items[0].Kind != ast.KindIPv4 {
		t.Errorf("got %+v", n)
	}

	n = mustParse(t, "[1,2, 3,4 , 5]")
	if n.Kind != ast.KindList || len(n.Items) != 5 {
		t.Fatalf("got %+v", n)
	}
	for i, item := range n.Items {
		if item.Kind != ast.KindInteger || item.Literal.(int64) != int64(i+1) {
			t.Errorf("item %d = %+v, want Integer(%d)", i, item, i+1)
		}
	}
}

func TestFunctionArguments(t *testing.T) {
	n := mustParse(t, "func(127.0.0.1)")
	if n.Kind != ast.KindFunction || n.Name != "func" || len(n.Items) != 1 || n.Items[0].Kind != ast.KindIPv4 {
		t.Errorf("got %+v", n)
	}

	n = mustParse(t, "func(sub())")
	if n.Kind != ast.KindFunction || len(n.Items) != 1 {
		t.Fatalf("got %+v", n)
	}
	sub := n.Items[0]
	if sub.Kind != ast.KindFunction || sub.Name != "sub" || len(sub.Items) != 0 {
		t.Errorf("got %+v", sub)
	}

	n = mustParse(t, "func([127.0.0.1 , 127.0.0.2])")
	if n.Kind != ast.KindFunction || len(n.Items) != 1 {
		t.Fatalf("got %+v", n)
	}
	list := n.Items[0]
	if list.Kind != ast.KindList || len(list.Items) != 2 {
		t.Errorf("got %+v", list)
	}
}

func TestAdvancedExpression(t *testing.T) {
	n := mustParse(t, `Category in ["Abusive.Spam" , "Attempt.Exploit"]`)
	if n.Kind != ast.KindComparisonBinOp || n.Op != ast.OpIn {
		t.Fatalf("got %+v", n)
	}
	if n.Left.Kind != ast.KindVariable || n.Left.Path != "Category" {
		t.Errorf("left = %+v", n.Left)
	}
	if n.Right.Kind != ast.KindList || len(n.Right.Items) != 2 {
		t.Errorf("right = %+v", n.Right)
	}

	n = mustParse(t, `(Source.IP4 eq 127.0.0.1) or (Node[#].Name is "cz.cesnet.labrea")`)
	if n.Kind != ast.KindLogicalBinOp || n.Op != ast.OpOr {
		t.Fatalf("got %+v", n)
	}
	left := n.Left
	if left.Kind != ast.KindComparisonBinOp || left.Op != ast.OpEq || left.Left.Path != "Source.IP4" {
		t.Errorf("left = %+v", left)
	}
	right := n.Right
	if right.Kind != ast.KindComparisonBinOp || right.Op != ast.OpIs || right.Left.Path != "Node[#].Name" {
		t.Errorf("right = %+v", right)
	}
}

func TestSyntaxError(t *testing.T) {
	_, err := Parse("1 +")
	if err == nil {
		t.Fatal("expected syntax error")
	}
	if _, ok := err.(*Error); !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
}
