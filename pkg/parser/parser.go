// Package parser builds the expression tree from a token stream via a
// precedence-climbing grammar: lowest-to-highest, logical OR/XOR, logical
// AND, unary NOT/EXISTS, comparison, additive, multiplicative, atom. Binary
// operators are right-associative, matching "a + b + c" parsing as
// "a + (b + c)".
package parser

import (
	"strconv"

	"github.com/cesnet/pynspect/pkg/ast"
	"github.com/cesnet/pynspect/pkg/lexer"
)

// Parse lexes and parses src into a single expression tree.
func Parse(src string) (*ast.Node, error) {
	toks, err := lexer.New(src, "").Tokens()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != lexer.EOF {
		return nil, &Error{Text: p.cur().Text, Pos: p.cur().Pos}
	}
	return n, nil
}

type parser struct {
	toks []lexer.Token
	pos  int
}

func (p *parser) cur() lexer.Token {
	return p.toks[p.pos]
}

func (p *parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k lexer.Kind) (lexer.Token, error) {
	t := p.cur()
	if t.Kind != k {
		return t, &Error{Text: t.Text, Pos: t.Pos}
	}
	return p.advance(), nil
}

func toPos(p lexer.Position) ast.Position {
	return ast.Position{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// Level 1: logical OR / XOR.
func (p *parser) parseOr() (*ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	var op ast.Op
	switch p.cur().Kind {
	case lexer.OpOr:
		op = ast.OpOr
	case lexer.OpOrP:
		op = ast.OpOrP
	case lexer.OpXor:
		op = ast.OpXor
	case lexer.OpXorP:
		op = ast.OpXorP
	default:
		return left, nil
	}
	tok := p.advance()
	right, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	return ast.NewLogicalBinOp(op, left, right, toPos(tok.Pos)), nil
}

// Level 2: logical AND.
func (p *parser) parseAnd() (*ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	var op ast.Op
	switch p.cur().Kind {
	case lexer.OpAnd:
		op = ast.OpAnd
	case lexer.OpAndP:
		op = ast.OpAndP
	default:
		return left, nil
	}
	tok := p.advance()
	right, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	return ast.NewLogicalBinOp(op, left, right, toPos(tok.Pos)), nil
}

// Level 3: unary NOT / EXISTS (prefix).
func (p *parser) parseUnary() (*ast.Node, error) {
	var op ast.Op
	switch p.cur().Kind {
	case lexer.OpNot:
		op = ast.OpNot
	case lexer.OpExists:
		op = ast.OpExists
	default:
		return p.parseComparison()
	}
	tok := p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return ast.NewUnaryOp(op, operand, toPos(tok.Pos)), nil
}

// Level 4: comparison.
func (p *parser) parseComparison() (*ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	var op ast.Op
	switch p.cur().Kind {
	case lexer.OpEq:
		op = ast.OpEq
	case lexer.OpNe:
		op = ast.OpNe
	case lexer.OpGt:
		op = ast.OpGt
	case lexer.OpGe:
		op = ast.OpGe
	case lexer.OpLt:
		op = ast.OpLt
	case lexer.OpLe:
		op = ast.OpLe
	case lexer.OpLike:
		op = ast.OpLike
	case lexer.OpIn:
		op = ast.OpIn
	case lexer.OpIs:
		op = ast.OpIs
	default:
		return left, nil
	}
	tok := p.advance()
	right, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	return ast.NewComparisonBinOp(op, left, right, toPos(tok.Pos)), nil
}

// Level 5: additive.
func (p *parser) parseAdditive() (*ast.Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	var op ast.Op
	switch p.cur().Kind {
	case lexer.OpPlus:
		op = ast.OpPlus
	case lexer.OpMinus:
		op = ast.OpMinus
	default:
		return left, nil
	}
	tok := p.advance()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return ast.NewMathBinOp(op, left, right, toPos(tok.Pos)), nil
}

// Level 6: multiplicative.
func (p *parser) parseMultiplicative() (*ast.Node, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	var op ast.Op
	switch p.cur().Kind {
	case lexer.OpTimes:
		op = ast.OpTimes
	case lexer.OpDivide:
		op = ast.OpDivide
	case lexer.OpModulo:
		op = ast.OpModulo
	default:
		return left, nil
	}
	tok := p.advance()
	right, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	return ast.NewMathBinOp(op, left, right, toPos(tok.Pos)), nil
}

// Level 7: atoms — literal, variable, function call, [ list ], ( expr ).
func (p *parser) parseAtom() (*ast.Node, error) {
	tok := p.cur()
	switch tok.Kind {
	case lexer.IPv4:
		p.advance()
		return ast.NewIPv4(tok.Text, toPos(tok.Pos)), nil

	case lexer.IPv6:
		p.advance()
		return ast.NewIPv6(tok.Text, toPos(tok.Pos)), nil

	case lexer.Datetime:
		p.advance()
		return ast.NewDatetime(tok.Text, toPos(tok.Pos)), nil

	case lexer.Integer:
		p.advance()
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, &Error{Text: tok.Text, Pos: tok.Pos}
		}
		return ast.NewInteger(v, toPos(tok.Pos)), nil

	case lexer.Float:
		p.advance()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, &Error{Text: tok.Text, Pos: tok.Pos}
		}
		return ast.NewFloat(v, toPos(tok.Pos)), nil

	case lexer.Constant:
		p.advance()
		return ast.NewConstant(tok.Text, toPos(tok.Pos)), nil

	case lexer.Variable:
		p.advance()
		return ast.NewVariable(tok.Text, toPos(tok.Pos)), nil

	case lexer.Function:
		return p.parseFunction()

	case lexer.LBracket:
		return p.parseList()

	case lexer.LParen:
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return inner, nil

	default:
		return nil, &Error{Text: tok.Text, Pos: tok.Pos}
	}
}

func (p *parser) parseFunction() (*ast.Node, error) {
	name := p.advance()
	if _, err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	var args []*ast.Node
	if p.cur().Kind != lexer.RParen {
		for {
			arg, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur().Kind == lexer.Comma || p.cur().Kind == lexer.Semicolon {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	return ast.NewFunction(name.Text, args, toPos(name.Pos)), nil
}

func (p *parser) parseList() (*ast.Node, error) {
	open := p.advance()
	var items []*ast.Node
	if p.cur().Kind != lexer.RBracket {
		for {
			item, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			if p.cur().Kind == lexer.Comma || p.cur().Kind == lexer.Semicolon {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(lexer.RBracket); err != nil {
		return nil, err
	}
	return ast.NewList(items, toPos(open.Pos)), nil
}
