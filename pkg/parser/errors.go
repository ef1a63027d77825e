package parser

import (
	"github.com/starkandwayne/goutils/ansi"

	"github.com/cesnet/pynspect/pkg/lexer"
)

// Error reports a syntax error at a specific token. No recovery is
// attempted; parsing stops at the first Error.
type Error struct {
	Text string
	Pos  lexer.Position
}

func (e *Error) Error() string {
	return ansi.Sprintf("@R{syntax error near} @c{%q} @R{at line %d, column %d}", e.Text, e.Pos.Line, e.Pos.Column)
}
