package lexer

import "github.com/starkandwayne/goutils/ansi"

// Error reports an unrecognized token at a given position.
type Error struct {
	Text string
	Pos  Position
}

func (e *Error) Error() string {
	return ansi.Sprintf("@R{unrecognized token} @c{%q} @R{at line %d, column %d}", e.Text, e.Pos.Line, e.Pos.Column)
}
