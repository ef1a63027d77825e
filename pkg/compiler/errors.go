package compiler

import (
	"github.com/starkandwayne/goutils/ansi"

	"github.com/cesnet/pynspect/pkg/ast"
)

// Error reports a genuinely malformed constant standing opposite a typed
// field: a value that must lift to Field's domain type (IPv4/IPv6/Datetime)
// but fails to parse, e.g. a string that looks like a timestamp but isn't
// one.
type Error struct {
	Field string
	Raw   string
	Pos   ast.Position
}

func (e *Error) Error() string {
	return ansi.Sprintf("@R{compile error:} @c{%q} @R{is not a valid value for} @c{%s} @R{at line %d, column %d}",
		e.Raw, e.Field, e.Pos.Line, e.Pos.Column)
}
