package eval

import "github.com/starkandwayne/goutils/ansi"

// Error reports a failure while evaluating an expression tree against a
// record: an unknown function name, an uneven vector length for a
// math operation, or similar.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return ansi.Sprintf("@R{evaluation error:} @c{%s}", e.Reason)
}
