package jpath

import (
	"strings"

	"github.com/starkandwayne/goutils/ansi"
)

// ShapeError is raised by the write-side accessors (Set, Unset) when the
// structure's actual shape at some chunk conflicts with what the path
// demands — e.g. a list chunk ('[*]'/'[#]'/'[n]') landing on something
// that isn't a slice. The read-side accessors (Values, Value, Exists)
// never raise this; they treat a shape mismatch as "no match" instead.
type ShapeError struct {
	Path     string
	Expected string
	Value    interface{}
}

func (e *ShapeError) Error() string {
	if e.Value != nil {
		return ansi.Sprintf("@c{$.%s} @R{[=%v] is not a} @m{%s}", e.Path, e.Value, e.Expected)
	}
	return ansi.Sprintf("@c{$.%s} @R{is not a} @m{%s}", e.Path, e.Expected)
}

func shapePath(chunks Path, upto int) string {
	names := make([]string, 0, upto+1)
	for i := 0; i <= upto && i < len(chunks); i++ {
		names = append(names, chunks[i].Raw)
	}
	return strings.Join(names, ".")
}
