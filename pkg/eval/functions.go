package eval

import (
	"time"

	"github.com/cesnet/pynspect/pkg/domain"
)

// Func is a host-provided function callable from a Function node.
type Func func(args []interface{}) (interface{}, error)

// defaultFunctions returns the built-in function registry every
// Evaluator starts with.
func defaultFunctions() map[string]Func {
	return map[string]Func{
		"utcnow": func(args []interface{}) (interface{}, error) {
			if len(args) != 0 {
				return nil, &Error{Reason: "utcnow() takes no arguments"}
			}
			return domain.Datetime{T: time.Now().UTC()}, nil
		},
		"size": func(args []interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, &Error{Reason: "size() takes exactly one argument"}
			}
			return int64(len(toSequence(args[0]))), nil
		},
	}
}
