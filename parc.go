/*
Package parc is a recursive-descent parser-combinator library.

Consists of subpackages:
  - parser: the combinator engine — terminal parsers, composition operations, and the
    evaluation entry point;
  - examples/selector: an example client implementing a small selector/filter query language.

Typical usage is:

1. Build a grammar by combining terminal parsers (parser.Term, parser.Regex) with
combinators (parser.Seq, parser.OneOf, parser.Repeat, parser.Drop, parser.Map,
parser.Label) and derived combinators (parser.Nth, parser.Joined, parser.Optional,
parser.Enclosed).

2. Feed input strings to parser.Parse. A grammar is immutable once built and may be
reused for any number of inputs, concurrently.
*/
package parc

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	BuildErrors = 1   // grammar construction errors, reported by panic at build time
	ParseErrors = 101 // parse failures, reported by error at parse time
	AppErrors   = 301 // used by example clients
)

// Error is the error type used by parc subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including input offset if provided.
	Message string

	// Pos contains byte offset in the input at which the error occurred, or -1.
	Pos int
}

// NewError creates new Error structure.
// pos will be added to error message if non-negative.
func NewError(code int, msg string, pos int) *Error {
	if pos >= 0 {
		msg += fmt.Sprintf(" at offset %d", pos)
	}
	return &Error{code, msg, pos}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no offset information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, -1)
}

// FormatErrorPos creates Error structure with offset information.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos int, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos)
}
