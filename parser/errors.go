package parser

import (
	"github.com/ava12/parc"
)

// Error codes used at parse time:
const (
	// ErrUnexpectedInput indicates that a terminal parser did not match at current offset.
	ErrUnexpectedInput = iota + parc.ParseErrors

	// ErrNoMatch indicates that no alternative of an ordered choice matched.
	ErrNoMatch

	// ErrTooFewReps indicates that a repetition failed before reaching its minimum count.
	ErrTooFewReps

	// ErrTrailingInput indicates that the root parser succeeded without consuming
	// the whole input.
	ErrTrailingInput
)

// Error codes used at grammar build time, reported by panic:
const (
	// ErrBadRepeatBounds indicates invalid Repeat bounds: min < 0 or max < min.
	ErrBadRepeatBounds = iota + parc.BuildErrors
)

func unexpectedInputError(p Parser, input string, pos int) *parc.Error {
	return parc.FormatErrorPos(pos, ErrUnexpectedInput, "expecting %s, found %q", p, input[pos:])
}

func noMatchError(c Parser, input string, pos int) *parc.Error {
	return parc.FormatErrorPos(pos, ErrNoMatch, "expecting %s, found %q", c, input[pos:])
}

func tooFewRepsError(q *quantified, input string, pos, got int) *parc.Error {
	return parc.FormatErrorPos(pos, ErrTooFewReps,
		"expecting at least %d of %s, got %d, found %q", q.min, q.child, got, input[pos:])
}

func trailingInputError(input string, pos int) *parc.Error {
	return parc.FormatErrorPos(pos, ErrTrailingInput, "unparsed input %q", input[pos:])
}

func badRepeatBoundsError(min, max int) *parc.Error {
	return parc.FormatError(ErrBadRepeatBounds, "invalid repetition bounds {%d, %d}", min, max)
}
