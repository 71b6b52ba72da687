/*
Package parser implements the combinator engine.

A grammar is a tree of Parser values built from terminal parsers (Term, Regex) and
combinators (Seq, OneOf, Repeat, Drop, Map, Label, and the derived Nth, Joined, Optional,
Enclosed). Construction touches no input; evaluation starts with Parse, which walks the
tree against an input string, threading a byte offset through the recursion.

Values produced by evaluation are untyped:
  - a literal or a groupless pattern yields the matched string;
  - a pattern with capturing groups yields a []any of group texts;
  - a sequence or a repetition yields a []any of child values;
  - a dropped parser yields nil, and nil values are omitted from enclosing lists.

Parsers are immutable once built and safe for concurrent use: the same grammar may be
evaluated by any number of goroutines on different inputs without synchronization. The
input string and the grammar tree are read-only during a parse, the only evaluation
state is the offset passed by value through the recursion.

Evaluation is plain recursive descent with no mitigations for pathological grammars:
a repetition whose child can succeed without consuming input does not terminate, and
deeply nested grammars consume stack proportionally to their depth.
*/
package parser

// Parser is a node of a grammar tree. The set of implementations is closed;
// grammars are built with the constructor functions of this package.
// Every Parser implements fmt.Stringer, returning the description used in
// failure messages.
type Parser interface {
	// String returns the textual description of this parser used in error messages.
	String() string

	// parse attempts a match starting exactly at pos. On success it returns the
	// produced value (nil for dropped parsers) and the offset past the match.
	// On failure it returns a non-nil *parc.Error and makes no claims about the
	// other results.
	parse(input string, pos int) (val any, next int, err error)
}

// Parse evaluates p against input starting at offset 0 and requires the whole
// input to be consumed. Returns the produced value, or a *parc.Error describing
// the first failure. Unconsumed leftover input is reported as ErrTrailingInput.
func Parse(p Parser, input string) (any, error) {
	val, next, e := p.parse(input, 0)
	if e != nil {
		return nil, e
	}
	if next < len(input) {
		return nil, trailingInputError(input, next)
	}
	return val, nil
}
