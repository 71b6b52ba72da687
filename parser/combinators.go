package parser

import (
	"fmt"
	"strings"
)

// Unbounded is the Repeat max value meaning "no upper bound".
const Unbounded = -1

type sequence struct {
	items []Parser
}

// Seq creates a parser matching all given parsers one after another, threading
// the offset from one to the next. Its value is a []any of child values; nil
// child values (dropped parsers, absent optionals) contribute no entry.
// A failing child fails the whole sequence with that child's error, matches of
// preceding children are not revisited.
//
// An operand that is itself a sequence is spliced into the new parser's flat
// item list, so Seq(Seq(a, b), c) and Seq(a, Seq(b, c)) produce the same value
// shape as Seq(a, b, c). Label blocks this splicing: a labeled operand stays a
// single item and contributes its whole value as one entry.
func Seq(parsers ...Parser) Parser {
	items := make([]Parser, 0, len(parsers))
	for _, p := range parsers {
		if s, isSeq := p.(*sequence); isSeq {
			items = append(items, s.items...)
		} else {
			items = append(items, p)
		}
	}
	return &sequence{items}
}

// newSeq creates a sequence without splicing nested sequences. Derived
// combinators use it where an operand's value must stay one entry.
func newSeq(parsers ...Parser) Parser {
	return &sequence{parsers}
}

func (s *sequence) String() string {
	return "(" + joinDescs(s.items, ", ") + ")"
}

func (s *sequence) parse(input string, pos int) (any, int, error) {
	res := make([]any, 0, len(s.items))
	next := pos
	for _, p := range s.items {
		val, n, e := p.parse(input, next)
		if e != nil {
			return nil, 0, e
		}
		next = n
		if val != nil {
			res = append(res, val)
		}
	}
	return res, next, nil
}

type choice struct {
	items []Parser
}

// OneOf creates a parser matching the first of the given alternatives that
// succeeds, each tried from the same offset in the order given. There is no
// longest-match rule: overlapping alternatives must be listed most specific
// first. If no alternative matches, the parser fails with ErrNoMatch naming
// all alternatives.
//
// An operand that is itself a choice is spliced into the new parser's flat
// alternative list unless it is labeled.
func OneOf(parsers ...Parser) Parser {
	items := make([]Parser, 0, len(parsers))
	for _, p := range parsers {
		if c, isChoice := p.(*choice); isChoice {
			items = append(items, c.items...)
		} else {
			items = append(items, p)
		}
	}
	return &choice{items}
}

func (c *choice) String() string {
	return "(" + joinDescs(c.items, " | ") + ")"
}

func (c *choice) parse(input string, pos int) (any, int, error) {
	for _, p := range c.items {
		val, next, e := p.parse(input, pos)
		if e == nil {
			return val, next, nil
		}
	}
	return nil, 0, noMatchError(c, input, pos)
}

type quantified struct {
	child    Parser
	min, max int
}

// Repeat creates a parser matching child min times or more, but no more than
// max times, greedily. Pass Unbounded as max for no upper bound. Its value is
// a []any of child values, nil values omitted.
//
// The first min matches are mandatory: a failure among them fails the whole
// parser with ErrTooFewReps. Further matches are attempted until one fails or
// max is reached; the failing attempt terminates the loop silently and its
// error is discarded.
//
// Repeat panics with a *parc.Error of code ErrBadRepeatBounds if min < 0 or
// max is neither Unbounded nor >= min. Bounds are checked at grammar build
// time only, never during a parse.
func Repeat(child Parser, min, max int) Parser {
	if min < 0 || (max != Unbounded && max < min) {
		panic(badRepeatBoundsError(min, max))
	}
	return &quantified{child, min, max}
}

func (q *quantified) String() string {
	if q.max == Unbounded {
		return fmt.Sprintf("%s{%d,}", q.child, q.min)
	}
	return fmt.Sprintf("%s{%d,%d}", q.child, q.min, q.max)
}

func (q *quantified) parse(input string, pos int) (any, int, error) {
	res := make([]any, 0, q.min)
	next := pos
	for i := 0; i < q.min; i++ {
		val, n, e := q.child.parse(input, next)
		if e != nil {
			return nil, 0, tooFewRepsError(q, input, next, i)
		}
		next = n
		if val != nil {
			res = append(res, val)
		}
	}

	for count := q.min; q.max == Unbounded || count < q.max; count++ {
		val, n, e := q.child.parse(input, next)
		if e != nil {
			break
		}
		next = n
		if val != nil {
			res = append(res, val)
		}
	}
	return res, next, nil
}

type dropped struct {
	child Parser
}

// Drop creates a parser matching exactly what child matches, but yielding no
// value: the match is still required and still advances the offset, yet
// contributes no entry to an enclosing sequence or repetition. Used to elide
// syntactic punctuation from the result shape.
func Drop(child Parser) Parser {
	return &dropped{child}
}

func (d *dropped) String() string {
	return d.child.String()
}

func (d *dropped) parse(input string, pos int) (any, int, error) {
	_, next, e := d.child.parse(input, pos)
	if e != nil {
		return nil, 0, e
	}
	return nil, next, nil
}

type transformed struct {
	child Parser
	fn    func(any) any
}

// Map creates a parser applying fn to the value produced by child. fn must be
// pure; it is invoked on success only, a child failure propagates unchanged.
func Map(child Parser, fn func(any) any) Parser {
	return &transformed{child, fn}
}

func (m *transformed) String() string {
	return m.child.String()
}

func (m *transformed) parse(input string, pos int) (any, int, error) {
	val, next, e := m.child.parse(input, pos)
	if e != nil {
		return nil, 0, e
	}
	return m.fn(val), next, nil
}

type labeled struct {
	child Parser
	name  string
}

// Label creates a parser matching exactly what child matches, described by
// name in failure messages. A labeled parser is never spliced into an
// enclosing Seq or OneOf, so Label is also the way to force grouping where
// flattening would otherwise merge nested lists.
func Label(child Parser, name string) Parser {
	return &labeled{child, name}
}

func (l *labeled) String() string {
	return l.name
}

func (l *labeled) parse(input string, pos int) (any, int, error) {
	return l.child.parse(input, pos)
}

func joinDescs(parsers []Parser, sep string) string {
	descs := make([]string, len(parsers))
	for i, p := range parsers {
		descs[i] = p.String()
	}
	return strings.Join(descs, sep)
}
