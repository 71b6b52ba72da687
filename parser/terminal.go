package parser

import (
	"fmt"
	"regexp"
	"strings"
)

type literal struct {
	text string
}

// Term creates a terminal parser matching the exact text at current offset.
// Its value is the text itself.
func Term(text string) Parser {
	return &literal{text}
}

func (l *literal) String() string {
	return fmt.Sprintf("'%s'", l.text)
}

func (l *literal) parse(input string, pos int) (any, int, error) {
	if strings.HasPrefix(input[pos:], l.text) {
		return l.text, pos + len(l.text), nil
	}
	return nil, 0, unexpectedInputError(l, input, pos)
}

type pattern struct {
	re *regexp.Regexp
}

// Regex creates a terminal parser matching a regular expression. The match must
// begin exactly at current offset, a match starting further in the input does
// not count. expr is compiled with regexp.MustCompile and panics on a bad
// pattern at grammar build time.
//
// The pattern itself determines the shape of the value: with no capturing
// groups the value is the whole matched text, with one or more groups it is a
// []any of group texts in order. A group that did not participate in the match
// yields "".
func Regex(expr string) Parser {
	return &pattern{regexp.MustCompile(expr)}
}

func (p *pattern) String() string {
	return "/" + p.re.String() + "/"
}

func (p *pattern) parse(input string, pos int) (any, int, error) {
	match := p.re.FindStringSubmatchIndex(input[pos:])
	if match == nil || match[0] != 0 {
		return nil, 0, unexpectedInputError(p, input, pos)
	}

	if len(match) == 2 {
		return input[pos : pos+match[1]], pos + match[1], nil
	}

	groups := make([]any, 0, len(match)/2-1)
	for i := 2; i < len(match); i += 2 {
		if match[i] < 0 {
			groups = append(groups, "")
		} else {
			groups = append(groups, input[pos+match[i]:pos+match[i+1]])
		}
	}
	return groups, pos + match[1], nil
}
