package parser

// Nth creates a parser selecting entry i of the list value produced by child.
// If the value is not a list or i is out of range, the value is nil instead of
// a failure.
func Nth(child Parser, i int) Parser {
	return Map(child, func(val any) any {
		list, isList := val.([]any)
		if !isList || i < 0 || i >= len(list) {
			return nil
		}
		return list[i]
	})
}

// Joined creates a parser matching one or more tokens joined by separator.
// Separator matches are dropped; the value is a []any of token values in
// order. At least one token is required, its failure is the parser's failure.
//
// The token's own value shape is preserved: a token that is itself a sequence
// contributes its whole list as one entry.
func Joined(token, separator Parser) Parser {
	rest := Repeat(Nth(newSeq(Drop(separator), token), 0), 0, Unbounded)
	return Map(newSeq(token, rest), func(val any) any {
		parts := val.([]any)
		tail := parts[len(parts)-1].([]any)
		res := make([]any, 0, len(parts)-1+len(tail))
		res = append(res, parts[:len(parts)-1]...)
		return append(res, tail...)
	})
}

// Optional creates a parser matching zero or one occurrence of child. It never
// fails: if child does not match at current offset the value is nil and no
// input is consumed, otherwise the value is child's value.
func Optional(child Parser) Parser {
	return Nth(Repeat(child, 0, 1), 0)
}

// Enclosed creates a parser matching core between the literal delimiters left
// and right. The delimiters are required and consumed, but only core's value
// is kept.
func Enclosed(left string, core Parser, right string) Parser {
	return Nth(Seq(Drop(Term(left)), core, Drop(Term(right))), 0)
}
