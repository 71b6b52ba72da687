package parser

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/ava12/parc"
)

func checkValue(t *testing.T, input string, got, expected any) {
	t.Helper()
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("input %q: expecting %#v, got %#v", input, expected, got)
	}
}

func checkParse(t *testing.T, p Parser, input string, expected any) {
	t.Helper()
	got, e := Parse(p, input)
	if e != nil {
		t.Fatalf("input %q: unexpected error: %s", input, e.Error())
	}
	checkValue(t, input, got, expected)
}

func checkError(t *testing.T, e error, code int) *parc.Error {
	t.Helper()
	if e == nil {
		t.Fatalf("expecting error with code %d, got success", code)
	}
	ee, isParcError := e.(*parc.Error)
	if !isParcError {
		t.Fatalf("expecting *parc.Error, got %T (%s)", e, e.Error())
	}
	if ee.Code != code {
		t.Fatalf("expecting error code %d, got %d (%s)", code, ee.Code, ee.Message)
	}
	return ee
}

func TestParseEmptyInput(t *testing.T) {
	p := Repeat(Term("x"), 0, Unbounded)
	checkParse(t, p, "", []any{})
}

func TestParseTrailingInput(t *testing.T) {
	p := Repeat(Term("foo"), 2, 2)
	checkParse(t, p, "foofoo", []any{"foo", "foo"})

	_, e := Parse(p, "foofoofoo")
	ee := checkError(t, e, ErrTrailingInput)
	if ee.Pos != 6 {
		t.Fatalf("expecting error at offset 6, got %d", ee.Pos)
	}
	if !strings.Contains(ee.Message, "\"foo\"") {
		t.Fatalf("expecting unconsumed suffix in error message, got %q", ee.Message)
	}
}

func TestParseInnerNodesIgnoreTrailingInput(t *testing.T) {
	// only the driver checks total consumption
	p := Seq(Term("a"), Term("b"))
	val, next, e := p.parse("abc", 0)
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if next != 2 {
		t.Fatalf("expecting offset 2, got %d", next)
	}
	checkValue(t, "abc", val, []any{"a", "b"})
}

func TestParseReportsOffsetAndSuffix(t *testing.T) {
	p := Seq(Term("ab"), Term("cd"))
	_, e := Parse(p, "abXY")
	ee := checkError(t, e, ErrUnexpectedInput)
	if ee.Pos != 2 {
		t.Fatalf("expecting error at offset 2, got %d", ee.Pos)
	}
	if !strings.Contains(ee.Message, "'cd'") {
		t.Fatalf("expecting failing parser description in error message, got %q", ee.Message)
	}
	if !strings.Contains(ee.Message, "\"XY\"") {
		t.Fatalf("expecting remaining suffix in error message, got %q", ee.Message)
	}
	if !strings.Contains(ee.Message, "offset 2") {
		t.Fatalf("expecting offset in error message, got %q", ee.Message)
	}
}

func TestConcurrentReuse(t *testing.T) {
	p := Joined(Regex("[a-z]+"), Term(","))
	inputs := []string{"a", "a,b", "foo,bar,baz", "x,y,z,w"}

	var wg sync.WaitGroup
	for round := 0; round < 8; round++ {
		for _, input := range inputs {
			wg.Add(1)
			go func(input string) {
				defer wg.Done()
				got, e := Parse(p, input)
				if e != nil {
					t.Errorf("input %q: unexpected error: %s", input, e.Error())
					return
				}
				expected := make([]any, 0)
				for _, part := range strings.Split(input, ",") {
					expected = append(expected, part)
				}
				if !reflect.DeepEqual(got, expected) {
					t.Errorf("input %q: expecting %#v, got %#v", input, expected, got)
				}
			}(input)
		}
	}
	wg.Wait()
}
