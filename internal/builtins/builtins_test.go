package builtins

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"unidad/internal/value"
)

type noopTable struct{}

func (noopTable) BaseUnit(id uint16, n float64) float64       { return n }
func (noopTable) UnitEval(id uint16, n float64) float64       { return n }
func (noopTable) UnitEvalNormal(id uint16, n float64) float64 { return n }
func (noopTable) IsLogarithmic(id uint16) bool                { return false }

func TestEchoDefaultNewline(t *testing.T) {
	var buf bytes.Buffer
	Echo(&buf, value.NewStr("hi"), nil, noopTable{})
	if buf.String() != "hi\n" {
		t.Fatalf("Echo() = %q, want %q", buf.String(), "hi\n")
	}
}

func TestEchoQuotesStringsInsideList(t *testing.T) {
	var buf bytes.Buffer
	l := value.NewList([]value.Value{value.NewStr("a"), value.NewInt(1)})
	Echo(&buf, l, nil, noopTable{})
	if buf.String() != "[\"a\", 1]\n" {
		t.Fatalf("Echo(list) = %q, want %q", buf.String(), "[\"a\", 1]\n")
	}
}

func TestEchoTopLevelStringUnquoted(t *testing.T) {
	var buf bytes.Buffer
	Echo(&buf, value.NewStr("plain"), nil, noopTable{})
	if buf.String() != "plain\n" {
		t.Fatalf("Echo(string) = %q, want unquoted %q", buf.String(), "plain\n")
	}
}

func TestInputReadsLineAndStripsNewline(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	got := Input(&out, in, value.NewStr("prompt> "), noopTable{})
	if string(got.Runes) != "hello world" {
		t.Fatalf("Input() = %q, want %q", string(got.Runes), "hello world")
	}
	if out.String() != "prompt> " {
		t.Fatalf("expected prompt echoed with no newline, got %q", out.String())
	}
}

func TestInputEOFReturnsEmptyString(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(""))
	got := Input(&out, in, nil, noopTable{})
	if string(got.Runes) != "" {
		t.Fatalf("Input() on EOF = %q, want empty string", string(got.Runes))
	}
}

func TestIndexOfDeepEquality(t *testing.T) {
	l := value.NewList([]value.Value{value.NewInt(1), value.NewStr("x"), value.NewInt(3)})
	if got := IndexOf(l, value.NewStr("x")); got != 1 {
		t.Fatalf("IndexOf = %d, want 1", got)
	}
	if got := IndexOf(l, value.NewStr("missing")); got != -1 {
		t.Fatalf("IndexOf(missing) = %d, want -1", got)
	}
}

func TestSplit(t *testing.T) {
	got := Split(value.NewStr("a,b,c"), value.NewStr(","))
	if len(got.Items) != 3 {
		t.Fatalf("Split produced %d parts, want 3", len(got.Items))
	}
	for i, want := range []string{"a", "b", "c"} {
		s := got.Items[i].(*value.Str)
		if string(s.Runes) != want {
			t.Fatalf("Split()[%d] = %q, want %q", i, string(s.Runes), want)
		}
	}
}

func TestFloorTruncatesFloatToInt(t *testing.T) {
	got := Floor(value.NewFloat(3.9))
	if got.NumKind != value.NumInt64 {
		t.Fatalf("Floor(3.9) NumKind = %v, want NumInt64", got.NumKind)
	}
	if got.I != 3 {
		t.Fatalf("Floor(3.9) = %d, want 3", got.I)
	}
}

func TestFloorIntIdentity(t *testing.T) {
	got := Floor(value.NewInt(5))
	if got.NumKind != value.NumInt64 {
		t.Fatalf("Floor(5) NumKind = %v, want NumInt64", got.NumKind)
	}
	if got.I != 5 {
		t.Fatalf("Floor(5) = %d, want 5", got.I)
	}
}

func TestRegisterBuiltinsPopulatesAll(t *testing.T) {
	r := NewRegistry()
	var out bytes.Buffer
	RegisterBuiltins(r, &out, strings.NewReader(""), noopTable{})

	for _, name := range []string{"echo", "input", "floor", "random", "indexof", "split"} {
		if r.Lookup(name) == nil {
			t.Fatalf("expected builtin %q to be registered", name)
		}
	}
}
