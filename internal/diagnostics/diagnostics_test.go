package diagnostics

import (
	"strings"
	"testing"
)

func withCapturedExit(t *testing.T, fn func()) (exitCode int, called bool) {
	t.Helper()
	oldExit := exitFunc
	defer func() { exitFunc = oldExit }()
	exitFunc = func(code int) {
		exitCode = code
		called = true
		panic("diagnostics-test-exit")
	}
	defer func() {
		if r := recover(); r != nil && r != "diagnostics-test-exit" {
			panic(r)
		}
	}()
	fn()
	return
}

func TestThrowCallsExitFunc(t *testing.T) {
	lines := []string{"x = 1 + \"two\""}
	code, called := withCapturedExit(t, func() {
		Throw(301, Location{File: "demo.un", Line: 1, Col: 9, EndLine: 1, EndCol: 13}, lines)
	})
	if !called {
		t.Fatalf("expected Throw to call exitFunc")
	}
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestExcerptHighlightsSpan(t *testing.T) {
	lines := []string{"let xs = [1, 2, 3]"}
	out := Excerpt(Location{File: "demo.un", Line: 1, Col: 12, EndLine: 1, EndCol: 18}, lines)
	if !strings.Contains(out, "1 │") {
		t.Fatalf("expected line-number gutter in excerpt, got %q", out)
	}
	if !strings.Contains(out, "╰") || !strings.Contains(out, "╯") {
		t.Fatalf("expected underline endpoints in single-line excerpt, got %q", out)
	}
}

func TestExcerptEllipsizesLongLines(t *testing.T) {
	long := strings.Repeat("a", 100) + "BAD" + strings.Repeat("b", 100)
	out := Excerpt(Location{File: "demo.un", Line: 1, Col: 101, EndLine: 1, EndCol: 104}, []string{long})
	if !strings.Contains(out, "...") {
		t.Fatalf("expected ellipsis markers for a window-exceeding line, got %q", out)
	}
}

func TestExcerptEllipsisFollowsTrailingContext(t *testing.T) {
	line := "BAD" + strings.Repeat("c", 50)
	out := Excerpt(Location{File: "demo.un", Line: 1, Col: 1, EndLine: 1, EndCol: 4}, []string{line})
	want := "BAD" + ansiReset + strings.Repeat("c", 30) + "..."
	if !strings.Contains(out, want) {
		t.Fatalf("expected trailing context before the ellipsis, got %q", out)
	}
	if strings.Contains(out, "BAD...") {
		t.Fatalf("ellipsis must not land immediately after the highlighted span, got %q", out)
	}
}

func TestExcerptSpansMultipleLines(t *testing.T) {
	lines := []string{"a = [1,", "2, 3]"}
	out := Excerpt(Location{File: "demo.un", Line: 1, Col: 5, EndLine: 2, EndCol: 5}, lines)
	if strings.Count(out, "│") < 4 {
		t.Fatalf("expected a gutter+underline pair per line, got %q", out)
	}
}
