// Package diagnostics implements the interpreter's fatal runtime fault
// path: u_throw's ANSI-colored, source-excerpt-annotated error report,
// the process-wide source registry it reads from, and an optional
// websocket broadcaster for watching those faults from outside the
// process.
//
// This is deliberately not modeled as a Go `error`: like the C runtime
// it's grounded on, a call to Throw never returns to its caller. It
// terminates the process by design, matching the interpreted program's
// unrecoverable-fault semantics rather than Go's own recoverable error
// convention.
package diagnostics

// Location spans a region of source text, possibly across multiple
// lines. EndLine/EndCol of -1 mean "unspecified", resolved against the
// owning program's line count/line length when the excerpt is rendered.
type Location struct {
	File    string
	Line    int
	Col     int
	EndLine int
	EndCol  int
}

// splitLines expands a (possibly multi-line) span into one Location per
// physical line it covers, matching throw.c's _location_split: only the
// first line keeps the original column, only the last keeps the
// original end column, and interior lines span their full width.
func splitLines(span Location) []Location {
	start := span.Line
	end := span.EndLine
	if end == -1 {
		end = span.Line
	}
	if end < start {
		return nil
	}

	lines := make([]Location, 0, end-start+1)
	for line := start; line <= end; line++ {
		col := 1
		if line == span.Line {
			col = span.Col
		}
		endCol := -1
		if line == span.EndLine {
			endCol = span.EndCol
		}
		lines = append(lines, Location{File: span.File, Line: line, Col: col, EndLine: line, EndCol: endCol})
	}
	return lines
}
