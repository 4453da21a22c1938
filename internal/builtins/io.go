package builtins

import (
	"bufio"
	"io"
	"strings"

	"unidad/internal/units"
	"unidad/internal/value"
)

// Input echoes prompt (if non-nil) to w with no trailing newline, then
// reads one line from r, stripping its trailing newline/carriage
// return. It returns the empty string on EOF, matching the reference
// builtin's getline-failure fallback rather than raising a fault.
func Input(w io.Writer, r *bufio.Reader, prompt value.Value, table units.Table) *value.Str {
	if prompt != nil {
		empty := ""
		Echo(w, prompt, &empty, table)
	}

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return value.NewStr("")
	}

	line = strings.TrimRight(line, "\r\n")
	return value.NewStr(line)
}
