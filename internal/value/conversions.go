package value

import (
	"strconv"
	"strings"

	"unidad/internal/diagnostics"
)

// ToInt converts v to a dimensionless int64 Number, mirroring
// __to_int__'s per-kind dispatch: a Number truncates toward zero
// (identity if already int-backed), a Bool maps false/true to 0/1, a
// Str is trimmed of surrounding whitespace and parsed as a base-10
// integer, and everything else (None, List, Range, Closure, ExternFn)
// has no numeric reading. An empty or non-numeric Str, or any
// unconvertible kind, raises a fatal TypeError (E301) via
// diagnostics.Throw rather than returning an error value.
func ToInt(v Value, loc diagnostics.Location, lines []string) *Number {
	switch t := v.(type) {
	case *Number:
		if t.NumKind == NumInt64 {
			return NewInt(t.I)
		}
		return NewInt(int64(t.F))
	case Bool:
		if t {
			return NewInt(1)
		}
		return NewInt(0)
	case *Str:
		trimmed := strings.TrimSpace(string(t.Runes))
		if trimmed == "" {
			diagnostics.Throw(301, loc, lines)
			panic("unreachable")
		}
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			diagnostics.Throw(301, loc, lines)
			panic("unreachable")
		}
		return NewInt(n)
	default:
		diagnostics.Throw(301, loc, lines)
		panic("unreachable")
	}
}
