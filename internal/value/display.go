package value

import (
	"strconv"

	"unidad/internal/units"
)

// formatNumeric renders a plain float64 the way print_number's C "%g"
// does: 6 significant digits by default, not the shortest round-trip
// representation (Go's precision -1), which can show more digits than
// C's printf would for the same value.
func formatNumeric(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Display renders n as the interpreter's echo/print form: its value
// folded through its unit (via EvalNumber, identical to what Convert's
// to-dimensionless branch computes) followed by a space and the unit's
// printed form, omitted entirely when the unit prints empty.
func Display(n *Number, table units.Table) string {
	value := EvalNumber(n, nil, table)
	out := formatNumeric(value)

	unitStr := units.Print(n.Unit)
	if unitStr == "" {
		return out
	}
	return out + " " + unitStr
}

// ToStr renders v the way the conversions layer's __to_str__ does:
// numbers through Display (unit-aware), bool as "true"/"false", strings
// passed through, lists recursively rendered with quoted string
// elements, None as "None", ranges/closures/externs as their bracketed
// placeholder form.
func ToStr(v Value, table units.Table) string {
	switch t := v.(type) {
	case *Number:
		return Display(t, table)
	case Bool:
		if t {
			return "true"
		}
		return "false"
	case *Str:
		return string(t.Runes)
	case *List:
		return listToStr(t, table)
	case None:
		return "None"
	case *Range:
		return "[Range]"
	case *Closure:
		return "[Function]"
	case *ExternFn:
		return "[Extern Function]"
	default:
		return "[Unknown]"
	}
}

func listToStr(l *List, table units.Table) string {
	out := "["
	for i, item := range l.Items {
		if i > 0 {
			out += ", "
		}
		if s, ok := item.(*Str); ok {
			out += "\"" + string(s.Runes) + "\""
		} else {
			out += ToStr(item, table)
		}
	}
	return out + "]"
}
