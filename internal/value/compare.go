package value

import "math"

// sign returns -1, 0, or 1 according to the sign of d.
func sign(d float64) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// Compare returns a three-way comparison of a and b's numeric payloads,
// ignoring units (callers that care about units compare them
// separately). Same-kind comparisons compare directly; mixed-kind
// comparisons widen the int64 side and flip the sign so the result is
// always "a relative to b", matching number_cmp's flip convention. A
// comparison against NaN reports equal (0), matching the source's
// isnan-guard short-circuit.
func Compare(a, b *Number) int {
	if a.NumKind == b.NumKind {
		if a.NumKind == NumInt64 {
			switch {
			case a.I < b.I:
				return -1
			case a.I > b.I:
				return 1
			default:
				return 0
			}
		}
		if math.IsNaN(a.F) || math.IsNaN(b.F) {
			return 0
		}
		return sign(a.F - b.F)
	}

	// Mixed kind: one side is int64, the other float64. flip makes the
	// result read as "a relative to b" regardless of which side is the
	// double.
	var iv int64
	var fv float64
	var flip int
	if a.NumKind == NumFloat64 {
		fv, iv, flip = a.F, b.I, -1
	} else {
		iv, fv, flip = a.I, b.F, 1
	}

	if math.IsNaN(fv) {
		return 0
	}
	diff := float64(iv) - fv
	return flip * sign(diff)
}

// Eq reports numeric equality of a and b (unit-independent, as with Compare).
func Eq(a, b *Number) bool { return Compare(a, b) == 0 }

// Lt, Le, Gt, Ge mirror number__lt__/__le__/__gt__/__ge__.
func Lt(a, b *Number) bool { return Compare(a, b) < 0 }
func Le(a, b *Number) bool { return Compare(a, b) <= 0 }
func Gt(a, b *Number) bool { return Compare(a, b) > 0 }
func Ge(a, b *Number) bool { return Compare(a, b) >= 0 }
