package value

import "unidad/internal/diagnostics"

// Str is a boxed string, stored as a rune slice so indexing and slicing
// operate on code points rather than bytes, matching the source
// runtime's UTF-8-aware g_utf8_next_char walking.
type Str struct {
	Runes []rune
}

func (*Str) Kind() Kind { return KindString }
func (*Str) sealed()    {}

// NewStr boxes a Go string.
func NewStr(s string) *Str {
	return &Str{Runes: []rune(s)}
}

func (s *Str) String() string { return string(s.Runes) }

// StrGet returns the code point at index (negative indices count from
// the end). Unlike the reference implementation, which returns an empty
// string on out-of-bounds access, this raises a fatal index fault
// (E902): the data model documents indexing as throwing, and that
// documented, testable behavior takes precedence over the silent
// fallback the original happens to implement.
func StrGet(s *Str, index int, loc diagnostics.Location, lines []string) rune {
	idx := NormalizeIndex(index, len(s.Runes))
	if idx < 0 {
		diagnostics.Throw(902, loc, lines)
		panic("unreachable")
	}
	return s.Runes[idx]
}

// StrSet replaces the code point at index with the first code point of
// val in place, raising a fatal index fault (E902) on out-of-bounds
// access (same documented-throwing rule as StrGet). A val with no code
// points of its own is a caller error and left unhandled, matching the
// reference runtime's assumption that set is never called with an
// empty replacement string.
func StrSet(s *Str, index int, val *Str, loc diagnostics.Location, lines []string) {
	idx := NormalizeIndex(index, len(s.Runes))
	if idx < 0 {
		diagnostics.Throw(902, loc, lines)
		panic("unreachable")
	}
	s.Runes[idx] = val.Runes[0]
}

// StrSlice returns the substring selected by start/stop/step (any of which
// may be SliceNone), matching the shared normalizer's semantics.
func StrSlice(s *Str, start, stop, step int) *Str {
	length := len(s.Runes)
	if length == 0 || step == 0 {
		return &Str{}
	}

	st, e, stp := NormalizeSlice(length, start, stop, step)
	var out []rune
	if stp > 0 {
		for i := st; i < e; i += stp {
			out = append(out, s.Runes[i])
		}
	} else {
		for i := st; i > e; i += stp {
			out = append(out, s.Runes[i])
		}
	}
	return &Str{Runes: out}
}

// StrConcat returns a new string with b appended to a.
func StrConcat(a, b *Str) *Str {
	out := make([]rune, 0, len(a.Runes)+len(b.Runes))
	out = append(out, a.Runes...)
	out = append(out, b.Runes...)
	return &Str{Runes: out}
}

// StrRepeat returns s repeated n times (n <= 0 yields the empty string).
func StrRepeat(s *Str, n int) *Str {
	if n <= 0 || len(s.Runes) == 0 {
		return &Str{}
	}
	out := make([]rune, 0, len(s.Runes)*n)
	for i := 0; i < n; i++ {
		out = append(out, s.Runes...)
	}
	return &Str{Runes: out}
}

// StrEq reports whether a and b hold identical code point sequences.
func StrEq(a, b *Str) bool {
	if len(a.Runes) != len(b.Runes) {
		return false
	}
	for i := range a.Runes {
		if a.Runes[i] != b.Runes[i] {
			return false
		}
	}
	return true
}

// StrCompare three-way compares a and b byte-wise over their UTF-8
// encoding, matching the source runtime's strcmp-on-bytes behavior for
// </<=/>/>=. This deliberately does not agree with code-point order for
// non-ASCII text (len and indexing count code points; ordering does
// not), per the source's own documented discrepancy.
func StrCompare(a, b *Str) int {
	sa, sb := string(a.Runes), string(b.Runes)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}
