package value

import "unidad/internal/diagnostics"

// List is a boxed, growable sequence of boxed values.
type List struct {
	Items []Value
}

func (*List) Kind() Kind { return KindList }
func (*List) sealed()    {}

// NewList boxes a slice of values, taking ownership of it.
func NewList(items []Value) *List {
	return &List{Items: items}
}

// ListGet returns the element at index (negative indices count from the
// end), raising a fatal index fault (E901) on out-of-bounds access
// rather than the reference implementation's silent nil, matching the
// data model's documented throwing behavior.
func ListGet(l *List, index int, loc diagnostics.Location, lines []string) Value {
	idx := NormalizeIndex(index, len(l.Items))
	if idx < 0 {
		diagnostics.Throw(901, loc, lines)
		panic("unreachable")
	}
	return l.Items[idx]
}

// ListSlice returns the sublist selected by start/stop/step.
func ListSlice(l *List, start, stop, step int) *List {
	length := len(l.Items)
	if length == 0 || step == 0 {
		return &List{}
	}

	st, e, stp := NormalizeSlice(length, start, stop, step)
	var out []Value
	if stp > 0 {
		for i := st; i < e; i += stp {
			out = append(out, l.Items[i])
		}
	} else {
		for i := st; i > e; i += stp {
			out = append(out, l.Items[i])
		}
	}
	return &List{Items: out}
}

// ListConcat returns a new list with b's elements appended after a's.
func ListConcat(a, b *List) *List {
	out := make([]Value, 0, len(a.Items)+len(b.Items))
	out = append(out, a.Items...)
	out = append(out, b.Items...)
	return &List{Items: out}
}

// ListRepeat returns a list of a's elements repeated n times.
func ListRepeat(a *List, n int) *List {
	if n <= 0 || len(a.Items) == 0 {
		return &List{}
	}
	out := make([]Value, 0, len(a.Items)*n)
	for i := 0; i < n; i++ {
		out = append(out, a.Items...)
	}
	return &List{Items: out}
}

// Append adds val to the end of l in place.
func Append(l *List, val Value) {
	l.Items = append(l.Items, val)
}

// Extend appends other's elements onto l in place.
func Extend(l *List, other *List) {
	l.Items = append(l.Items, other.Items...)
}

// Insert places val at index, clamping index into [0, len(l.Items)]
// the way list_insert treats out-of-range positions as "insert at the
// nearest end" rather than an error.
func Insert(l *List, index int, val Value) {
	length := len(l.Items)
	idx := NormalizeIndex(index, length)
	if idx < 0 {
		// NormalizeIndex returning -1 conflates "negative overflow" with
		// "too large"; list_insert clamps both to an end instead of
		// rejecting, so re-derive the clamp directly rather than reuse -1.
		if index < 0 {
			idx = 0
		} else {
			idx = length
		}
	}

	switch {
	case idx <= 0:
		l.Items = append([]Value{val}, l.Items...)
	case idx >= length:
		l.Items = append(l.Items, val)
	default:
		l.Items = append(l.Items, nil)
		copy(l.Items[idx+1:], l.Items[idx:])
		l.Items[idx] = val
	}
}

// Set replaces the element at index, reporting whether index was in
// bounds.
func Set(l *List, index int, val Value) bool {
	idx := NormalizeIndex(index, len(l.Items))
	if idx < 0 {
		return false
	}
	l.Items[idx] = val
	return true
}

// Delete removes the element at index, reporting whether index was in
// bounds.
func Delete(l *List, index int) bool {
	idx := NormalizeIndex(index, len(l.Items))
	if idx < 0 {
		return false
	}
	l.Items = append(l.Items[:idx], l.Items[idx+1:]...)
	return true
}

// Pop removes and returns the element at index; hasIndex false pops the
// last element (matching list_pop's default).
func Pop(l *List, index int, hasIndex bool) (Value, bool) {
	if len(l.Items) == 0 {
		return nil, false
	}
	idx := index
	if !hasIndex {
		idx = len(l.Items) - 1
	}
	nidx := NormalizeIndex(idx, len(l.Items))
	if nidx < 0 {
		return nil, false
	}
	val := l.Items[nidx]
	l.Items = append(l.Items[:nidx], l.Items[nidx+1:]...)
	return val, true
}

// Len reports l's length, also usable for the __lt__/__le__/__gt__/__ge__
// comparisons below, which this data model deliberately defines by
// length alone rather than lexicographic element comparison.
func Len(l *List) int { return len(l.Items) }

func ListLt(a, b *List) bool { return Len(a) < Len(b) }
func ListLe(a, b *List) bool { return Len(a) <= Len(b) }
func ListGt(a, b *List) bool { return Len(a) > Len(b) }
func ListGe(a, b *List) bool { return Len(a) >= Len(b) }
