package builtins

import (
	"strings"

	"unidad/internal/value"
)

// IndexOf returns the index of the first element of l deep-equal to
// target, or -1 if none matches.
func IndexOf(l *value.List, target value.Value) int {
	for i, item := range l.Items {
		if value.EqValue(item, target) {
			return i
		}
	}
	return -1
}

// Split divides s on every occurrence of sep into a list of strings,
// matching a plain strings.Split: sep is taken literally, not as a
// pattern.
func Split(s *value.Str, sep *value.Str) *value.List {
	parts := strings.Split(string(s.Runes), string(sep.Runes))
	items := make([]value.Value, len(parts))
	for i, p := range parts {
		items[i] = value.NewStr(p)
	}
	return value.NewList(items)
}
