// Package builtins implements the closed set of native functions every
// program gets for free: echo, input, floor, random, indexof, split.
package builtins

import (
	"fmt"
	"io"

	"unidad/internal/units"
	"unidad/internal/value"
)

// printState tracks whether the printer is currently rendering inside a
// list, so nested strings get quoted while a top-level string doesn't.
// The reference implementation tracks this with a thread-local
// (_echo_in_list); this runtime is single-threaded and non-reentrant
// (concurrent calls are a caller error, not a supported case), so a
// plain value threaded through the call chain replaces the thread-local
// entirely, the redesign the source's own design notes call out as the
// cleaner fit for a reimplementation.
type printState struct {
	inList bool
}

// Echo writes val to w followed by end (or "\n" if end is nil),
// matching the reference builtin's echo() signature and default.
func Echo(w io.Writer, val value.Value, end *string, table units.Table) value.Value {
	if val == nil {
		val = value.NewStr("")
	}

	ps := printState{}
	ps.print(w, val, table)

	if end != nil {
		fmt.Fprint(w, *end)
	} else {
		fmt.Fprint(w, "\n")
	}

	return value.NoneValue
}

func (ps *printState) print(w io.Writer, val value.Value, table units.Table) {
	switch v := val.(type) {
	case *value.Number:
		fmt.Fprint(w, value.Display(v, table))
	case *value.Str:
		if ps.inList {
			fmt.Fprintf(w, "\"%s\"", string(v.Runes))
		} else {
			fmt.Fprint(w, string(v.Runes))
		}
	case value.Bool:
		if v {
			fmt.Fprint(w, "true")
		} else {
			fmt.Fprint(w, "false")
		}
	case *value.List:
		ps.printList(w, v, table)
	case *value.Range:
		fmt.Fprintf(w, "<Range %p>", v)
	case *value.Closure:
		fmt.Fprintf(w, "<Function %p>", v)
	case *value.ExternFn:
		fmt.Fprintf(w, "<Extern Function %p>", v)
	case value.None:
		fmt.Fprint(w, "None")
	}
}

func (ps *printState) printList(w io.Writer, l *value.List, table units.Table) {
	fmt.Fprint(w, "[")
	wasInList := ps.inList
	ps.inList = true

	for i, item := range l.Items {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		ps.print(w, item, table)
	}

	ps.inList = wasInList
	fmt.Fprint(w, "]")
}
