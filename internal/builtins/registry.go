package builtins

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"sync"

	"unidad/internal/units"
	"unidad/internal/value"
)

// Registry is the process-wide extern-function table, matching
// UNIDAD_EXTERNS. It is built once per process via Init and never
// mutated concurrently with lookups in normal operation (this runtime
// is single-threaded and non-reentrant).
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]*value.ExternFn
}

// NewRegistry builds an empty extern registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]*value.ExternFn)}
}

// Register adds fn under name. A duplicate registration is a
// programming error, not a recoverable one: u_extern_register aborts
// the process via g_error on a duplicate name, and this mirrors that
// with log.Fatalf rather than returning an error a caller might ignore.
func (r *Registry) Register(fn *value.ExternFn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.funcs[fn.Name]; exists {
		log.Fatalf("builtins: duplicate extern registration for %q", fn.Name)
	}
	r.funcs[fn.Name] = fn
}

// Lookup returns the extern registered under name, or nil.
func (r *Registry) Lookup(name string) *value.ExternFn {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.funcs[name]
}

// RegisterBuiltins installs the closed set of native functions every
// program gets for free: echo, input, floor, random, indexof, split.
// w/in back the standard streams echo/input write to and read from;
// table supplies the unit catalogue echo's number formatting needs.
func RegisterBuiltins(r *Registry, w io.Writer, in io.Reader, table units.Table) {
	reader := bufio.NewReader(in)

	r.Register(value.NewExternFn("echo", func(args []value.Value) value.Value {
		var val value.Value
		if len(args) > 0 {
			val = args[0]
		}
		var end *string
		if len(args) > 1 {
			if s, ok := args[1].(*value.Str); ok {
				str := string(s.Runes)
				end = &str
			}
		}
		return Echo(w, val, end, table)
	}))

	r.Register(value.NewExternFn("input", func(args []value.Value) value.Value {
		var prompt value.Value
		if len(args) > 0 {
			prompt = args[0]
		}
		return Input(w, reader, prompt, table)
	}))

	r.Register(value.NewExternFn("floor", func(args []value.Value) value.Value {
		n, ok := args[0].(*value.Number)
		if !ok {
			panic(fmt.Sprintf("floor: expected a Number, got %T", args[0]))
		}
		return Floor(n)
	}))

	r.Register(value.NewExternFn("random", func(args []value.Value) value.Value {
		return Random()
	}))

	r.Register(value.NewExternFn("indexof", func(args []value.Value) value.Value {
		l, ok := args[0].(*value.List)
		if !ok {
			panic(fmt.Sprintf("indexof: expected a List, got %T", args[0]))
		}
		return value.NewInt(int64(IndexOf(l, args[1])))
	}))

	r.Register(value.NewExternFn("split", func(args []value.Value) value.Value {
		s, ok := args[0].(*value.Str)
		if !ok {
			panic(fmt.Sprintf("split: expected a Str, got %T", args[0]))
		}
		sep, ok := args[1].(*value.Str)
		if !ok {
			panic(fmt.Sprintf("split: expected a Str separator, got %T", args[1]))
		}
		return Split(s, sep)
	}))
}
