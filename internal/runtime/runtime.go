// Package runtime wires together the process-wide singletons every
// other package in this repository depends on: the extern registry, the
// module (source) registry, and the unit conversion table, initialized
// exactly once per process, matching the reference runtime's
// constructor-attribute hook (numerobis_runtime_ctor, which GC-inits,
// then registers built-in externs before main ever runs).
//
// Go has no constructor-attribute equivalent, so the same
// exactly-once guarantee is expressed with sync.Once instead of relying
// on link-time ordering.
package runtime

import (
	"io"
	"sync"

	"unidad/internal/builtins"
	"unidad/internal/module"
	"unidad/internal/units"
)

// Allocator is a thin facade over allocation, mirroring the reference
// runtime's redirection of g_malloc/g_realloc/g_free onto the Boehm
// collector. Go's allocator and garbage collector already provide the
// same guarantee without an explicit init step, so these methods exist
// only to give the rest of the codebase one obvious seam to call
// through rather than reaching for make()/append() ad hoc, matching the
// shape of the source's allocation facade without needing its content.
type Allocator struct{}

// Alloc returns a zeroed byte slice of size n.
func (Allocator) Alloc(n int) []byte { return make([]byte, n) }

// Realloc grows (or shrinks) buf to n bytes, preserving its prefix.
func (Allocator) Realloc(buf []byte, n int) []byte {
	out := make([]byte, n)
	copy(out, buf)
	return out
}

// Release is a no-op: Go's garbage collector reclaims unreachable
// memory on its own, matching the reference runtime's g_free redirect
// to a no-op once Boehm GC owns the allocation.
func (Allocator) Release([]byte) {}

// Process holds the singletons every runtime operation needs: the
// extern-function table, the source registry the error raiser consults,
// and the unit conversion table a compiler front end would otherwise
// supply.
type Process struct {
	Allocator Allocator
	Externs   *builtins.Registry
	Modules   *module.Registry
	Table     units.Table
}

var (
	once sync.Once
	proc *Process
)

// Init builds the process-wide singletons exactly once, registering the
// closed set of built-in externs against stdout/stdin. Subsequent calls
// return the Process built by the first call, ignoring their arguments,
// matching the constructor hook's run-exactly-once contract.
func Init(table units.Table, stdout io.Writer, stdin io.Reader) *Process {
	once.Do(func() {
		p := &Process{
			Externs: builtins.NewRegistry(),
			Modules: module.NewRegistry(),
			Table:   table,
		}
		builtins.RegisterBuiltins(p.Externs, stdout, stdin, table)
		proc = p
	})
	return proc
}

// Current returns the process built by Init, or nil if Init has not
// been called yet.
func Current() *Process {
	return proc
}
