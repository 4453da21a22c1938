// Package module implements the process-wide source registry the error
// raiser reads from: every source file handed to the runtime is
// registered once, keyed by path, and given a stable identity so a
// fatal fault can look its originating text back up by file name and
// render a line out of it.
//
// This replaces the teacher's module-loader concern (finding, caching,
// and compiling imported modules against a search path) with a
// source-registration concern: there is no loader, no search path, and
// no compilation here, only the registry half of that struct's
// responsibilities, repurposed for diagnostics rather than imports.
package module

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Program is one registered source file: its path, its text split into
// lines for excerpt rendering, and a stable identity distinct from its
// path (so tooling can refer to a loaded program without restating the
// full path).
type Program struct {
	ID    uuid.UUID
	Path  string
	Lines []string
}

// Registry is the process-wide table of registered programs, plus the
// "current file" index the error raiser consults when it isn't handed
// an explicit file name. A zero Registry is not usable; call NewRegistry.
type Registry struct {
	mu          sync.RWMutex
	programs    map[string]*Program
	currentFile string
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{programs: make(map[string]*Program)}
}

// Register records source under path, replacing any prior registration
// for the same path, and returns the assigned Program.
func (r *Registry) Register(path, source string) *Program {
	p := &Program{
		ID:    uuid.New(),
		Path:  path,
		Lines: strings.Split(source, "\n"),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs[path] = p
	return p
}

// SetCurrentFile marks path as the file the runtime is currently
// executing, matching NUMEROBIS__FILE__'s role as an index into the
// registry for u_throw's default file lookup.
func (r *Registry) SetCurrentFile(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentFile = path
}

// CurrentProgram returns the currently executing program, or nil if
// none has been set or it was never registered.
func (r *Registry) CurrentProgram() *Program {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.programs[r.currentFile]
}

// Lookup returns the program registered under path, or nil.
func (r *Registry) Lookup(path string) *Program {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.programs[path]
}

// Stats is a developer-facing diagnostic summary of the registry's
// contents, the same "count and size" reporting concern the teacher's
// build/reporting tooling reaches for, here restricted to what this
// core actually tracks.
type Stats struct {
	Count      int
	TotalBytes uint64
	Files      []FileStat
}

// FileStat is one registered program's diagnostic line.
type FileStat struct {
	Path  string
	ID    uuid.UUID
	Bytes uint64
	Size  string
}

// Stats summarizes the registry's current contents, humanizing byte
// counts the way the teacher's tooling formats sizes for a developer
// reading a terminal rather than parsing machine output.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := Stats{Count: len(r.programs)}
	for _, p := range r.programs {
		var n uint64
		for _, line := range p.Lines {
			n += uint64(len(line)) + 1
		}
		out.TotalBytes += n
		out.Files = append(out.Files, FileStat{
			Path:  p.Path,
			ID:    p.ID,
			Bytes: n,
			Size:  humanize.Bytes(n),
		})
	}
	return out
}

// String renders a Stats summary as a short multi-line report, the
// shape cmd/unidad's "modules" subcommand prints directly.
func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d file(s), %s total\n", s.Count, humanize.Bytes(s.TotalBytes))
	for _, f := range s.Files {
		fmt.Fprintf(&b, "  %s  %s  %s\n", f.ID, f.Size, f.Path)
	}
	return b.String()
}
