package runtime

import (
	"bytes"
	"strings"
	"testing"
)

type noopTable struct{}

func (noopTable) BaseUnit(id uint16, n float64) float64       { return n }
func (noopTable) UnitEval(id uint16, n float64) float64       { return n }
func (noopTable) UnitEvalNormal(id uint16, n float64) float64 { return n }
func (noopTable) IsLogarithmic(id uint16) bool                { return false }

func TestInitRunsOnceAndRegistersBuiltins(t *testing.T) {
	var out bytes.Buffer
	p := Init(noopTable{}, &out, strings.NewReader(""))

	if p.Externs.Lookup("echo") == nil {
		t.Fatalf("expected echo to be registered after Init")
	}

	p2 := Init(noopTable{}, &out, strings.NewReader(""))
	if p2 != p {
		t.Fatalf("expected a second Init call to return the same Process")
	}
}

func TestAllocatorRealloc(t *testing.T) {
	var a Allocator
	buf := a.Alloc(4)
	copy(buf, []byte{1, 2, 3, 4})

	grown := a.Realloc(buf, 8)
	if len(grown) != 8 {
		t.Fatalf("Realloc length = %d, want 8", len(grown))
	}
	for i := 0; i < 4; i++ {
		if grown[i] != buf[i] {
			t.Fatalf("Realloc did not preserve prefix at index %d", i)
		}
	}
}
