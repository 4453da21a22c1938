package module

import "testing"

func TestRegisterAndCurrentProgram(t *testing.T) {
	r := NewRegistry()
	r.Register("demo.un", "let x = 1\necho(x)")
	r.SetCurrentFile("demo.un")

	p := r.CurrentProgram()
	if p == nil {
		t.Fatalf("expected a current program after SetCurrentFile")
	}
	if len(p.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(p.Lines))
	}
	if p.ID.String() == "" {
		t.Fatalf("expected a non-empty program ID")
	}
}

func TestStatsCountsRegisteredFiles(t *testing.T) {
	r := NewRegistry()
	r.Register("a.un", "echo(1)")
	r.Register("b.un", "echo(2)\necho(3)")

	stats := r.Stats()
	if stats.Count != 2 {
		t.Fatalf("expected 2 registered files, got %d", stats.Count)
	}
	if stats.TotalBytes == 0 {
		t.Fatalf("expected a non-zero total byte count")
	}
}

func TestLookupMissingReturnsNil(t *testing.T) {
	r := NewRegistry()
	if r.Lookup("missing.un") != nil {
		t.Fatalf("expected nil for an unregistered path")
	}
}
