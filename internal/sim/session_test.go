package sim

import (
	"testing"

	"lifegrid/internal/core"
	"lifegrid/internal/qlearn"
	"lifegrid/internal/rules"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Size = 24
	s, err := NewSession(cfg, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSessionResetDeterministic(t *testing.T) {
	s := testSession(t)
	s.Reset(5)
	first := append([]uint8(nil), s.Cells()...)
	s.Step()
	s.Reset(5)
	second := s.Cells()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cell %d differs after reseeding", i)
		}
	}
	if s.Generation() != 0 {
		t.Fatalf("reset should clear the generation, got %d", s.Generation())
	}
}

func TestSessionSelectModeAndClick(t *testing.T) {
	s := testSession(t)
	s.SelectMode(rules.Tree)
	if s.Name() != "tree" {
		t.Fatalf("expected tree mode, got %s", s.Name())
	}
	if s.LiveCells() != 0 {
		t.Fatalf("tree mode seeds nothing, got %d live", s.LiveCells())
	}
	if s.Agent() != qlearn.StartAgent(24) {
		t.Fatalf("agent not at start: %+v", s.Agent())
	}

	s.SelectMode(rules.Conway)
	s.Clear()
	s.Click(0, 0)
	if s.LiveCells() != 4 {
		t.Fatalf("click should activate 4 cells, got %d", s.LiveCells())
	}
	s.Step()
	if s.LiveCells() != 4 {
		t.Fatalf("clicked block should be still, got %d live", s.LiveCells())
	}
}

func TestSessionOnStep(t *testing.T) {
	s := testSession(t)
	var gens []int
	s.OnStep = func(gen, live int) {
		gens = append(gens, gen)
		if live != s.State().Grid.Count(core.Alive) {
			t.Fatalf("reported live %d does not match grid", live)
		}
	}
	s.Step()
	s.Step()
	if len(gens) != 2 || gens[0] != 1 || gens[1] != 2 {
		t.Fatalf("unexpected generations %v", gens)
	}
}

func TestSessionParameters(t *testing.T) {
	s := testSession(t)
	s.SelectMode(rules.Tree)
	snap := s.Parameters()
	if p, ok := snap.Lookup("mode"); !ok || p.Value != "tree" {
		t.Fatalf("mode parameter %v %v", p, ok)
	}
	if p, ok := snap.Lookup("agent_row"); !ok || p.Value != "23" {
		t.Fatalf("agent row parameter %v %v", p, ok)
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "nope"
	if _, err := NewSession(cfg, nil); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	cfg = DefaultConfig()
	cfg.Size = 0
	if _, err := NewSession(cfg, nil); err == nil {
		t.Fatal("expected error for zero size")
	}
}
