package main

import (
	"strings"
	"testing"

	"lifegrid/internal/core"
	"lifegrid/internal/rules"
)

func TestRenderGridRowsAndGlyphs(t *testing.T) {
	g := core.MustGrid(3)
	g.Set(0, 0, core.Alive)
	g.Set(2, 1, core.Dying)

	out := renderGrid(g, rules.BriansBrain)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "█") {
		t.Fatalf("live cell missing from row 0: %q", lines[0])
	}
	if !strings.Contains(lines[2], "▓") {
		t.Fatalf("dying cell missing from row 2: %q", lines[2])
	}
	if strings.TrimSpace(lines[1]) != "" {
		t.Fatalf("row 1 should be blank, got %q", lines[1])
	}
}

func TestRenderGridTreeGlyphs(t *testing.T) {
	g := core.MustGrid(2)
	g.Set(1, 0, core.Trunk)
	g.Set(0, 0, core.Leaf)
	out := renderGrid(g, rules.Tree)
	if !strings.Contains(out, "║") || !strings.Contains(out, "♣") {
		t.Fatalf("tree glyphs missing: %q", out)
	}
}

func TestBuildConfigAppliesOverrides(t *testing.T) {
	cfg, err := buildConfig(runOptions{mode: "seeds", size: 16, seed: 9, workers: 2, serve: ":0"})
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	if cfg.Mode != "seeds" || cfg.Size != 16 || cfg.Seed != 9 || cfg.Workers != 2 || cfg.TelemetryAddr != ":0" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if _, err := buildConfig(runOptions{mode: "nope"}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestBuildConfigSetOverrides(t *testing.T) {
	cfg, err := buildConfig(runOptions{sets: []string{"mode=Life", "density=0.7", "iterations=10"}})
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	if cfg.Mode != "conway" || cfg.Density(rules.Conway) != 0.7 || cfg.Training.Iterations != 10 {
		t.Fatalf("--set not applied: %+v", cfg)
	}

	cfg, err = buildConfig(runOptions{mode: "seeds", sets: []string{"mode=brain", "density=0.4"}})
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	if cfg.Mode != "seeds" || cfg.Density(rules.Seeds) != 0.4 {
		t.Fatalf("--mode should win over --set: %+v", cfg)
	}

	for _, bad := range [][]string{{"sise=12"}, {"density"}, {"workers=zero"}} {
		if _, err := buildConfig(runOptions{sets: bad}); err == nil {
			t.Fatalf("expected error for --set %v", bad)
		}
	}
}

func TestLabelKeepsValue(t *testing.T) {
	if s := label("Live cells", "12"); !strings.HasSuffix(s, ": 12") {
		t.Fatalf("unexpected label %q", s)
	}
}
