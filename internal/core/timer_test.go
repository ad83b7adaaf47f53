package core

import (
	"testing"
	"time"
)

func TestFixedStepAccumulates(t *testing.T) {
	base := time.Unix(0, 0)
	now := base
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	if !fs.ShouldStep() {
		t.Fatal("first call should fire")
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick should not fire")
	}
	now = now.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick should fire")
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("unexpected interval %v", fs.Interval())
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("expected 60 TPS default, got %v", fs.Interval())
	}
}
