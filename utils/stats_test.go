package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 100*time.Millisecond)
	if s.TotalGenerations != 1 || s.AveragePopulation != 100 {
		t.Fatalf("unexpected stats after first update: %+v", s)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatal("zero duration must not change the rate")
	}
}

func TestCycleDetector(t *testing.T) {
	d, err := NewCycleDetector(4)
	if err != nil {
		t.Fatalf("NewCycleDetector: %v", err)
	}

	// A period two oscillator
	hashes := []string{"a", "b", "a", "b", "a"}
	for gen, h := range hashes {
		period, ok := d.Observe(h, gen)
		if gen < 2 {
			if ok {
				t.Fatalf("generation %d: unexpected cycle", gen)
			}
			continue
		}
		if !ok || period != 2 {
			t.Fatalf("generation %d: got period %d ok=%v, want 2", gen, period, ok)
		}
	}

	// A still life repeats every generation
	period, ok := d.Observe("c", 10)
	if ok {
		t.Fatal("new state reported as a cycle")
	}
	if period, ok = d.Observe("c", 11); !ok || period != 1 {
		t.Fatalf("got period %d ok=%v, want 1", period, ok)
	}
}

func TestCycleDetectorWindow(t *testing.T) {
	d, err := NewCycleDetector(1)
	if err != nil {
		t.Fatalf("NewCycleDetector: %v", err)
	}
	d.Observe("a", 0)
	d.Observe("b", 1)
	if _, ok := d.Observe("a", 2); ok {
		t.Fatal("state outside the window must not be reported")
	}
}

func TestCycleDetectorDisabled(t *testing.T) {
	d, err := NewCycleDetector(0)
	if err != nil || d != nil {
		t.Fatalf("expected nil detector, got %v, %v", d, err)
	}
	if _, ok := d.Observe("a", 0); ok {
		t.Fatal("nil detector reported a cycle")
	}
}
