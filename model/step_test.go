package model

import (
	"math/rand"
	"testing"
)

func TestStepIsolatedCellDies(t *testing.T) {
	g := FromStrings(
		"     ",
		"     ",
		"  O  ",
		"     ",
		"     ",
	)

	next := Step(g)
	if next.CountLivingCells() != 0 {
		t.Fatalf("expected an empty grid, got:\n%s", next)
	}
}

func TestStepBlinkerOscillates(t *testing.T) {
	horizontal := FromStrings(
		"     ",
		"     ",
		" OOO ",
		"     ",
		"     ",
	)
	vertical := FromStrings(
		"     ",
		"  O  ",
		"  O  ",
		"  O  ",
		"     ",
	)

	next := Step(horizontal)
	if !next.Equal(vertical) {
		t.Fatalf("unexpected first generation:\n%s", next)
	}
	if back := Step(next); !back.Equal(horizontal) {
		t.Fatalf("unexpected second generation:\n%s", back)
	}
}

func TestStepBlockIsStillLife(t *testing.T) {
	block := FromStrings(
		"        ",
		"        ",
		"        ",
		"   OO   ",
		"   OO   ",
		"        ",
		"        ",
		"        ",
	)

	g := block
	for i := 0; i < 10; i++ {
		g = Step(g)
		if !g.Equal(block) {
			t.Fatalf("block changed at generation %d:\n%s", i+1, g)
		}
	}
}

func TestStepBirthWithThreeNeighbors(t *testing.T) {
	g := FromStrings(
		"      ",
		" OO   ",
		" O    ",
		"      ",
		"      ",
	)
	if g.IsAlive(2, 2) {
		t.Fatal("fixture cell should start dead")
	}

	next := Step(g)
	if !next.IsAlive(2, 2) {
		t.Fatalf("expected (2,2) to be born:\n%s", next)
	}
}

func TestStepOvercrowdingKills(t *testing.T) {
	g := FromStrings(
		"     ",
		" OOO ",
		" OO  ",
		"     ",
		"     ",
	)

	// (2,2) has four live neighbors
	if Step(g).IsAlive(2, 2) {
		t.Fatal("expected overcrowded cell to die")
	}
}

func TestStepFreezesBorder(t *testing.T) {
	g := NewRandomGrid(20, 30, 0.5, rand.New(rand.NewSource(7)))
	initial := g.Clone()

	for gen := 1; gen <= 50; gen++ {
		g = Step(g)
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				border := r == 0 || r == g.Rows()-1 || c == 0 || c == g.Cols()-1
				if border && g.Get(r, c) != initial.Get(r, c) {
					t.Fatalf("border cell (%d,%d) changed at generation %d", r, c, gen)
				}
			}
		}
	}
}

func TestStepIsPure(t *testing.T) {
	g := NewRandomGrid(16, 24, 0.4, rand.New(rand.NewSource(3)))
	before := g.Clone()

	first := Step(g)
	second := Step(g)
	if !first.Equal(second) {
		t.Fatal("Step returned different results for the same input")
	}
	if !g.Equal(before) {
		t.Fatal("Step modified its input")
	}
	if first == g {
		t.Fatal("Step returned its input instead of a new grid")
	}
}

func TestStepSmallGridsAreFrozen(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, size := range [][2]int{{1, 1}, {2, 2}, {2, 9}, {9, 2}, {1, 7}, {0, 0}} {
		g := NewRandomGrid(size[0], size[1], 0.5, rng)
		if next := Step(g); !next.Equal(g) {
			t.Errorf("%dx%d grid changed:\n%s", size[0], size[1], next)
		}
	}
}

func TestStepperParallelMatchesSequential(t *testing.T) {
	g := NewRandomGrid(41, 37, 0.35, rand.New(rand.NewSource(5)))

	want := g
	for i := 0; i < 5; i++ {
		want = Step(want)
	}

	for _, workers := range []int{0, 1, 2, 3, 7, 64} {
		s := &Stepper{Workers: workers, Pool: NewGridPool()}
		got := g
		for i := 0; i < 5; i++ {
			got = s.Next(got)
		}
		if !got.Equal(want) {
			t.Errorf("workers=%d: result differs from sequential step", workers)
		}
	}
}

func TestCountInteriorNeighbors(t *testing.T) {
	g := FromStrings(
		"OOO",
		"OOO",
		"OOO",
	)
	if n := g.CountInteriorNeighbors(1, 1); n != 8 {
		t.Fatalf("expected 8 neighbors, got %d", n)
	}

	g.Set(1, 1, false)
	g.Set(0, 0, false)
	if n := g.CountInteriorNeighbors(1, 1); n != 7 {
		t.Fatalf("expected 7 neighbors, got %d", n)
	}
}
