package model

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/termlife/rules"
)

// Stepper computes successive generations.
//
// Only strictly interior cells are evaluated. The outermost rows and columns
// are copied through unchanged, so they keep their initial values forever.
// The input grid is never written to; every call fills a separate buffer.
type Stepper struct {
	// Workers is the number of row bands computed concurrently. Values
	// below 2 compute the grid on the calling goroutine.
	Workers int
	// Pool supplies output buffers when set.
	Pool *GridPool
}

// Step returns the next generation of g in a freshly allocated grid
func Step(g *Grid) *Grid {
	return (&Stepper{}).Next(g)
}

// Next returns the next generation of g
func (s *Stepper) Next(g *Grid) *Grid {
	var next *Grid
	if s.Pool != nil {
		next = s.Pool.Get(g.rows, g.cols)
	} else {
		next = NewGrid(g.rows, g.cols)
	}
	next.copyFrom(g)

	// No interior cells: the whole grid is border
	if g.rows < 3 || g.cols < 3 {
		return next
	}

	var (
		first, last = 1, g.rows - 2
		interior    = last - first + 1
		numWorkers  = min(max(s.Workers, 1), interior)
	)
	if numWorkers == 1 {
		g.stepRows(next, first, last+1)
		return next
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (interior + numWorkers - 1) / numWorkers // Ceiling division
	)
	for i := range numWorkers {
		var (
			startRow = first + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, last+1)
		)
		if startRow > last {
			break
		}

		eg.Go(func() error {
			g.stepRows(next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		slog.Error("parallel step failed", "err", err)
	}

	return next
}

// stepRows writes the next state of interior rows [startRow, endRow) into next
func (g *Grid) stepRows(next *Grid, startRow, endRow int) {
	for r := startRow; r < endRow; r++ {
		for c := 1; c < g.cols-1; c++ {
			alive := rules.ApplyConwayRules(g.cells[r][c] == Alive, g.CountInteriorNeighbors(r, c))
			if alive {
				next.cells[r][c] = Alive
			} else {
				next.cells[r][c] = Dead
			}
		}
	}
}

// CountInteriorNeighbors counts the live cells in the Moore neighborhood of (r, c).
// (r, c) must be strictly interior so all eight neighbors are in range.
func (g *Grid) CountInteriorNeighbors(r, c int) int {
	var (
		above = g.cells[r-1]
		row   = g.cells[r]
		below = g.cells[r+1]
		count = 0
	)
	for _, cell := range [8]byte{
		above[c-1], above[c], above[c+1],
		row[c-1], row[c+1],
		below[c-1], below[c], below[c+1],
	} {
		if cell == Alive {
			count++
		}
	}
	return count
}
