package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
)

const (
	// Alive and Dead are the only values a cell can hold. They are printable
	// as-is so a grid row can be copied straight into a frame.
	Alive byte = 'O'
	Dead  byte = ' '
)

// Grid represents the game board: rows x cols cells, row index first
type Grid struct {
	rows  int
	cols  int
	cells [][]byte
}

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Reset(rows, cols)
	return g
}

// FromStrings builds a grid from one string per row, where 'O' marks a live cell.
// Rows shorter than the longest one are padded with dead cells.
func FromStrings(lines ...string) *Grid {
	cols := 0
	for _, l := range lines {
		cols = max(cols, len(l))
	}
	g := NewGrid(len(lines), cols)
	for r, l := range lines {
		for c := 0; c < len(l); c++ {
			g.Set(r, c, l[c] == Alive)
		}
	}
	return g
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Reset resets the grid to new dimensions with every cell dead
func (g *Grid) Reset(rows, cols int) {
	rows, cols = max(rows, 0), max(cols, 0)
	g.rows = rows
	g.cols = cols

	// Resize cells if needed
	if len(g.cells) != rows {
		g.cells = make([][]byte, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]byte, cols)
		}
		for j := range g.cells[i] {
			g.cells[i][j] = Dead
		}
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for r := range g.rows {
		for c := range g.cols {
			g.cells[r][c] = Dead
		}
	}
}

func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Set sets a cell to alive (true) or dead (false). Out of range writes are ignored.
func (g *Grid) Set(r, c int, alive bool) {
	if !g.inBounds(r, c) {
		return
	}
	if alive {
		g.cells[r][c] = Alive
	} else {
		g.cells[r][c] = Dead
	}
}

// Get returns the raw cell value, Dead when out of range
func (g *Grid) Get(r, c int) byte {
	if !g.inBounds(r, c) {
		return Dead
	}
	return g.cells[r][c]
}

// IsAlive reports whether the cell at (r, c) is alive
func (g *Grid) IsAlive(r, c int) bool {
	return g.Get(r, c) == Alive
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	next := NewGrid(g.rows, g.cols)
	next.copyFrom(g)
	return next
}

func (g *Grid) copyFrom(src *Grid) {
	for r := range src.rows {
		copy(g.cells[r], src.cells[r])
	}
}

// Equal reports whether both grids have the same size and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.rows {
		if string(g.cells[r]) != string(other.cells[r]) {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] == Alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.cols)
	for r := range g.rows {
		h.Write(g.cells[r])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize makes each cell independently alive with probability p,
// drawing from rng in row-major order
func (g *Grid) Randomize(rng *rand.Rand, p float64) {
	for r := range g.rows {
		for c := range g.cols {
			g.Set(r, c, rng.Float64() < p)
		}
	}
}

// NewRandomGrid creates a rows x cols grid filled by Randomize
func NewRandomGrid(rows, cols int, p float64, rng *rand.Rand) *Grid {
	g := NewGrid(rows, cols)
	g.Randomize(rng, p)
	return g
}

// AddGlider adds a glider pattern with its top-left corner at (r, c)
func (g *Grid) AddGlider(r, c int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for dr, row := range pattern {
		for dc, cell := range row {
			g.Set(r+dr, c+dc, cell)
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator starting at (r, c)
func (g *Grid) AddBlinker(r, c int) {
	g.Set(r, c, true)
	g.Set(r, c+1, true)
	g.Set(r, c+2, true)
}

// String renders the whole grid, one line per row
func (g *Grid) String() string {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for r := range g.rows {
		buf = append(buf, g.cells[r]...)
		buf = append(buf, '\n')
	}
	return string(buf)
}
