package model

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

// DefaultMargin is the number of outer rows and columns left off screen on each side
const DefaultMargin = 5

// AppendBounded appends the visible part of g to dst and returns the extended slice.
//
// Rows margin..rows-1-margin and columns margin..cols-1-margin are emitted,
// row-major, each row terminated by '\n'. When either range is empty nothing
// is appended. A negative margin is treated as zero.
func AppendBounded(dst []byte, g *Grid, margin int) []byte {
	margin = max(margin, 0)
	var (
		firstRow, lastRow = margin, g.rows - 1 - margin
		firstCol, lastCol = margin, g.cols - 1 - margin
	)
	if firstRow > lastRow || firstCol > lastCol {
		return dst
	}

	for r := firstRow; r <= lastRow; r++ {
		dst = append(dst, g.cells[r][firstCol:lastCol+1]...)
		dst = append(dst, '\n')
	}
	return dst
}

// RenderBounded returns the visible part of g as a new buffer
func RenderBounded(g *Grid, margin int) []byte {
	visibleRows := max(g.rows-2*max(margin, 0), 0)
	visibleCols := max(g.cols-2*max(margin, 0), 0)
	return AppendBounded(make([]byte, 0, visibleRows*(visibleCols+1)), g, margin)
}

// TerminalRenderer writes frames to a terminal, one Write per frame
type TerminalRenderer struct {
	out    io.Writer
	term   *termenv.Output
	tty    bool
	margin int
	status lipgloss.Style
	buf    []byte
}

// NewTerminalRenderer returns a renderer that hides margin rows and columns
// on each side. Screen control sequences are only sent when out is a terminal.
func NewTerminalRenderer(out io.Writer, margin int) *TerminalRenderer {
	return &TerminalRenderer{
		out:    out,
		term:   termenv.NewOutput(out),
		tty:    isTerminal(out),
		margin: max(margin, 0),
		status: lipgloss.NewRenderer(out).NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Margin returns the number of hidden rows and columns on each side
func (r *TerminalRenderer) Margin() int {
	return r.margin
}

// Start prepares the terminal for animation
func (r *TerminalRenderer) Start() {
	if r.tty {
		r.term.HideCursor()
	}
}

// Display renders the visible part of the grid, preceded by status when it is not empty
func (r *TerminalRenderer) Display(g *Grid, status string) error {
	r.buf = r.buf[:0]
	if status != "" {
		r.buf = append(r.buf, r.status.Render(status)...)
		r.buf = append(r.buf, '\n')
	}
	r.buf = AppendBounded(r.buf, g, r.margin)

	if _, err := r.out.Write(r.buf); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen and moves the cursor home
func (r *TerminalRenderer) Clear() {
	if r.tty {
		r.term.ClearScreen()
	}
}

// Close restores the cursor
func (r *TerminalRenderer) Close() {
	if r.tty {
		r.term.ShowCursor()
	}
}
