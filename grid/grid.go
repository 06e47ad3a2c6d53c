// Package grid provides a resizable two-dimensional container of text cells.
package grid

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"textgrid/core"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("index out of bounds")
	ErrInvalidSize = errors.New("invalid grid size")
)

// MaxCells is the largest number of cells a grid may hold.
const MaxCells = 1 << 26

// Grid stores text cells in row-major order.
//
// Thread Safety:
// Grid is NOT thread-safe. Callers must sequence all access themselves.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - y is the row and increases downward
//   - x is the column and increases rightward
//   - cell (y,x) lives at index y*cols + x
type Grid struct {
	cells []string
	rows  int
	cols  int
}

// New creates a grid with the specified dimensions, all cells empty.
// Returns nil if either dimension is less than one or the grid would
// exceed MaxCells.
func New(rows, cols int) *Grid {
	size := core.Size{Rows: rows, Cols: cols}
	if checkSize(size) != nil {
		return nil
	}
	return &Grid{
		cells: make([]string, size.Area()),
		rows:  rows,
		cols:  cols,
	}
}

// checkSize rejects non-positive dimensions and cell counts above MaxCells.
// The division keeps rows*cols from being computed when it could overflow.
func checkSize(size core.Size) error {
	if !size.Valid() || size.Cols > MaxCells/size.Rows {
		return fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size {
	return core.Size{Rows: g.rows, Cols: g.cols}
}

// Resize replaces the backing store with one of the new dimensions.
// Cells inside the overlap of the old and new dimensions keep their
// coordinates and values; everything else is dropped or starts empty.
// Sizes rejected by New are rejected here with ErrInvalidSize.
func (g *Grid) Resize(rows, cols int) error {
	size := core.Size{Rows: rows, Cols: cols}
	if err := checkSize(size); err != nil {
		return err
	}

	cells := make([]string, size.Area())
	keepRows := min(g.rows, rows)
	keepCols := min(g.cols, cols)
	for y := 0; y < keepRows; y++ {
		copy(cells[y*cols:y*cols+keepCols], g.cells[y*g.cols:y*g.cols+keepCols])
	}

	g.cells = cells
	g.rows = rows
	g.cols = cols
	return nil
}

// EnsureCapacity grows the grid just enough for (row, col) to be valid.
// Each dimension grows independently and never shrinks. Negative
// coordinates are left for Get to reject. Reports whether a resize happened;
// a grid that would exceed MaxCells is left unchanged with ErrInvalidSize.
func (g *Grid) EnsureCapacity(row, col int) (bool, error) {
	if row < g.rows && col < g.cols {
		return false, nil
	}

	rows, cols := g.rows, g.cols
	if row >= rows {
		if row >= MaxCells {
			return false, fmt.Errorf("%w: row %d", ErrInvalidSize, row)
		}
		rows = row + 1
	}
	if col >= cols {
		if col >= MaxCells {
			return false, fmt.Errorf("%w: column %d", ErrInvalidSize, col)
		}
		cols = col + 1
	}

	if err := g.Resize(rows, cols); err != nil {
		return false, err
	}
	return true, nil
}

// Get returns a reference to the cell at (y, x).
// The reference is invalidated by the next Resize.
func (g *Grid) Get(y, x int) (*string, error) {
	if !g.Size().Contains(core.Point{X: x, Y: y}) {
		return nil, fmt.Errorf("%w: (%d,%d) in %v grid", ErrOutOfBounds, y, x, g.Size())
	}
	return &g.cells[y*g.cols+x], nil
}

// At returns the text at p, or the empty string if p is out of bounds.
func (g *Grid) At(p core.Point) string {
	cell, err := g.Get(p.Y, p.X)
	if err != nil {
		return ""
	}
	return *cell
}

// Set writes text into the cell at (y, x).
func (g *Grid) Set(y, x int, text string) error {
	cell, err := g.Get(y, x)
	if err != nil {
		return err
	}
	*cell = text
	return nil
}

// Row returns a copy of row y, or nil if y is out of bounds.
func (g *Grid) Row(y int) []string {
	if y < 0 || y >= g.rows {
		return nil
	}
	row := make([]string, g.cols)
	copy(row, g.cells[y*g.cols:(y+1)*g.cols])
	return row
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []string {
	cells := make([]string, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// Clear resets every cell to the empty string.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = ""
	}
}

// Render returns the grid as text: one line per row, cells separated by
// a single space, every row terminated by a newline.
func (g *Grid) Render() string {
	var sb strings.Builder
	sb.Grow(g.renderSize())

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.cells[y*g.cols+x])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String returns Render().
func (g *Grid) String() string {
	return g.Render()
}

// WriteTo writes the rendered grid to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.Render())
	return int64(n), err
}

// renderSize pre-calculates the rendered length.
func (g *Grid) renderSize() int {
	size := g.rows * g.cols // separators plus newlines
	for _, c := range g.cells {
		size += len(c)
	}
	return size
}
