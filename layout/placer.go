// Package layout places text on a self-growing grid and redraws it on a console.
package layout

import (
	"fmt"

	"textgrid/grid"
	"textgrid/logs"
	"textgrid/render"
)

// Placement is a single "draw this text at (Row, Col)" request.
type Placement struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Text string `json:"text"`
}

// Placer owns a grid and the console it is shown on.
// It is not safe for concurrent use.
type Placer struct {
	grid    *grid.Grid
	console render.Console
	logger  *logs.Logger
}

// NewPlacer creates a placer with a 1x1 grid drawing to console.
func NewPlacer(console render.Console) *Placer {
	return &Placer{
		grid:    grid.New(1, 1),
		console: console,
	}
}

// SetLogger attaches an event logger. A nil logger disables logging.
func (p *Placer) SetLogger(l *logs.Logger) {
	p.logger = l
}

// Grid returns the grid being drawn.
func (p *Placer) Grid() *grid.Grid {
	return p.grid
}

// Place clears the console, grows the grid so (row, col) exists, writes
// text there, and redraws the whole grid. The clear always happens first.
// Negative coordinates are not grown into and fail with grid.ErrOutOfBounds;
// coordinates past grid.MaxCells fail with grid.ErrInvalidSize.
func (p *Placer) Place(row, col int, text string) error {
	if err := p.console.Clear(); err != nil {
		return p.fail(row, col, fmt.Errorf("clearing console: %w", err))
	}

	before := p.grid.Size()
	grown, err := p.grid.EnsureCapacity(row, col)
	if err != nil {
		return p.fail(row, col, err)
	}
	if grown {
		after := p.grid.Size()
		p.logger.Event("grid.resize", map[string]any{
			"from_rows": before.Rows, "from_cols": before.Cols,
			"rows": after.Rows, "cols": after.Cols,
		})
	}

	cell, err := p.grid.Get(row, col)
	if err != nil {
		return p.fail(row, col, err)
	}
	*cell = text
	p.logger.Event("place", map[string]any{"row": row, "col": col, "text": text})

	if err := p.console.Print(p.grid.Render()); err != nil {
		return p.fail(row, col, fmt.Errorf("printing grid: %w", err))
	}
	return nil
}

// PlaceAll applies placements in order and stops at the first failure.
func (p *Placer) PlaceAll(placements []Placement) error {
	for i, pl := range placements {
		if err := p.Place(pl.Row, pl.Col, pl.Text); err != nil {
			return fmt.Errorf("placement %d: %w", i+1, err)
		}
	}
	return nil
}

func (p *Placer) fail(row, col int, err error) error {
	p.logger.Event("place.error", map[string]any{"row": row, "col": col, "error": err.Error()})
	return err
}
