package render

import "math"

// Cell is one terminal cell, Rune 0 is empty
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// CellBuffer is a Surface backed by a grid of terminal cells
// Each cell covers CellPx x CellPx surface pixels; fills blend by the fraction of the cell they cover
type CellBuffer struct {
	cells  []Cell
	cols   int
	rows   int
	cellPx float64
}

// NewCellBuffer creates a cols x rows buffer painted with bg
func NewCellBuffer(cols, rows, cellPx int, bg RGB) *CellBuffer {
	cols = max(1, cols)
	rows = max(1, rows)
	cellPx = max(1, cellPx)
	cells := make([]Cell, cols*rows)
	// Exponential copy
	cells[0] = Cell{Fg: bg, Bg: bg}
	for filled := 1; filled < len(cells); filled *= 2 {
		copy(cells[filled:], cells[:filled])
	}
	return &CellBuffer{
		cells:  cells,
		cols:   cols,
		rows:   rows,
		cellPx: float64(cellPx),
	}
}

func (b *CellBuffer) Size() (int, int) {
	return int(float64(b.cols) * b.cellPx), int(float64(b.rows) * b.cellPx)
}

func (b *CellBuffer) Cols() int { return b.cols }
func (b *CellBuffer) Rows() int { return b.rows }

// Cells exposes the backing slice row-major for flushing, do not retain across frames
func (b *CellBuffer) Cells() []Cell {
	return b.cells
}

// CellAt returns the cell at column x row y, zero Cell when out of bounds
func (b *CellBuffer) CellAt(x, y int) Cell {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return Cell{}
	}
	return b.cells[y*b.cols+x]
}

func (b *CellBuffer) FillRect(x, y, w, h float64, c RGBA) {
	if c.A <= 0 {
		return
	}
	b.eachCovered(x, y, w, h, func(cell *Cell, _, _, coverage float64) {
		b.fade(cell, c, coverage)
	})
}

// FillRectGradient samples the gradient at each covered cell's center
func (b *CellBuffer) FillRectGradient(x, y, w, h float64, g *RadialGradient) {
	if g == nil {
		return
	}
	b.eachCovered(x, y, w, h, func(cell *Cell, px, py, coverage float64) {
		b.fade(cell, g.ColorAt(px, py), coverage)
	})
}

func (b *CellBuffer) DrawGlyph(x, y float64, r rune, _ Font, c RGBA) {
	col := int(math.Floor((x + b.cellPx/2) / b.cellPx))
	row := int(math.Floor((y + b.cellPx/2) / b.cellPx))
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return
	}
	dst := &b.cells[row*b.cols+col]
	dst.Rune = r
	dst.Fg = Over(dst.Bg, c, 1)
}

// fade blends c over both layers, a glyph that dissolves into its background is dropped
func (b *CellBuffer) fade(cell *Cell, c RGBA, coverage float64) {
	if c.A <= 0 || coverage <= 0 {
		return
	}
	cell.Bg = Over(cell.Bg, c, coverage)
	cell.Fg = Over(cell.Fg, c, coverage)
	if cell.Fg == cell.Bg {
		cell.Rune = 0
	}
}

// eachCovered visits every cell intersecting the pixel rect with the covered fraction of its area
func (b *CellBuffer) eachCovered(x, y, w, h float64, fn func(cell *Cell, centerX, centerY, coverage float64)) {
	if w <= 0 || h <= 0 {
		return
	}
	s := b.cellPx
	c0 := max(0, int(math.Floor(x/s)))
	r0 := max(0, int(math.Floor(y/s)))
	c1 := min(b.cols-1, int(math.Ceil((x+w)/s))-1)
	r1 := min(b.rows-1, int(math.Ceil((y+h)/s))-1)
	area := s * s

	for row := r0; row <= r1; row++ {
		top := float64(row) * s
		oy := math.Min(y+h, top+s) - math.Max(y, top)
		if oy <= 0 {
			continue
		}
		for col := c0; col <= c1; col++ {
			left := float64(col) * s
			ox := math.Min(x+w, left+s) - math.Max(x, left)
			if ox <= 0 {
				continue
			}
			fn(&b.cells[row*b.cols+col], left+s/2, top+s/2, ox*oy/area)
		}
	}
}
