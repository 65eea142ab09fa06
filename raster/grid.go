package raster

// Grid is the character grid, fixed for the life of a session
type Grid struct {
	Cols, Rows int
}

// GridFor derives the grid covering a surface of the given pixel size
// Dimensions are clamped to 1x1 so a tiny surface still yields a valid grid
func GridFor(widthPx, heightPx, cellSizePx int) Grid {
	if cellSizePx < 1 {
		cellSizePx = 1
	}
	return Grid{
		Cols: max(1, widthPx/cellSizePx),
		Rows: max(1, heightPx/cellSizePx),
	}
}

// Cells returns the number of cells, the length of every per-cell slice
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}

// Index maps a cell to its row-major slice index
func (g Grid) Index(x, y int) int {
	return y*g.Cols + x
}

// InBounds reports whether (x, y) is a cell of the grid
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}
