package render

// Font names a monospaced face and its pixel size
// Cell surfaces ignore it, pixel surfaces resolve it to a loaded face
type Font struct {
	Family string
	SizePx float64
}

// Surface is a drawing target with known pixel dimensions
// Coordinates are surface pixels with the origin at the top-left
type Surface interface {
	Size() (width, height int)
	FillRect(x, y, w, h float64, c RGBA)
	FillRectGradient(x, y, w, h float64, g *RadialGradient)
	// DrawGlyph draws r inside the cell box whose top-left corner is (x, y)
	DrawGlyph(x, y float64, r rune, font Font, c RGBA)
}
