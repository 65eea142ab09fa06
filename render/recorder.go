package render

// GlyphCall is one recorded DrawGlyph
type GlyphCall struct {
	X, Y  float64
	Rune  rune
	Font  Font
	Color RGBA
}

// RectCall is one recorded fill, Gradient is nil for solid fills
type RectCall struct {
	X, Y, W, H float64
	Color      RGBA
	Gradient   *RadialGradient
}

// Recorder is a Surface that only records calls, for tests and frame statistics
type Recorder struct {
	Width, Height int
	Glyphs        []GlyphCall
	Rects         []RectCall
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

func (r *Recorder) FillRect(x, y, w, h float64, c RGBA) {
	r.Rects = append(r.Rects, RectCall{X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillRectGradient(x, y, w, h float64, g *RadialGradient) {
	r.Rects = append(r.Rects, RectCall{X: x, Y: y, W: w, H: h, Gradient: g})
}

func (r *Recorder) DrawGlyph(x, y float64, ch rune, font Font, c RGBA) {
	r.Glyphs = append(r.Glyphs, GlyphCall{X: x, Y: y, Rune: ch, Font: font, Color: c})
}

// Reset drops everything recorded so far
func (r *Recorder) Reset() {
	r.Glyphs = r.Glyphs[:0]
	r.Rects = r.Rects[:0]
}

// GlyphAt returns the last glyph drawn with its cell box at (x, y)
func (r *Recorder) GlyphAt(x, y float64) (GlyphCall, bool) {
	for i := len(r.Glyphs) - 1; i >= 0; i-- {
		if g := r.Glyphs[i]; g.X == x && g.Y == y {
			return g, true
		}
	}
	return GlyphCall{}, false
}
