// Package snapshot renders portrait frames without a terminal: a gg pixel canvas
// for PNG output, and file export of cell buffers as ANSI text
package snapshot

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/lixenwraith/ascii-portrait/render"
)

// Canvas is a render.Surface over a gg software context
type Canvas struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face
	err    error
}

// NewCanvas creates a w x h canvas cleared to bg, with Go Mono for glyphs
func NewCanvas(w, h int, bg render.RGB) (*Canvas, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("canvas size %dx%d", w, h)
	}
	source, err := text.NewFontSource(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(toGG(bg.WithAlpha(1)))
	return &Canvas{
		dc:     dc,
		source: source,
		faces:  make(map[float64]text.Face),
	}, nil
}

func toGG(c render.RGBA) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: c.A,
	}
}

func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

func (c *Canvas) FillRect(x, y, w, h float64, col render.RGBA) {
	if col.A <= 0 {
		return
	}
	c.setColor(col)
	c.dc.DrawRectangle(x, y, w, h)
	c.keep(c.dc.Fill())
}

func (c *Canvas) FillRectGradient(x, y, w, h float64, g *render.RadialGradient) {
	if g == nil {
		return
	}
	brush := gg.NewRadialGradientBrush(g.CX, g.CY, g.R0, g.R1)
	for _, s := range g.Stops() {
		brush.AddColorStop(s.Offset, toGG(s.Color))
	}
	c.dc.SetFillBrush(brush)
	c.dc.DrawRectangle(x, y, w, h)
	c.keep(c.dc.Fill())
}

// DrawGlyph centers r in the square cell box at (x, y) sized by font.SizePx
func (c *Canvas) DrawGlyph(x, y float64, r rune, font render.Font, col render.RGBA) {
	if col.A <= 0 {
		return
	}
	size := font.SizePx
	if size <= 0 {
		size = 10
	}
	c.dc.SetFont(c.face(size))
	c.setColor(col)
	c.dc.DrawStringAnchored(string(r), x+size/2, y+size/2, 0.5, 0.5)
}

func (c *Canvas) setColor(col render.RGBA) {
	g := toGG(col)
	c.dc.SetRGBA(g.R, g.G, g.B, g.A)
}

func (c *Canvas) face(size float64) text.Face {
	f, ok := c.faces[size]
	if !ok {
		f = c.source.Face(size)
		c.faces[size] = f
	}
	return f
}

// keep remembers the first fill error, Surface methods cannot return one
func (c *Canvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// Err returns the first drawing error
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}
