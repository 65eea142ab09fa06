package glyph

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ascii-portrait/render"
)

// HSLA is hue in degrees, saturation and lightness in percent, alpha in [0,1]
type HSLA struct {
	H, S, L, A float64
}

// RGBA converts to the surface color type
func (c HSLA) RGBA() render.RGBA {
	r, g, b := colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().RGB255()
	return render.RGBA{R: r, G: g, B: b, A: c.A}
}
