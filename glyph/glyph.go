// Package glyph maps a cell's final brightness to a character and color
package glyph

import (
	"math"

	"github.com/lixenwraith/ascii-portrait/parameter"
	"github.com/lixenwraith/ascii-portrait/parameter/visual"
	"github.com/lixenwraith/ascii-portrait/vmath"
)

var (
	ramp         = []rune(visual.Ramp)
	matrixGlyphs = []rune(visual.MatrixGlyphs)
	glitchGlyphs = []rune(visual.GlitchGlyphs)
)

// Input is everything selection depends on for one cell
type Input struct {
	Brightness float64 // final, already clamped to [0,255]
	X, Y       int
	Time       float64
	Matrix     bool // cell receives matrix rain after suppression
	Glitch     bool // cell is on this frame's glitch row
}

// Result is the ephemeral per-cell output of a frame
type Result struct {
	Glyph rune
	Color HSLA

	// Skip marks an elided cell, nothing is drawn
	Skip bool

	// Sparkle asks for SparkleGlyph on top of the primary glyph
	Sparkle bool
}

// Selector owns the random source for jitter, set choice and sparkle
type Selector struct {
	rng vmath.Source
}

func NewSelector(rng vmath.Source) *Selector {
	return &Selector{rng: rng}
}

// Select picks glyph and color for a cell
func (s *Selector) Select(in Input) Result {
	b := vmath.Clamp(in.Brightness, 0, parameter.MaxBrightness)

	var res Result
	switch {
	case in.Glitch:
		res.Glyph = s.pick(glitchGlyphs)
	case in.Matrix && s.rng.Float64() < visual.MatrixGlyphChance:
		res.Glyph = s.pick(matrixGlyphs)
	default:
		res.Glyph = ramp[s.rampIndex(b)]
	}

	if res.Glyph == ' ' && b < visual.ElideBrightness {
		res.Skip = true
		return res
	}

	res.Color = Color(b, in.X, in.Y, in.Time, in.Matrix, in.Glitch)
	if b > visual.SparkleBrightness && s.rng.Float64() < visual.SparkleChance {
		res.Sparkle = true
	}
	return res
}

// rampIndex maps brightness onto the ramp with occasional one-step jitter
func (s *Selector) rampIndex(b float64) int {
	last := len(ramp) - 1
	idx := int(math.Floor(b / parameter.MaxBrightness * float64(last)))
	if s.rng.Float64() < visual.JitterChance {
		idx += int(math.Floor(s.rng.Float64()*3)) - 1
	}
	return vmath.ClampInt(idx, 0, last)
}

func (s *Selector) pick(set []rune) rune {
	i := int(s.rng.Float64() * float64(len(set)))
	return set[vmath.ClampInt(i, 0, len(set)-1)]
}

// Color computes the cell color; glitch overrides matrix, matrix overrides the portrait palette
func Color(b float64, x, y int, t float64, matrix, glitch bool) HSLA {
	fx, fy := float64(x), float64(y)
	norm := b / parameter.MaxBrightness

	var c HSLA
	switch {
	case glitch:
		c.H = visual.GlitchHue
		c.S = visual.GlitchSaturation
	case matrix:
		c.H = visual.MatrixHue
		c.S = visual.MatrixSaturation
	default:
		c.H = visual.BaseHue + math.Sin(fx*visual.HueScaleXY+fy*visual.HueScaleXY+t)*visual.HueSwing
		c.S = visual.BaseSaturation + math.Sin(t+fx*visual.SaturationScale)*visual.SaturationSwing
	}

	switch {
	case matrix && !glitch:
		c.L = visual.MatrixLightness
	case b > visual.EdgeLow && b < visual.EdgeHigh:
		c.L = norm*visual.EdgeLightnessScale + visual.EdgeLightnessBase
	default:
		c.L = norm*visual.LightnessScale + visual.LightnessBase
	}

	c.A = visual.AlphaBase + norm*visual.AlphaScale
	return c
}

// SparkleColor is the marker color layered by a sparkle hit
func SparkleColor() HSLA {
	return HSLA{H: visual.SparkleHue, S: visual.SparkleSaturation, L: visual.SparkleLightness, A: 1}
}
