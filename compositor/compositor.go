// Package compositor runs the portrait session: it owns the sampled raster, clock,
// rain and pointer state, and composes one frame of glyphs per scheduler callback
package compositor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/lixenwraith/ascii-portrait/config"
	"github.com/lixenwraith/ascii-portrait/engine"
	"github.com/lixenwraith/ascii-portrait/field"
	"github.com/lixenwraith/ascii-portrait/glyph"
	"github.com/lixenwraith/ascii-portrait/parameter"
	"github.com/lixenwraith/ascii-portrait/parameter/visual"
	"github.com/lixenwraith/ascii-portrait/pointer"
	"github.com/lixenwraith/ascii-portrait/rain"
	"github.com/lixenwraith/ascii-portrait/raster"
	"github.com/lixenwraith/ascii-portrait/render"
	"github.com/lixenwraith/ascii-portrait/vmath"
)

// Stats describes the session so far and the last frame
type Stats struct {
	Frames   uint64
	Drawn    int // glyphs drawn last frame, sparkles excluded
	Elided   int
	Sparkles int
	Glitched bool
}

// Compositor is a single portrait session
// Every method must be called from the goroutine that fires the scheduler
type Compositor struct {
	surface render.Surface
	frames  engine.Scheduler
	cfg     config.Config
	filter  raster.Filter
	rng     vmath.Source
	log     *slog.Logger
	pulse   PulseListener
	font    render.Font

	width, height float64
	grid          raster.Grid
	bg            render.RGB

	state    State
	disposed bool
	pending  engine.FrameID

	// Created on successful load
	samples    []raster.Sample
	clock      *engine.Clock
	rain       *rain.Overlay
	pointer    *pointer.Tracker
	selector   *glyph.Selector
	brightness []float64

	intro      *gween.Tween
	introAlpha float64
	beating    bool

	stats Stats
}

// New validates the surface and config and derives the grid
// The session starts Unloaded; call Load then Start
func New(surface render.Surface, frames engine.Scheduler, cfg config.Config, opts ...Option) (*Compositor, error) {
	if surface == nil {
		return nil, ErrSurfaceUnavailable
	}
	if frames == nil {
		return nil, fmt.Errorf("%w: no frame scheduler", ErrSurfaceUnavailable)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	filter, err := raster.ParseFilter(cfg.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	w, h := surface.Size()
	r, g, b := cfg.BackgroundRGB()

	c := &Compositor{
		surface:    surface,
		frames:     frames,
		cfg:        cfg,
		filter:     filter,
		log:        slog.New(slog.DiscardHandler),
		font:       render.Font{Family: "mono", SizePx: float64(cfg.CellSizePx)},
		width:      float64(max(0, w)),
		height:     float64(max(0, h)),
		grid:       raster.GridFor(w, h, cfg.CellSizePx),
		bg:         render.RGB{R: r, G: g, B: b},
		introAlpha: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	return c, nil
}

// Load fetches and samples the source raster once
// Any failure is terminal for the session: state becomes Disposed and the surface is left blank
func (c *Compositor) Load(ctx context.Context, loader raster.Loader) error {
	if c.state != StateUnloaded {
		return fmt.Errorf("%w: load in state %s", ErrInvalidState, c.state)
	}
	c.state = StateLoading

	var (
		samples []raster.Sample
		err     error
	)
	if loader == nil {
		err = fmt.Errorf("%w: no loader", raster.ErrImageDecode)
	} else if img, lerr := loader.Load(ctx); lerr != nil {
		err = lerr
	} else {
		samples, err = raster.SampleImage(img, c.grid, c.filter)
	}
	if err != nil {
		if !errors.Is(err, raster.ErrImageDecode) {
			err = fmt.Errorf("%w: %w", raster.ErrImageDecode, err)
		}
		c.fail(err)
		return err
	}

	c.samples = samples
	c.clock = engine.NewClock(c.cfg.ClockStep)
	c.rain = rain.New(c.grid.Cols, c.grid.Rows, c.rng)
	c.pointer = pointer.New(pointer.Options{
		CursorRadius:  c.cfg.CursorRadius,
		CursorFalloff: c.cfg.CursorFalloff,
		TrailCapacity: c.cfg.TrailCapacity,
		TrailMaxAge:   c.cfg.TrailMaxAge,
	})
	c.selector = glyph.NewSelector(c.rng)
	c.brightness = make([]float64, c.grid.Cells())
	c.state = StateReady

	c.log.Debug("portrait loaded", "cols", c.grid.Cols, "rows", c.grid.Rows, "filter", c.filter.String())
	return nil
}

func (c *Compositor) fail(err error) {
	c.log.Error("portrait load failed", "error", err)
	c.state = StateDisposed
	c.disposed = true
	c.surface.FillRect(0, 0, c.width, c.height, c.bg.WithAlpha(1))
}

// Start moves Ready to Animating and requests the first frame
func (c *Compositor) Start() error {
	if c.state != StateReady {
		return fmt.Errorf("%w: start in state %s", ErrInvalidState, c.state)
	}
	c.state = StateAnimating
	if c.cfg.IntroFade > 0 {
		c.intro = gween.New(0, 1, float32(c.cfg.IntroFade), ease.OutCubic)
		c.introAlpha = 0
	}
	c.pending = c.frames.RequestFrame(c.Frame)
	c.log.Debug("animation started")
	return nil
}

// Frame is the scheduler callback: render one frame, then request the next
func (c *Compositor) Frame() {
	if c.disposed || c.state != StateAnimating {
		return
	}
	c.pending = 0
	c.render()
	c.pending = c.frames.RequestFrame(c.Frame)
}

// Dispose ends the session, cancels the pending frame and drops pointer input
// Safe to call any number of times
func (c *Compositor) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.state = StateDisposed
	if c.pending != 0 {
		c.frames.CancelFrame(c.pending)
		c.pending = 0
	}
	c.log.Debug("session disposed", "frames", c.stats.Frames)
}

// PointerMove takes surface pixel coordinates
func (c *Compositor) PointerMove(x, y float64) {
	if c.disposed || c.pointer == nil {
		return
	}
	c.pointer.Move(x, y)
}

func (c *Compositor) PointerEnter() {
	if c.disposed || c.pointer == nil {
		return
	}
	c.pointer.Enter()
}

func (c *Compositor) PointerLeave() {
	if c.disposed || c.pointer == nil {
		return
	}
	c.pointer.Leave()
}

func (c *Compositor) State() State      { return c.state }
func (c *Compositor) Grid() raster.Grid { return c.grid }
func (c *Compositor) Stats() Stats      { return c.stats }

// Time returns the animation clock, zero before load
func (c *Compositor) Time() float64 {
	if c.clock == nil {
		return 0
	}
	return c.clock.Time()
}

// IntroAlpha is the current glyph alpha multiplier of the intro fade
func (c *Compositor) IntroAlpha() float64 {
	return c.introAlpha
}

// CellBrightness returns the final clamped brightness of a cell in the last frame
func (c *Compositor) CellBrightness(x, y int) float64 {
	if !c.grid.InBounds(x, y) || c.brightness == nil {
		return 0
	}
	return c.brightness[c.grid.Index(x, y)]
}

// BaseBrightness returns the sampled brightness of a cell before any modifier
func (c *Compositor) BaseBrightness(x, y int) float64 {
	if !c.grid.InBounds(x, y) || c.samples == nil {
		return 0
	}
	return c.samples[c.grid.Index(x, y)].Brightness
}

// render composes one frame: advance state, fade, grid pass, post effects
func (c *Compositor) render() {
	t := c.clock.Advance()
	c.rain.Step()
	c.pointer.Tick()
	c.advanceIntro()
	c.notifyPulse(t)

	glitchRow := -1
	if c.cfg.GlitchChance > 0 && c.rng.Float64() < c.cfg.GlitchChance {
		glitchRow = vmath.ClampInt(int(c.rng.Float64()*float64(c.grid.Rows)), 0, c.grid.Rows-1)
	}

	c.surface.FillRect(0, 0, c.width, c.height, c.bg.WithAlpha(c.cfg.FadeAlpha))

	c.stats.Drawn, c.stats.Elided, c.stats.Sparkles = 0, 0, 0
	c.stats.Glitched = glitchRow >= 0
	c.drawGrid(t, glitchRow)

	c.drawScanlines(t)
	c.drawVignette()
	c.stats.Frames++
}

func (c *Compositor) drawGrid(t float64, glitchRow int) {
	cols, rows := c.grid.Cols, c.grid.Rows
	cell := float64(c.cfg.CellSizePx)
	half := cell / 2

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			f := field.Evaluate(x, y, cols, rows, t)
			sample := c.samples[c.grid.Index(f.SampleX, f.SampleY)]
			base := field.EyeGlow(sample.Brightness, t)

			px, py := float64(x)*cell, float64(y)*cell
			reveal := c.pointer.Reveal(px+half, py+half)
			matrix := c.rain.Contribution(x, y) * (1 - reveal.Suppression)

			b := vmath.Clamp(base+f.Brightness+matrix+reveal.Boost, 0, parameter.MaxBrightness)
			c.brightness[c.grid.Index(x, y)] = b

			res := c.selector.Select(glyph.Input{
				Brightness: b,
				X:          x,
				Y:          y,
				Time:       t,
				Matrix:     matrix > 0,
				Glitch:     y == glitchRow,
			})
			if res.Skip {
				c.stats.Elided++
				continue
			}

			col := res.Color.RGBA()
			col.A *= c.introAlpha
			c.surface.DrawGlyph(px, py, res.Glyph, c.font, col)
			c.stats.Drawn++

			if res.Sparkle {
				spark := glyph.SparkleColor().RGBA()
				spark.A *= c.introAlpha
				c.surface.DrawGlyph(px, py, visual.SparkleGlyph, c.font, spark)
				c.stats.Sparkles++
			}
		}
	}
}

// drawScanlines paints thin dark lines that scroll down with time
func (c *Compositor) drawScanlines(t float64) {
	spacing := c.cfg.ScanlineSpacing
	if spacing <= 0 || c.cfg.ScanlineAlpha <= 0 {
		return
	}
	line := render.RGBBlack.WithAlpha(c.cfg.ScanlineAlpha)
	for y := math.Mod(t*visual.ScanlineSpeed, spacing); y < c.height; y += spacing {
		c.surface.FillRect(0, y, c.width, visual.ScanlineHeight, line)
	}
}

// drawVignette darkens toward the corners, the center stays clear
func (c *Compositor) drawVignette() {
	if c.cfg.VignetteAlpha <= 0 || c.width <= 0 || c.height <= 0 {
		return
	}
	cx, cy := c.width/2, c.height/2
	g := render.NewRadialGradient(cx, cy, math.Min(c.width, c.height)*visual.VignetteInner, math.Hypot(cx, cy)).
		AddStop(0, render.RGBBlack.WithAlpha(0)).
		AddStop(1, render.RGBBlack.WithAlpha(c.cfg.VignetteAlpha))
	c.surface.FillRectGradient(0, 0, c.width, c.height, g)
}

func (c *Compositor) advanceIntro() {
	if c.intro == nil {
		return
	}
	v, done := c.intro.Update(float32(c.clock.Step()))
	c.introAlpha = vmath.Clamp01(float64(v))
	if done {
		c.intro = nil
		c.introAlpha = 1
	}
}

func (c *Compositor) notifyPulse(t float64) {
	beating := field.Beating(t)
	if beating && !c.beating && c.pulse != nil {
		c.pulse.OnPulse()
	}
	c.beating = beating
}
