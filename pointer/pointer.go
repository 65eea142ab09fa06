// Package pointer tracks the pointer over the portrait and the fading trail it leaves
package pointer

import (
	"math"

	"github.com/lixenwraith/ascii-portrait/parameter"
	"github.com/lixenwraith/ascii-portrait/vmath"
)

// Options tunes the reveal area and trail memory
// Zero CursorFalloff gives a hard edge, other zero fields take defaults
type Options struct {
	CursorRadius  float64
	CursorFalloff float64
	TrailCapacity int
	TrailMaxAge   int
}

func DefaultOptions() Options {
	return Options{
		CursorRadius:  parameter.CursorRadius,
		CursorFalloff: parameter.CursorFalloff,
		TrailCapacity: parameter.TrailCapacity,
		TrailMaxAge:   parameter.TrailMaxAge,
	}
}

func (o Options) withDefaults() Options {
	if o.CursorRadius <= 0 {
		o.CursorRadius = parameter.CursorRadius
	}
	o.CursorFalloff = max(0, o.CursorFalloff)
	if o.TrailCapacity <= 0 {
		o.TrailCapacity = parameter.TrailCapacity
	}
	if o.TrailMaxAge <= 0 {
		o.TrailMaxAge = parameter.TrailMaxAge
	}
	return o
}

// State is the last known pointer position in surface pixels
// Position survives Leave; Active gates every reveal
type State struct {
	X, Y   float64
	Active bool
}

// TrailPoint is one remembered pointer position, Age in frames
type TrailPoint struct {
	X, Y float64
	Age  int
}

// Reveal is the pointer influence on one cell
// Suppression in [0,1] scales the matrix rain down; Boost adds brightness
type Reveal struct {
	Suppression float64
	Boost       float64
}

// Tracker owns pointer state and trail, single goroutine only
type Tracker struct {
	opts  Options
	state State
	trail []TrailPoint
}

func New(opts Options) *Tracker {
	opts = opts.withDefaults()
	return &Tracker{
		opts:  opts,
		trail: make([]TrailPoint, 0, opts.TrailCapacity),
	}
}

// Move records a pointer move, activates the pointer and pushes a trail point
// Oldest point is dropped once the trail is over capacity
func (t *Tracker) Move(x, y float64) {
	t.state = State{X: x, Y: y, Active: true}
	t.trail = append(t.trail, TrailPoint{X: x, Y: y})
	if over := len(t.trail) - t.opts.TrailCapacity; over > 0 {
		n := copy(t.trail, t.trail[over:])
		t.trail = t.trail[:n]
	}
}

func (t *Tracker) Enter() {
	t.state.Active = true
}

func (t *Tracker) Leave() {
	t.state.Active = false
}

// Tick ages the trail by one frame and evicts points at TrailMaxAge
func (t *Tracker) Tick() {
	kept := t.trail[:0]
	for _, p := range t.trail {
		p.Age++
		if p.Age < t.opts.TrailMaxAge {
			kept = append(kept, p)
		}
	}
	t.trail = kept
}

// Reveal computes the pointer influence on a cell at pixel (px, py)
// Suppression comes from the live cursor only; the trail adds boost but never clears rain
func (t *Tracker) Reveal(px, py float64) Reveal {
	if !t.state.Active {
		return Reveal{}
	}

	radius := t.opts.CursorRadius
	dist := vmath.Dist(px, py, t.state.X, t.state.Y)

	var r Reveal
	switch {
	case dist < radius:
		r.Suppression = 1
	case t.opts.CursorFalloff > 0 && dist <= radius+t.opts.CursorFalloff:
		r.Suppression = 1 - (dist-radius)/t.opts.CursorFalloff
	}
	r.Boost = vmath.Falloff(dist, radius) * parameter.CursorBoost

	trailRadius := radius * parameter.TrailRadiusRatio
	var proximity float64
	for _, p := range t.trail {
		proximity = math.Max(proximity, vmath.Falloff(vmath.Dist(px, py, p.X, p.Y), trailRadius))
	}
	r.Boost = math.Max(r.Boost, proximity*parameter.TrailBoost)

	return r
}

// Trail returns a copy of the live trail, oldest first
func (t *Tracker) Trail() []TrailPoint {
	out := make([]TrailPoint, len(t.trail))
	copy(out, t.trail)
	return out
}

func (t *Tracker) State() State {
	return t.state
}

func (t *Tracker) Options() Options {
	return t.opts
}
