package render

import (
	"math"
	"sort"
)

// GradientStop is one color at a normalized offset along the radius
type GradientStop struct {
	Offset float64
	Color  RGBA
}

// RadialGradient interpolates stops between radius R0 (offset 0) and R1 (offset 1) around (CX, CY)
type RadialGradient struct {
	CX, CY float64
	R0, R1 float64
	stops  []GradientStop
}

func NewRadialGradient(cx, cy, r0, r1 float64) *RadialGradient {
	return &RadialGradient{CX: cx, CY: cy, R0: r0, R1: r1}
}

// AddStop inserts a stop keeping offsets sorted, offset is clamped to [0,1]
func (g *RadialGradient) AddStop(offset float64, c RGBA) *RadialGradient {
	offset = math.Max(0, math.Min(1, offset))
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].Offset > offset })
	g.stops = append(g.stops, GradientStop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = GradientStop{Offset: offset, Color: c}
	return g
}

func (g *RadialGradient) Stops() []GradientStop {
	return g.stops
}

// Offset maps a point to its normalized position along the gradient
func (g *RadialGradient) Offset(x, y float64) float64 {
	d := math.Hypot(x-g.CX, y-g.CY)
	span := g.R1 - g.R0
	if span <= 0 {
		if d < g.R0 {
			return 0
		}
		return 1
	}
	return math.Max(0, math.Min(1, (d-g.R0)/span))
}

// ColorAt evaluates the gradient at a point, transparent when there are no stops
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	if len(g.stops) == 0 {
		return RGBA{}
	}
	t := g.Offset(x, y)
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(g.stops); i++ {
		a, b := g.stops[i-1], g.stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return LerpRGBA(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return last.Color
}
