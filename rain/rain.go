// Package rain owns the matrix rain overlay: one falling drop head per column
package rain

import (
	"math"

	"github.com/lixenwraith/ascii-portrait/parameter"
	"github.com/lixenwraith/ascii-portrait/vmath"
)

// Overlay holds the drop head row of every column
// Mutated once per frame by Step, read by Contribution during the grid pass
type Overlay struct {
	positions []float64
	rows      float64
	rng       vmath.Source
}

// New seeds one drop per column somewhere in [-rows, 0]
func New(cols, rows int, rng vmath.Source) *Overlay {
	cols = max(1, cols)
	rows = max(1, rows)
	o := &Overlay{
		positions: make([]float64, cols),
		rows:      float64(rows),
		rng:       rng,
	}
	for i := range o.positions {
		o.positions[i] = -rng.Float64() * o.rows
	}
	return o
}

// Step advances every drop; a drop past the last row wraps to [-30, -10)
func (o *Overlay) Step() {
	for i, p := range o.positions {
		p += parameter.RainStepBase + o.rng.Float64()*parameter.RainStepJitter
		if p > o.rows {
			// 1-r keeps the upper bound open
			p = -parameter.RainResetBase - (1-o.rng.Float64())*parameter.RainResetJitter
		}
		o.positions[i] = p
	}
}

// Contribution returns the brightness boost of the drop in column x at row y
func (o *Overlay) Contribution(x, y int) float64 {
	if x < 0 || x >= len(o.positions) {
		return 0
	}
	if math.Abs(float64(y)-o.positions[x]) < parameter.RainBand {
		return parameter.RainBoost
	}
	return 0
}

// Position returns the drop head row of a column, 0 when out of range
func (o *Overlay) Position(col int) float64 {
	if col < 0 || col >= len(o.positions) {
		return 0
	}
	return o.positions[col]
}

func (o *Overlay) Columns() int {
	return len(o.positions)
}
