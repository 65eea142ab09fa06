// Package field evaluates the closed-form distortion field applied to every
// cell of the portrait: breathing, head tilt, heartbeat, waves and ripple.
//
// Every function here is pure. The same inputs always produce bit-identical
// output, so frames can be replayed and tested without running a clock.
package field

import (
	"math"

	"github.com/lixenwraith/ascii-portrait/parameter"
	"github.com/lixenwraith/ascii-portrait/vmath"
)

// Field is the distortion for one cell at one instant
type Field struct {
	// SampleX, SampleY are the source cell to read, rounded and clamped to the grid
	SampleX, SampleY int

	// DX, DY are the unrounded positional offset of the sample from the cell
	DX, DY float64

	// Brightness is the sum of every brightness term, not clamped
	Brightness float64
}

// Evaluate computes the field for cell (x, y) of a cols x rows grid at time t
func Evaluate(x, y, cols, rows int, t float64) Field {
	cx := float64(cols) / 2
	cy := float64(rows) / 2
	fx := float64(x)
	fy := float64(y)
	dx0 := fx - cx
	dy0 := fy - cy

	// Breathing translation
	breatheX := math.Sin(t*parameter.BreatheFreqX) * parameter.BreatheAmpX
	breatheY := math.Sin(t*parameter.BreatheFreqY) * parameter.BreatheAmpY

	// Tilt about the grid center
	angle := math.Sin(t*parameter.TiltFreq) * parameter.TiltAmp
	sin, cos := math.Sincos(angle)
	rx := dx0*cos - dy0*sin
	ry := dx0*sin + dy0*cos

	sampleX := cx + rx + breatheX
	sampleY := cy + ry + breatheY

	dist := math.Hypot(dx0, dy0)

	lum := Heartbeat(t) * vmath.Falloff(dist, float64(rows)*parameter.HeartbeatRadiusRatio)
	lum += Waves(x, y, t)
	lum += math.Sin(t*parameter.BreatheFreqX) * parameter.BreatheLumAmp
	lum += math.Sin(dist*parameter.RippleScale-t*parameter.RippleFreq) * parameter.RippleAmp

	return Field{
		SampleX:    vmath.RoundClamp(sampleX, 0, cols-1),
		SampleY:    vmath.RoundClamp(sampleY, 0, rows-1),
		DX:         sampleX - fx,
		DY:         sampleY - fy,
		Brightness: lum,
	}
}

// Heartbeat returns the pulse brightness before distance falloff: HeartbeatPulse while the gate is open, else 0
func Heartbeat(t float64) float64 {
	if Beating(t) {
		return parameter.HeartbeatPulse
	}
	return 0
}

// Beating reports whether the heartbeat gate is open at t
func Beating(t float64) bool {
	return math.Sin(t*parameter.HeartbeatFreq) > parameter.HeartbeatThreshold
}

// Waves sums the three displacement waves for cell (x, y)
func Waves(x, y int, t float64) float64 {
	fx := float64(x)
	fy := float64(y)
	w1 := math.Sin(fx*parameter.Wave1Scale+t*parameter.Wave1Freq) * parameter.Wave1Amp
	w2 := math.Sin(fy*parameter.Wave2Scale+t*parameter.Wave2Freq) * parameter.Wave2Amp
	w3 := math.Sin((fx+fy)*parameter.Wave3Scale+t*parameter.Wave3Freq) * parameter.Wave3Amp
	return w1 + w2 + w3
}

// EyeGlow brightens highlights above EyeGlowThreshold, capped at MaxBrightness
// Values at or below the threshold pass through unchanged
func EyeGlow(sampled, t float64) float64 {
	if sampled <= parameter.EyeGlowThreshold {
		return sampled
	}
	return math.Min(parameter.MaxBrightness, sampled+(math.Sin(t*parameter.EyeGlowFreq)+1)*parameter.EyeGlowAmp)
}
