package parameter

// Breathing: slow translation of the whole portrait plus a brightness swell
const (
	BreatheFreqX  = 0.8
	BreatheAmpX   = 1.5 // cells
	BreatheFreqY  = 0.6
	BreatheAmpY   = 1.0 // cells
	BreatheLumAmp = 15.0
)

// Head tilt: rotation about the grid center, radians
const (
	TiltFreq = 0.4
	TiltAmp  = 0.02
)

// Heartbeat: square pulse gated on sin(t*freq), fading out from the center
const (
	HeartbeatFreq        = 3.0
	HeartbeatThreshold   = 0.7
	HeartbeatPulse       = 20.0
	HeartbeatRadiusRatio = 0.3 // fraction of rows
)

// Eye glow: bright highlights shimmer
const (
	EyeGlowThreshold = 180.0
	EyeGlowFreq      = 2.0
	EyeGlowAmp       = 15.0
)

// Displacement waves, scale is per cell
const (
	Wave1Scale = 0.1
	Wave1Freq  = 2.0
	Wave1Amp   = 8.0

	Wave2Scale = 0.08
	Wave2Freq  = 1.5
	Wave2Amp   = 6.0

	Wave3Scale = 0.05
	Wave3Freq  = 3.0
	Wave3Amp   = 4.0
)

// Ripple: rings travelling outward from the grid center
const (
	RippleScale = 0.3
	RippleFreq  = 4.0
	RippleAmp   = 10.0
)

// MaxBrightness is the top of the brightness scale shared by every stage
const MaxBrightness = 255.0
