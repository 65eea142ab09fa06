package parameter

import "time"

const (
	// ClockStep is the animation time added per frame, independent of wall clock
	ClockStep = 0.016

	// CellSizePx is the edge of one grid cell in surface pixels
	CellSizePx = 10

	FrameRate     = 60
	FrameInterval = time.Second / FrameRate

	// GlitchChance is the per-frame probability that one row renders as glitch
	GlitchChance = 0.03

	// IntroFade is the animation time over which glyph alpha ramps in after start
	IntroFade = 1.5
)
