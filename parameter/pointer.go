package parameter

// Cursor reveal, in surface pixels
const (
	CursorRadius  = 80.0
	CursorFalloff = 40.0
	CursorBoost   = 40.0
)

// Pointer trail memory
const (
	TrailCapacity    = 20
	TrailMaxAge      = 30 // frames
	TrailRadiusRatio = 0.6
	TrailBoost       = 20.0
)
