package parameter

// Matrix rain drop motion, in rows per frame
const (
	RainStepBase   = 0.3
	RainStepJitter = 0.2

	// Wrapped drops restart in [-(ResetBase+ResetJitter), -ResetBase)
	RainResetBase   = 10.0
	RainResetJitter = 20.0

	// Rows within RainBand of the drop head get RainBoost brightness
	RainBand  = 5.0
	RainBoost = 30.0
)
