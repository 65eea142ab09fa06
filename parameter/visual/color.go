package visual

// HSL tuning, hue in degrees, saturation and lightness in percent
const (
	BaseHue    = 100.0
	HueSwing   = 30.0
	HueScaleXY = 0.02

	BaseSaturation  = 25.0
	SaturationSwing = 15.0
	SaturationScale = 0.1

	GlitchHue        = 0.0
	GlitchSaturation = 100.0

	MatrixHue        = 120.0
	MatrixSaturation = 80.0
	MatrixLightness  = 70.0

	EdgeLightnessScale = 50.0
	EdgeLightnessBase  = 30.0
	LightnessScale     = 55.0
	LightnessBase      = 15.0

	AlphaBase  = 0.7
	AlphaScale = 0.3
)

// Sparkle marker color
const (
	SparkleHue        = 60.0
	SparkleSaturation = 100.0
	SparkleLightness  = 90.0
)

// Background is the fade fill color
const Background = "#050805"
