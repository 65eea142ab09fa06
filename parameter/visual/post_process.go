package visual

// Trailing fade: alpha of the background fill painted before each grid pass
const FadeAlpha = 0.25

// Scanlines: 1px dark lines every ScanlineSpacing px, scrolling ScanlineSpeed px per time unit
const (
	ScanlineSpacing = 4.0
	ScanlineHeight  = 1.0
	ScanlineSpeed   = 20.0
	ScanlineAlpha   = 0.08
)

// Vignette: transparent inside VignetteInner*min(w,h), darkening to VignetteAlpha at the corners
const (
	VignetteInner = 0.3
	VignetteAlpha = 0.6
)
