package visual

// Ramp orders glyphs from empty to dense by ink coverage
const Ramp = " .,:;i1tfLCG08@#"

// MatrixGlyphs are half-width katakana and digits, single cell wide in terminals
const MatrixGlyphs = "ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉ0123456789"

// GlitchGlyphs replace a whole row on glitch frames
const GlitchGlyphs = "!@#$%^&*<>?/\\|~=+"

// SparkleGlyph is layered over a bright cell on a sparkle hit
const SparkleGlyph = '*'

// Selection probabilities
const (
	JitterChance      = 0.02
	MatrixGlyphChance = 0.3
	SparkleChance     = 0.0005
)

// Brightness gates
const (
	ElideBrightness   = 30.0
	SparkleBrightness = 100.0
	EdgeLow           = 100.0
	EdgeHigh          = 180.0
)
