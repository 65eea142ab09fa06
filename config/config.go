package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ascii-portrait/parameter"
	"github.com/lixenwraith/ascii-portrait/parameter/visual"
)

// ErrInvalidConfig is returned for values the renderer cannot run with
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix prefixes every environment override
const EnvPrefix = "ASCII_PORTRAIT_"

// Config holds renderer tuning
// The first block is the core contract, the rest is host tuning
type Config struct {
	CellSizePx    int     `toml:"cell_size_px"`
	CursorRadius  float64 `toml:"cursor_radius"`
	CursorFalloff float64 `toml:"cursor_falloff"`
	TrailCapacity int     `toml:"trail_capacity"`
	TrailMaxAge   int     `toml:"trail_max_age"`
	ClockStep     float64 `toml:"clock_step"`

	FPS             int     `toml:"fps"`
	Filter          string  `toml:"filter"` // nearest, bilinear, catmullrom
	Background      string  `toml:"background"`
	FadeAlpha       float64 `toml:"fade_alpha"`
	GlitchChance    float64 `toml:"glitch_chance"`
	IntroFade       float64 `toml:"intro_fade"`
	ScanlineSpacing float64 `toml:"scanline_spacing"`
	ScanlineAlpha   float64 `toml:"scanline_alpha"`
	VignetteAlpha   float64 `toml:"vignette_alpha"`
	Sound           bool    `toml:"sound"`
}

// Default returns the built-in tuning
func Default() Config {
	return Config{
		CellSizePx:    parameter.CellSizePx,
		CursorRadius:  parameter.CursorRadius,
		CursorFalloff: parameter.CursorFalloff,
		TrailCapacity: parameter.TrailCapacity,
		TrailMaxAge:   parameter.TrailMaxAge,
		ClockStep:     parameter.ClockStep,

		FPS:             parameter.FrameRate,
		Filter:          "bilinear",
		Background:      visual.Background,
		FadeAlpha:       visual.FadeAlpha,
		GlitchChance:    parameter.GlitchChance,
		IntroFade:       parameter.IntroFade,
		ScanlineSpacing: visual.ScanlineSpacing,
		ScanlineAlpha:   visual.ScanlineAlpha,
		VignetteAlpha:   visual.VignetteAlpha,
	}
}

// Load builds a config from defaults, an optional TOML file, then environment overrides
// Empty path skips the file
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return cfg, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from ASCII_PORTRAIT_* variables
// Unparseable values are ignored and the previous value kept
func (c *Config) ApplyEnv() {
	envInt("CELL_SIZE_PX", &c.CellSizePx)
	envFloat("CURSOR_RADIUS", &c.CursorRadius)
	envFloat("CURSOR_FALLOFF", &c.CursorFalloff)
	envInt("TRAIL_CAPACITY", &c.TrailCapacity)
	envInt("TRAIL_MAX_AGE", &c.TrailMaxAge)
	envFloat("CLOCK_STEP", &c.ClockStep)
	envInt("FPS", &c.FPS)
	envFloat("FADE_ALPHA", &c.FadeAlpha)
	envFloat("GLITCH_CHANCE", &c.GlitchChance)
	envFloat("INTRO_FADE", &c.IntroFade)
	envFloat("SCANLINE_SPACING", &c.ScanlineSpacing)
	envFloat("SCANLINE_ALPHA", &c.ScanlineAlpha)
	envFloat("VIGNETTE_ALPHA", &c.VignetteAlpha)

	if v := os.Getenv(EnvPrefix + "FILTER"); v != "" {
		c.Filter = v
	}
	if v := os.Getenv(EnvPrefix + "BACKGROUND"); v != "" {
		c.Background = v
	}
	if v := os.Getenv(EnvPrefix + "SOUND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Sound = b
		}
	}
}

func envInt(name string, dst *int) {
	if v := os.Getenv(EnvPrefix + name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envFloat(name string, dst *float64) {
	if v := os.Getenv(EnvPrefix + name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

// Validate rejects values that would break grid or trail invariants
func (c Config) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"cursor_radius", c.CursorRadius},
		{"cursor_falloff", c.CursorFalloff},
		{"clock_step", c.ClockStep},
		{"fade_alpha", c.FadeAlpha},
		{"glitch_chance", c.GlitchChance},
		{"intro_fade", c.IntroFade},
		{"scanline_spacing", c.ScanlineSpacing},
		{"scanline_alpha", c.ScanlineAlpha},
		{"vignette_alpha", c.VignetteAlpha},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidConfig, f.name, f.v)
		}
	}

	switch {
	case c.CellSizePx < 1:
		return fmt.Errorf("%w: cell_size_px must be >= 1, got %d", ErrInvalidConfig, c.CellSizePx)
	case c.CursorRadius <= 0:
		return fmt.Errorf("%w: cursor_radius must be > 0, got %g", ErrInvalidConfig, c.CursorRadius)
	case c.CursorFalloff < 0:
		return fmt.Errorf("%w: cursor_falloff must be >= 0, got %g", ErrInvalidConfig, c.CursorFalloff)
	case c.TrailCapacity < 1:
		return fmt.Errorf("%w: trail_capacity must be >= 1, got %d", ErrInvalidConfig, c.TrailCapacity)
	case c.TrailMaxAge < 1:
		return fmt.Errorf("%w: trail_max_age must be >= 1, got %d", ErrInvalidConfig, c.TrailMaxAge)
	case c.ClockStep <= 0:
		return fmt.Errorf("%w: clock_step must be > 0, got %g", ErrInvalidConfig, c.ClockStep)
	case c.FPS < 1 || c.FPS > 240:
		return fmt.Errorf("%w: fps out of range 1-240, got %d", ErrInvalidConfig, c.FPS)
	case c.FadeAlpha < 0 || c.FadeAlpha > 1:
		return fmt.Errorf("%w: fade_alpha out of range 0-1, got %g", ErrInvalidConfig, c.FadeAlpha)
	case c.GlitchChance < 0 || c.GlitchChance > 1:
		return fmt.Errorf("%w: glitch_chance out of range 0-1, got %g", ErrInvalidConfig, c.GlitchChance)
	case c.IntroFade < 0:
		return fmt.Errorf("%w: intro_fade must be >= 0, got %g", ErrInvalidConfig, c.IntroFade)
	case c.ScanlineSpacing < 0:
		return fmt.Errorf("%w: scanline_spacing must be >= 0, got %g", ErrInvalidConfig, c.ScanlineSpacing)
	case c.ScanlineAlpha < 0 || c.ScanlineAlpha > 1:
		return fmt.Errorf("%w: scanline_alpha out of range 0-1, got %g", ErrInvalidConfig, c.ScanlineAlpha)
	case c.VignetteAlpha < 0 || c.VignetteAlpha > 1:
		return fmt.Errorf("%w: vignette_alpha out of range 0-1, got %g", ErrInvalidConfig, c.VignetteAlpha)
	}

	switch c.Filter {
	case "nearest", "bilinear", "catmullrom":
	default:
		return fmt.Errorf("%w: unknown filter %q", ErrInvalidConfig, c.Filter)
	}

	if _, err := colorful.Hex(c.Background); err != nil {
		return fmt.Errorf("%w: background %q: %v", ErrInvalidConfig, c.Background, err)
	}
	return nil
}

// FrameInterval is the ticker period for the configured FPS
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return parameter.FrameInterval
	}
	return time.Second / time.Duration(c.FPS)
}

// BackgroundRGB parses Background, falling back to black on a bad value
func (c Config) BackgroundRGB() (r, g, b uint8) {
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return 0, 0, 0
	}
	return col.RGB255()
}
