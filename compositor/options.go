package compositor

import (
	"log/slog"

	"github.com/lixenwraith/ascii-portrait/render"
	"github.com/lixenwraith/ascii-portrait/vmath"
)

// PulseListener is told about every heartbeat, on the rising edge of the pulse gate
type PulseListener interface {
	OnPulse()
}

// PulseFunc adapts a plain function to PulseListener
type PulseFunc func()

func (f PulseFunc) OnPulse() { f() }

type Option func(*Compositor)

// WithRand routes rain jitter, glyph jitter, glitch rows and sparkle through rng
func WithRand(rng vmath.Source) Option {
	return func(c *Compositor) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Compositor) {
		if logger != nil {
			c.log = logger
		}
	}
}

func WithPulseListener(l PulseListener) Option {
	return func(c *Compositor) {
		c.pulse = l
	}
}

// WithFont sets the face passed to DrawGlyph
func WithFont(f render.Font) Option {
	return func(c *Compositor) {
		c.font = f
	}
}
