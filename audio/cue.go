// Package audio plays the heartbeat cue through the system speaker
package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ascii-portrait/parameter"
)

// Cue plays a heartbeat on every pulse once the speaker is up
// Pulses before Init, or after Init failed, are counted and dropped
type Cue struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	pulses      int
	logger      *slog.Logger
}

// NewCue creates a cue at the default sample rate and volume
func NewCue(logger *slog.Logger) *Cue {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cue{
		rate:   beep.SampleRate(parameter.HeartbeatSampleRate),
		volume: parameter.HeartbeatVolume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker and starts the cue mixer
// Failure leaves the cue silent; the caller decides whether to report it
func (c *Cue) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.rate, bufferFor(c.rate)); err != nil {
		c.logger.Warn("speaker init failed, heartbeat muted", "error", err)
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// OnPulse queues one heartbeat
func (c *Cue) OnPulse() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pulses++
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(Heartbeat(c.rate, c.volume))
	speaker.Unlock()
}

// Pulses returns how many pulses were received
func (c *Cue) Pulses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pulses
}

// Close stops playback and releases the speaker
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
