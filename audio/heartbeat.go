package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/ascii-portrait/parameter"
)

// Heartbeat builds the lub-dub cue: two enveloped thumps separated by a short gap
func Heartbeat(rate beep.SampleRate, volume float64) beep.Streamer {
	lub := shapedThump(parameter.HeartbeatLubFreq, rate)
	dub := shapedThump(parameter.HeartbeatDubFreq, rate)
	return newVolume(beep.Seq(lub, beep.Silence(rate.N(parameter.HeartbeatGap)), dub), volume)
}

// HeartbeatLength is the cue length in samples at rate
func HeartbeatLength(rate beep.SampleRate) int {
	return 2*rate.N(parameter.HeartbeatThumpDuration) + rate.N(parameter.HeartbeatGap)
}

func shapedThump(freq float64, rate beep.SampleRate) beep.Streamer {
	d := parameter.HeartbeatThumpDuration
	return NewEnvelope(NewThump(freq, d, rate), d, parameter.HeartbeatThumpAttack, parameter.HeartbeatThumpRelease, rate)
}

// bufferFor is the speaker buffer for rate
func bufferFor(rate beep.SampleRate) int {
	return rate.N(100 * time.Millisecond)
}
