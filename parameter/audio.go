package parameter

import "time"

// Heartbeat cue: two low thumps ("lub-dub")
const (
	HeartbeatSampleRate = 44100

	HeartbeatLubFreq = 55.0
	HeartbeatDubFreq = 48.0

	HeartbeatThumpDuration = 90 * time.Millisecond
	HeartbeatThumpAttack   = 5 * time.Millisecond
	HeartbeatThumpRelease  = 70 * time.Millisecond
	HeartbeatGap           = 60 * time.Millisecond

	HeartbeatVolume = 0.6
)
