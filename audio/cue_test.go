package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/ascii-portrait/parameter"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			peak = math.Max(peak, math.Abs(buf[i][1]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestThumpRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewThump(55, 50*time.Millisecond, rate)

	total, peak := drain(s)
	if total != rate.N(50*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(50*time.Millisecond), total)
	}
	if peak > 1 {
		t.Errorf("Expected samples within [-1, 1], peak %f", peak)
	}
	if s.Err() != nil {
		t.Errorf("Expected no error, got: %v", s.Err())
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	ones := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})

	env := NewEnvelope(ones, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)
	buf := make([][2]float64, 200)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	tests := []struct {
		index int
		want  float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 1},
		{50, 1},
		{80, 1},
		{90, 0.5},
		{99, 0.05},
	}
	for _, tt := range tests {
		if math.Abs(buf[tt.index][0]-tt.want) > 1e-9 {
			t.Errorf("sample %d: expected %f, got %f", tt.index, tt.want, buf[tt.index][0])
		}
	}
}

func TestHeartbeatCue(t *testing.T) {
	rate := beep.SampleRate(parameter.HeartbeatSampleRate)

	total, peak := drain(Heartbeat(rate, 0.5))
	if total != HeartbeatLength(rate) {
		t.Errorf("Expected %d samples, got %d", HeartbeatLength(rate), total)
	}
	if peak > 0.5+1e-9 {
		t.Errorf("Expected peak at most 0.5, got %f", peak)
	}
	if peak == 0 {
		t.Error("Expected audible samples")
	}

	_, silentPeak := drain(Heartbeat(rate, 0))
	if silentPeak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", silentPeak)
	}
}

func TestCueWithoutSpeaker(t *testing.T) {
	c := NewCue(nil)
	c.OnPulse()
	c.OnPulse()

	if c.Pulses() != 2 {
		t.Errorf("Expected 2 pulses, got %d", c.Pulses())
	}
	if c.mixer.Len() != 0 {
		t.Errorf("Expected nothing queued before Init, got %d", c.mixer.Len())
	}
	c.Close()
}

func TestCueQueuesWhenInitialized(t *testing.T) {
	c := NewCue(nil)
	c.initialized = true
	c.OnPulse()

	if c.mixer.Len() != 1 {
		t.Errorf("Expected 1 queued heartbeat, got %d", c.mixer.Len())
	}
}
