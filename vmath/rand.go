package vmath

// Source yields uniform floats in [0, 1)
// Every random decision in the render pipeline goes through a Source so frames can be replayed
type Source interface {
	Float64() float64
}

// FastRand is a xorshift64 (13, 17, 5) generator
// Not safe for concurrent use; the frame loop owns it
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator, zero is remapped since xorshift sticks at 0
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 uses the top 53 bits for a uniform value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// ScriptedRand replays a fixed sequence of values, cycling when exhausted
// Test double for Source
type ScriptedRand struct {
	values []float64
	pos    int
	calls  int
}

// NewScriptedRand creates a source returning values in order
// An empty script always returns 0
func NewScriptedRand(values ...float64) *ScriptedRand {
	return &ScriptedRand{values: values}
}

func (s *ScriptedRand) Float64() float64 {
	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return v
}

// Calls returns how many values have been drawn
func (s *ScriptedRand) Calls() int {
	return s.calls
}

// ConstRand always returns the same value
type ConstRand float64

func (c ConstRand) Float64() float64 { return float64(c) }
