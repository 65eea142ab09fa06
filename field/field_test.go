package field

import (
	"math"
	"testing"
)

func TestEvaluatePure(t *testing.T) {
	times := []float64{0, 0.016, 1.234, 17.5, 1000.001}
	for _, tm := range times {
		for y := 0; y < 6; y++ {
			for x := 0; x < 9; x++ {
				a := Evaluate(x, y, 9, 6, tm)
				b := Evaluate(x, y, 9, 6, tm)
				if a != b {
					t.Fatalf("Evaluate(%d, %d, t=%f) not pure: %+v vs %+v", x, y, tm, a, b)
				}
				if math.Float64bits(a.Brightness) != math.Float64bits(b.Brightness) {
					t.Fatalf("Brightness bits differ at (%d, %d)", x, y)
				}
			}
		}
	}
}

func TestEvaluateSampleClamped(t *testing.T) {
	grids := [][2]int{{1, 1}, {2, 1}, {4, 4}, {80, 60}, {3, 50}}
	for _, g := range grids {
		cols, rows := g[0], g[1]
		for step := 0; step < 2000; step++ {
			tm := float64(step) * 0.37
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					f := Evaluate(x, y, cols, rows, tm)
					if f.SampleX < 0 || f.SampleX > cols-1 || f.SampleY < 0 || f.SampleY > rows-1 {
						t.Fatalf("grid %dx%d t=%f cell (%d,%d): sample (%d,%d) out of bounds",
							cols, rows, tm, x, y, f.SampleX, f.SampleY)
					}
				}
			}
		}
	}
}

func TestEvaluateAtTimeZero(t *testing.T) {
	// No breathing and no tilt at t=0: every cell samples itself
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			f := Evaluate(x, y, 4, 4, 0)
			if f.SampleX != x || f.SampleY != y {
				t.Errorf("cell (%d,%d) sampled (%d,%d) at t=0", x, y, f.SampleX, f.SampleY)
			}
			if f.DX != 0 || f.DY != 0 {
				t.Errorf("cell (%d,%d) has offset (%f,%f) at t=0", x, y, f.DX, f.DY)
			}
		}
	}

	// Center cell: zero ripple distance, heartbeat closed, only waves remain
	f := Evaluate(2, 2, 4, 4, 0)
	want := math.Sin(0.2)*8 + math.Sin(0.16)*6 + math.Sin(0.2)*4
	if math.Abs(f.Brightness-want) > 1e-12 {
		t.Errorf("Center brightness at t=0: got %f, want %f", f.Brightness, want)
	}
}

func TestBreathingOffset(t *testing.T) {
	// At t = pi/(2*0.8) breathing X peaks at 1.5 cells
	tm := math.Pi / 1.6
	f := Evaluate(40, 30, 80, 60, tm)
	wantDX := math.Sin(tm*0.8) * 1.5
	wantDY := math.Sin(tm*0.6) * 1.0
	// Center cell has no rotation lever arm
	if math.Abs(f.DX-wantDX) > 1e-9 {
		t.Errorf("Expected DX %f at center, got %f", wantDX, f.DX)
	}
	if math.Abs(f.DY-wantDY) > 1e-9 {
		t.Errorf("Expected DY %f at center, got %f", wantDY, f.DY)
	}
	if f.SampleY != 31 {
		t.Errorf("Expected sample row 31, got %d", f.SampleY)
	}
}

func TestHeartbeat(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"closed at zero", 0, 0},
		{"open at peak", math.Pi / 6, 20},
		{"closed at trough", math.Pi / 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Heartbeat(tt.t); got != tt.want {
				t.Errorf("Heartbeat(%f) = %f, want %f", tt.t, got, tt.want)
			}
		})
	}
}

func TestHeartbeatFalloff(t *testing.T) {
	// Heartbeat reaches the center cell, and not a corner beyond rows*0.3
	peak := math.Pi / 6
	center := Evaluate(10, 10, 20, 20, peak)
	corner := Evaluate(0, 0, 20, 20, peak)

	centerNoBeat := center.Brightness - Waves(10, 10, peak) -
		math.Sin(peak*0.8)*15 - math.Sin(0-peak*4)*10
	if math.Abs(centerNoBeat-20) > 1e-9 {
		t.Errorf("Expected full pulse of 20 at center, got %f", centerNoBeat)
	}

	dist := math.Hypot(-10, -10)
	cornerRest := corner.Brightness - Waves(0, 0, peak) -
		math.Sin(peak*0.8)*15 - math.Sin(dist*0.3-peak*4)*10
	if math.Abs(cornerRest) > 1e-9 {
		t.Errorf("Expected no pulse at corner, got %f", cornerRest)
	}
}

func TestEyeGlow(t *testing.T) {
	tests := []struct {
		name    string
		sampled float64
		t       float64
		want    float64
	}{
		{"below threshold untouched", 150, 1, 150},
		{"at threshold untouched", 180, 1, 180},
		{"above threshold trough", 200, -math.Pi / 4, 200},
		{"above threshold peak", 200, math.Pi / 4, 230},
		{"capped", 250, math.Pi / 4, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EyeGlow(tt.sampled, tt.t)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EyeGlow(%f, %f) = %f, want %f", tt.sampled, tt.t, got, tt.want)
			}
		})
	}
}
