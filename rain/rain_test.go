package rain

import (
	"testing"

	"github.com/lixenwraith/ascii-portrait/vmath"
)

func TestNewPositions(t *testing.T) {
	o := New(10, 20, vmath.NewFastRand(42))
	if o.Columns() != 10 {
		t.Fatalf("Expected 10 columns, got %d", o.Columns())
	}
	for i := 0; i < 10; i++ {
		p := o.Position(i)
		if p > 0 || p < -20 {
			t.Errorf("column %d: initial position %f outside [-20, 0]", i, p)
		}
	}
}

func TestStepAdvances(t *testing.T) {
	o := New(1, 100, vmath.NewScriptedRand(0.5))
	before := o.Position(0)
	o.Step()
	want := before + 0.3 + 0.5*0.2
	if diff := o.Position(0) - want; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("Expected position %f after step, got %f", want, o.Position(0))
	}
}

func TestWrapFromPastLastRow(t *testing.T) {
	tests := []struct {
		name string
		r    float64
		want float64
	}{
		{"low draw", 0, -30},
		{"mid draw", 0.5, -20},
		{"high draw", 0.999, -10.02},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := 12
			o := New(1, rows, vmath.NewScriptedRand(tt.r))
			o.positions[0] = float64(rows + 1)
			o.Step()
			p := o.Position(0)
			if p < -30 || p >= -10 {
				t.Fatalf("Expected wrapped position in [-30, -10), got %f", p)
			}
			if diff := p - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Expected %f, got %f", tt.want, p)
			}
		})
	}
}

func TestPositionsStayBounded(t *testing.T) {
	rows := 30
	o := New(16, rows, vmath.NewFastRand(7))
	for frame := 0; frame < 10000; frame++ {
		o.Step()
		for i := 0; i < o.Columns(); i++ {
			p := o.Position(i)
			if p < -30 || p > float64(rows) {
				t.Fatalf("frame %d column %d: position %f escaped [-30, %d]", frame, i, p, rows)
			}
		}
	}
}

func TestContribution(t *testing.T) {
	o := New(3, 20, vmath.NewScriptedRand(0))
	o.positions[1] = 10

	tests := []struct {
		x, y int
		want float64
	}{
		{1, 10, 30},
		{1, 6, 30},
		{1, 14, 30},
		{1, 5, 0},
		{1, 15, 0},
		{0, 10, 0},
		{-1, 10, 0},
		{3, 10, 0},
	}
	for _, tt := range tests {
		if got := o.Contribution(tt.x, tt.y); got != tt.want {
			t.Errorf("Contribution(%d, %d) = %f, want %f", tt.x, tt.y, got, tt.want)
		}
	}
}
