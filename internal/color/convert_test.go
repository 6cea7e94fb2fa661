package color

import (
	"math"
	"testing"
)

func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
		{"below range", -0.5, 0.0},
		{"above range", 1.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToLinearKeepsAlpha(t *testing.T) {
	c := ToLinear(F64{R: 0.5, G: 0.5, B: 0.5, A: 0.25})
	if c.A != 0.25 {
		t.Errorf("alpha changed: got %v, want 0.25", c.A)
	}
	if c.R >= 0.5 {
		t.Errorf("expected mid gray to darken in linear space, got %v", c.R)
	}
	if c.R != c.G || c.G != c.B {
		t.Errorf("gray lost its neutrality: %+v", c)
	}
}

func TestToLinearClampsAlpha(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"negative", -1, 0},
		{"above one", 2, 1},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToLinear(F64{A: tt.in}).A; got != tt.want {
				t.Errorf("alpha %v: got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
