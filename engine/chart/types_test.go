package chart

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Color
	}{
		{"opaque red", "#FF0000", Color{1, 0, 0, 1}},
		{"opaque blue", "#0000FF", Color{0, 0, 1, 1}},
		{"no hash", "00FF00", Color{0, 1, 0, 1}},
		{"half alpha", "#FF000080", Color{1, 0, 0, 128.0 / 255.0}},
		{"lowercase", "#ff5733", Color{1, 0x57 / 255.0, 0x33 / 255.0, 1}},
		{"invalid red digits", "#ZZ00FF", Color{0, 0, 1, 1}},
		{"invalid every channel", "#GGHHII", Color{0, 0, 0, 1}},
		{"invalid alpha stays opaque", "#00FF00QQ", Color{0, 1, 0, 1}},
		{"too short", "#FF", Color{1, 0, 0, 1}},
		{"empty", "", Color{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorFromHex(tt.hex)
			if !approx(got.R, tt.want.R) || !approx(got.G, tt.want.G) || !approx(got.B, tt.want.B) || !approx(got.A, tt.want.A) {
				t.Errorf("ColorFromHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColorFromHexAlphaByte(t *testing.T) {
	got := ColorFromHex("#FF000080")
	if got.R != 1.0 {
		t.Errorf("R = %v, want 1.0", got.R)
	}
	if !approx(got.A, 0.5019608) {
		t.Errorf("A = %v, want ~0.5019608", got.A)
	}
}

func TestDefaultColor(t *testing.T) {
	if DefaultColor != (Color{R: 0, G: 0.5, B: 1, A: 1}) {
		t.Errorf("DefaultColor = %+v, want {0 0.5 1 1}", DefaultColor)
	}
}
