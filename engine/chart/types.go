// Package chart holds the CPU-side data model for scatter plots: points, colors, the
// GPU-transferable Vertex record and the ChartData container built by the normalizer.
package chart

import (
	"strconv"
	"strings"
)

// Point2D is a single coordinate pair.
type Point2D struct {
	X, Y float32
}

// Color is an RGBA color with channels logically in [0, 1]. The range is not enforced.
type Color struct {
	R, G, B, A float32
}

// DefaultColor is the blue used when no point color is supplied.
var DefaultColor = Color{R: 0.0, G: 0.5, B: 1.0, A: 1.0}

// White is the opaque white used as the default clear color.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// ColorFromHex parses "RRGGBB" or "RRGGBBAA", with or without a leading '#'.
// A pair that is not valid hex becomes 0 for the color channels and opaque for alpha;
// a missing pair is treated the same way. Six digits always yield alpha 1.0.
//
// Parameters:
//   - hex: the hex color string (e.g. "#FF5733" or "FF000080")
//
// Returns:
//   - Color: the parsed color
func ColorFromHex(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")
	c := Color{
		R: hexChannel(hex, 0, 0),
		G: hexChannel(hex, 2, 0),
		B: hexChannel(hex, 4, 0),
		A: 1.0,
	}
	if len(hex) >= 8 {
		c.A = hexChannel(hex, 6, 255)
	}
	return c
}

// hexChannel parses the two hex digits at start and scales them to [0, 1].
func hexChannel(hex string, start int, fallback uint8) float32 {
	v := fallback
	if start+2 <= len(hex) {
		if parsed, err := strconv.ParseUint(hex[start:start+2], 16, 8); err == nil {
			v = uint8(parsed)
		}
	}
	return float32(v) / 255.0
}

// Array returns the color as a [4]float32 in RGBA order.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
