package chart

// Range is an output interval for one axis. Min greater than Max flips the axis.
type Range struct {
	Min, Max float64
}

// ClipRange is the GPU clip-space interval used when no output range is given.
var ClipRange = Range{Min: -1, Max: 1}

const (
	// DefaultPointSize is the point size in pixels used when none is given.
	DefaultPointSize float32 = 2.0

	// DefaultViewportWidth is the viewport width in pixels used when none is given.
	DefaultViewportWidth float32 = 800

	// DefaultViewportHeight is the viewport height in pixels used when none is given.
	DefaultViewportHeight float32 = 600
)

// scatterConfig collects the options applied by NewScatter.
type scatterConfig struct {
	color          Color
	size           float32
	viewportWidth  float32
	viewportHeight float32
	xRange         Range
	yRange         Range
}

// ScatterOption is a functional option applied to NewScatter.
type ScatterOption func(*scatterConfig)

// WithColor sets a uniform color for every point.
//
// Parameters:
//   - c: the point color
//
// Returns:
//   - ScatterOption: option function to apply
func WithColor(c Color) ScatterOption {
	return func(cfg *scatterConfig) {
		cfg.color = c
	}
}

// WithHexColor sets a uniform color for every point from a hex string.
// See ColorFromHex for the accepted formats.
//
// Parameters:
//   - hex: the hex color string
//
// Returns:
//   - ScatterOption: option function to apply
func WithHexColor(hex string) ScatterOption {
	return func(cfg *scatterConfig) {
		cfg.color = ColorFromHex(hex)
	}
}

// WithSize sets a uniform point size in pixels.
//
// Parameters:
//   - size: the point size
//
// Returns:
//   - ScatterOption: option function to apply
func WithSize(size float32) ScatterOption {
	return func(cfg *scatterConfig) {
		cfg.size = size
	}
}

// WithViewport sets the viewport size the chart is built for.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - ScatterOption: option function to apply
func WithViewport(width, height float32) ScatterOption {
	return func(cfg *scatterConfig) {
		cfg.viewportWidth = width
		cfg.viewportHeight = height
	}
}

// WithXRange sets the output range for x.
//
// Parameters:
//   - lo: value the smallest x maps to
//   - hi: value the largest x maps to
//
// Returns:
//   - ScatterOption: option function to apply
func WithXRange(lo, hi float64) ScatterOption {
	return func(cfg *scatterConfig) {
		cfg.xRange = Range{Min: lo, Max: hi}
	}
}

// WithYRange sets the output range for y.
//
// Parameters:
//   - lo: value the smallest y maps to
//   - hi: value the largest y maps to
//
// Returns:
//   - ScatterOption: option function to apply
func WithYRange(lo, hi float64) ScatterOption {
	return func(cfg *scatterConfig) {
		cfg.yRange = Range{Min: lo, Max: hi}
	}
}
