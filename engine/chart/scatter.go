package chart

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/aclements/go-moremath/stats"
)

// parallelThreshold is the point count at which normalization is split across the worker pool.
const parallelThreshold = 1 << 16

var (
	poolOnce    sync.Once
	pool        worker.DynamicWorkerPool
	poolWorkers int
)

// axisMapping maps one input axis onto an output Range.
type axisMapping struct {
	inMin  float64
	inSpan float64
	out    Range
}

// newAxisMapping computes the input bounds of the non-NaN values. A zero-width input range
// leaves inSpan at 0, which collapses every value onto out.Min.
func newAxisMapping(values []float64, out Range) axisMapping {
	lo, hi := stats.Bounds(withoutNaN(values))
	return axisMapping{
		inMin:  lo,
		inSpan: hi - lo,
		out:    out,
	}
}

// apply maps v onto the output range. NaN stays NaN.
func (m axisMapping) apply(v float64) float32 {
	if math.IsNaN(v) {
		return float32(math.NaN())
	}
	t := 0.0
	if m.inSpan != 0 {
		t = (v - m.inMin) / m.inSpan
	}
	return float32(t*(m.out.Max-m.out.Min) + m.out.Min)
}

// withoutNaN returns values unchanged when it holds no NaN, otherwise a filtered copy.
// stats.Bounds seeds its fold with the first element, so a leading NaN would poison both bounds.
func withoutNaN(values []float64) []float64 {
	first := -1
	for i, v := range values {
		if math.IsNaN(v) {
			first = i
			break
		}
	}
	if first < 0 {
		return values
	}
	out := make([]float64, first, len(values)-1)
	copy(out, values[:first])
	for _, v := range values[first+1:] {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// NewScatter normalizes raw coordinate arrays into a ChartData ready for GPU upload.
// The vertex count is min(len(x), len(y)); extra values on the longer array are ignored.
// Each axis is mapped linearly from the [min, max] of its used values onto its output
// range (ClipRange unless overridden). A degenerate axis (min == max) maps every point
// to the output minimum. NaN values are left out of the bounds and map to NaN.
// Inputs are not modified.
//
// Parameters:
//   - x: x coordinates
//   - y: y coordinates
//   - options: functional options (color, size, viewport, output ranges)
//
// Returns:
//   - *ChartData: the normalized dataset
func NewScatter(x, y []float64, options ...ScatterOption) *ChartData {
	cfg := scatterConfig{
		color:          DefaultColor,
		size:           DefaultPointSize,
		viewportWidth:  DefaultViewportWidth,
		viewportHeight: DefaultViewportHeight,
		xRange:         ClipRange,
		yRange:         ClipRange,
	}
	for _, opt := range options {
		opt(&cfg)
	}

	n := min(len(x), len(y))
	data := &ChartData{
		vertices:       make([]Vertex, n),
		viewportWidth:  cfg.viewportWidth,
		viewportHeight: cfg.viewportHeight,
	}
	if n == 0 {
		return data
	}

	xs := newAxisMapping(x[:n], cfg.xRange)
	ys := newAxisMapping(y[:n], cfg.yRange)
	color := cfg.color.Array()

	fill := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			data.vertices[i] = Vertex{
				Position: [2]float32{xs.apply(x[i]), ys.apply(y[i])},
				Color:    color,
				Size:     cfg.size,
			}
		}
	}

	if n < parallelThreshold {
		fill(0, n)
	} else {
		fillParallel(n, fill)
	}
	return data
}

// normalizePool returns the shared pool used for large datasets, creating it on first use.
func normalizePool() (worker.DynamicWorkerPool, int) {
	poolOnce.Do(func() {
		poolWorkers = max(runtime.NumCPU()-1, 1)
		pool = worker.NewDynamicWorkerPool(poolWorkers, 256, 1*time.Second)
	})
	return pool, poolWorkers
}

// fillParallel splits [0, n) into contiguous chunks and runs fill on the worker pool.
// A WaitGroup is the barrier; every chunk writes a disjoint slice range.
func fillParallel(n int, fill func(lo, hi int)) {
	p, workers := normalizePool()
	chunks := min(workers*4, 256)
	chunkSize := (n + chunks - 1) / chunks

	var wg sync.WaitGroup
	taskID := 0
	for lo := 0; lo < n; lo += chunkSize {
		hi := min(lo+chunkSize, n)
		wg.Add(1)
		start, end := lo, hi
		id := taskID
		taskID++
		p.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				fill(start, end)
				return nil, nil
			},
		})
	}
	wg.Wait()
}
