package renderer

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/helion-go/engine/chart"
	"github.com/Carmen-Shannon/helion-go/engine/gpu"
	"github.com/Carmen-Shannon/helion-go/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

type call struct {
	name string
	args []uint64
}

type fakePass struct {
	calls  []call
	buffer *wgpu.Buffer
}

func (p *fakePass) SetPipeline(*wgpu.RenderPipeline) {
	p.calls = append(p.calls, call{name: "SetPipeline"})
}

func (p *fakePass) SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset, size uint64) {
	p.buffer = buffer
	p.calls = append(p.calls, call{name: "SetVertexBuffer", args: []uint64{uint64(slot), offset, size}})
}

func (p *fakePass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.calls = append(p.calls, call{name: "Draw", args: []uint64{
		uint64(vertexCount), uint64(instanceCount), uint64(firstVertex), uint64(firstInstance),
	}})
}

// fakeBackend is a Backend that is never initialized.
type fakeBackend struct{}

func (fakeBackend) Device() (*wgpu.Device, error) { return nil, gpu.ErrNotInitialized }
func (fakeBackend) Queue() (*wgpu.Queue, error)   { return nil, gpu.ErrNotInitialized }
func (fakeBackend) Surface() (*wgpu.Surface, error) {
	return nil, gpu.ErrSurfaceNotConfigured
}
func (fakeBackend) Config() (wgpu.SurfaceConfiguration, error) {
	return wgpu.SurfaceConfiguration{}, gpu.ErrSurfaceNotConfigured
}

var (
	_ Backend = fakeBackend{}
	_ Backend = &gpu.Backend{}
)

func TestRenderToPassDraws(t *testing.T) {
	buf := &wgpu.Buffer{}
	r := &ScatterRenderer{
		pipeline:    pipeline.NewPipeline(ScatterPipelineKey),
		buffer:      buf,
		vertexCount: 1_000_000,
	}
	pass := &fakePass{}
	r.RenderToPass(pass)

	want := []call{
		{name: "SetPipeline"},
		{name: "SetVertexBuffer", args: []uint64{0, 0, wgpu.WholeSize}},
		{name: "Draw", args: []uint64{1_000_000, 1, 0, 0}},
	}
	if len(pass.calls) != len(want) {
		t.Fatalf("RenderToPass recorded %d calls, want %d: %+v", len(pass.calls), len(want), pass.calls)
	}
	for i := range want {
		if pass.calls[i].name != want[i].name {
			t.Errorf("call %d = %s, want %s", i, pass.calls[i].name, want[i].name)
			continue
		}
		for j := range want[i].args {
			if pass.calls[i].args[j] != want[i].args[j] {
				t.Errorf("%s arg %d = %d, want %d", want[i].name, j, pass.calls[i].args[j], want[i].args[j])
			}
		}
	}
	if pass.buffer != buf {
		t.Errorf("SetVertexBuffer bound %p, want the renderer's buffer %p", pass.buffer, buf)
	}
}

func TestRenderToPassWithoutBuffer(t *testing.T) {
	r := &ScatterRenderer{pipeline: pipeline.NewPipeline(ScatterPipelineKey)}
	pass := &fakePass{}
	r.RenderToPass(pass)
	if len(pass.calls) != 0 {
		t.Errorf("RenderToPass without buffer recorded %+v, want nothing", pass.calls)
	}
	if r.HasBuffer() {
		t.Errorf("HasBuffer() = true, want false")
	}
}

func TestUpdateVerticesEmptyClears(t *testing.T) {
	tests := []struct {
		name string
		data *chart.ChartData
	}{
		{"nil data", nil},
		{"empty data", chart.NewChartData(800, 600)},
		{"empty scatter", chart.NewScatter(nil, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &ScatterRenderer{vertexCount: 42}
			if err := r.UpdateVertices(nil, nil, tt.data); err != nil {
				t.Fatalf("UpdateVertices() error = %v", err)
			}
			if r.VertexCount() != 0 {
				t.Errorf("VertexCount() = %d, want 0", r.VertexCount())
			}
			if r.HasBuffer() {
				t.Errorf("HasBuffer() = true, want false")
			}
		})
	}
}

func TestBackendErrorsPropagate(t *testing.T) {
	data := chart.NewScatter([]float64{0, 1}, []float64{0, 1})

	if _, err := NewBackendScatterRenderer(fakeBackend{}); !errors.Is(err, ErrBackendNotReady) || !errors.Is(err, gpu.ErrNotInitialized) {
		t.Errorf("NewBackendScatterRenderer() error = %v, want %v wrapping %v", err, ErrBackendNotReady, gpu.ErrNotInitialized)
	}

	r := &ScatterRenderer{}
	if err := r.UpdateData(fakeBackend{}, data); !errors.Is(err, gpu.ErrNotInitialized) {
		t.Errorf("UpdateData() error = %v, want %v", err, gpu.ErrNotInitialized)
	}
	if err := r.RenderWithBackend(fakeBackend{}, DefaultRenderOptions()); !errors.Is(err, ErrBackendNotReady) {
		t.Errorf("RenderWithBackend() error = %v, want %v", err, ErrBackendNotReady)
	}
	if r.HasBuffer() || r.VertexCount() != 0 {
		t.Errorf("renderer changed after failed backend calls: HasBuffer=%v VertexCount=%d", r.HasBuffer(), r.VertexCount())
	}

	uninitialized := gpu.NewBackend()
	if _, err := NewBackendScatterRenderer(uninitialized); !errors.Is(err, gpu.ErrNotInitialized) {
		t.Errorf("NewBackendScatterRenderer(uninitialized backend) error = %v, want %v", err, gpu.ErrNotInitialized)
	}
}

func TestDefaultRenderOptions(t *testing.T) {
	opts := DefaultRenderOptions()
	if opts.ClearColor != chart.White {
		t.Errorf("ClearColor = %+v, want white", opts.ClearColor)
	}
	if opts.PointSize != 2 {
		t.Errorf("PointSize = %v, want 2", opts.PointSize)
	}
}

func TestClearValue(t *testing.T) {
	got := clearValue(chart.Color{R: 0.25, G: 0.5, B: 0.75, A: 1})
	want := wgpu.Color{R: 0.25, G: 0.5, B: 0.75, A: 1}
	if got != want {
		t.Errorf("clearValue() = %+v, want %+v", got, want)
	}
}

func TestRenderFrameNilSurface(t *testing.T) {
	err := RenderFrame(nil, nil, nil, chart.White, &ScatterRenderer{})
	if !errors.Is(err, gpu.ErrSurfaceNotConfigured) {
		t.Errorf("RenderFrame(nil surface) error = %v, want %v", err, gpu.ErrSurfaceNotConfigured)
	}
}

func TestScatterPipeline(t *testing.T) {
	p := scatterPipeline()

	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got := p.PipelineKey(); got != ScatterPipelineKey {
		t.Errorf("PipelineKey() = %q, want %q", got, ScatterPipelineKey)
	}
	if got := p.Topology(); got != wgpu.PrimitiveTopologyPointList {
		t.Errorf("Topology() = %v, want %v", got, wgpu.PrimitiveTopologyPointList)
	}
	if got := p.CullMode(); got != wgpu.CullModeNone {
		t.Errorf("CullMode() = %v, want %v", got, wgpu.CullModeNone)
	}
	if got := p.FrontFace(); got != wgpu.FrontFaceCCW {
		t.Errorf("FrontFace() = %v, want %v", got, wgpu.FrontFaceCCW)
	}
	if got := p.WriteMask(); got != wgpu.ColorWriteMaskAll {
		t.Errorf("WriteMask() = %v, want %v", got, wgpu.ColorWriteMaskAll)
	}
	if got := p.SampleCount(); got != 1 {
		t.Errorf("SampleCount() = %d, want 1", got)
	}
	if !p.BlendEnabled() || *p.BlendState() != *pipeline.AlphaBlending() {
		t.Errorf("blend = %v %+v, want alpha blending", p.BlendEnabled(), p.BlendState())
	}

	buffers := p.VertexBuffers()
	if len(buffers) != 1 {
		t.Fatalf("VertexBuffers() has %d layouts, want 1", len(buffers))
	}
	if buffers[0].ArrayStride != chart.VertexSize {
		t.Errorf("ArrayStride = %d, want %d", buffers[0].ArrayStride, chart.VertexSize)
	}
}
