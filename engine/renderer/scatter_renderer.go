package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/helion-go/common"
	"github.com/Carmen-Shannon/helion-go/engine/chart"
	"github.com/Carmen-Shannon/helion-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/helion-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// ScatterPipelineKey labels the scatter render pipeline and its GPU objects.
const ScatterPipelineKey = "Scatter"

// ScatterRenderer draws ChartData as a point list. The pipeline is created once; the vertex
// buffer is replaced wholesale on every update and released when replaced or on Release.
type ScatterRenderer struct {
	pipeline    pipeline.Pipeline
	buffer      *wgpu.Buffer
	vertexCount uint32
}

var (
	_ WindowRenderer  = &ScatterRenderer{}
	_ BackendRenderer = &ScatterRenderer{}
)

// NewScatterRenderer creates a ScatterRenderer for a host that owns its device and queue and
// uploads data. It panics if the pipeline or buffer cannot be created.
//
// Parameters:
//   - device: the device to create GPU objects on
//   - queue: the queue to upload through
//   - format: the color target format, matching the surface configuration
//   - data: the initial chart data, may be empty
//
// Returns:
//   - *ScatterRenderer: the renderer
func NewScatterRenderer(device *wgpu.Device, queue *wgpu.Queue, format wgpu.TextureFormat, data *chart.ChartData) *ScatterRenderer {
	p, err := createRenderPipeline(device, format)
	if err != nil {
		panic(err)
	}
	r := &ScatterRenderer{pipeline: p}
	if err := r.UpdateVertices(device, queue, data); err != nil {
		panic(err)
	}
	return r
}

// NewBackendScatterRenderer creates a ScatterRenderer whose pipeline targets the backend's
// configured surface format. No data is uploaded; call UpdateData.
//
// Parameters:
//   - backend: a backend with a device and a configured surface
//
// Returns:
//   - *ScatterRenderer: the renderer
//   - error: ErrBackendNotReady wrapping the backend's error, or a pipeline creation error
func NewBackendScatterRenderer(backend Backend) (*ScatterRenderer, error) {
	device, err := backend.Device()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendNotReady, err)
	}
	config, err := backend.Config()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendNotReady, err)
	}
	p, err := createRenderPipeline(device, config.Format)
	if err != nil {
		return nil, err
	}
	return &ScatterRenderer{pipeline: p}, nil
}

// scatterPipeline describes the point pipeline: one 40-byte vertex buffer, one point per
// vertex, alpha blending and a single-sampled color target with every channel written.
func scatterPipeline() pipeline.Pipeline {
	return pipeline.NewPipeline(ScatterPipelineKey,
		pipeline.WithVertexShader(shader.ScatterVertex()),
		pipeline.WithFragmentShader(shader.ScatterFragment()),
		pipeline.WithVertexBuffer(chart.VertexBufferLayout()),
		pipeline.WithTopology(wgpu.PrimitiveTopologyPointList),
		pipeline.WithCullMode(wgpu.CullModeNone),
		pipeline.WithFrontFace(wgpu.FrontFaceCCW),
		pipeline.WithWriteMask(wgpu.ColorWriteMaskAll),
		pipeline.WithBlendEnabled(true),
		pipeline.WithBlendState(pipeline.AlphaBlending()),
		pipeline.WithSampleCount(1),
	)
}

// createRenderPipeline compiles the embedded scatter shaders and creates the point-list pipeline.
// The vertex buffer layout is checked against the vertex shader's inputs first.
func createRenderPipeline(device *wgpu.Device, format wgpu.TextureFormat) (pipeline.Pipeline, error) {
	p := scatterPipeline()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	vertexShader := p.Shader(shader.ShaderTypeVertex)
	fragmentShader := p.Shader(shader.ShaderTypeFragment)

	vs, err := device.CreateShaderModule(vertexShader.Module())
	if err != nil {
		return nil, fmt.Errorf("renderer: create vertex shader module: %w", err)
	}
	defer vs.Release()

	fs, err := device.CreateShaderModule(fragmentShader.Module())
	if err != nil {
		return nil, fmt.Errorf("renderer: create fragment shader module: %w", err)
	}
	defer fs.Release()

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: ScatterPipelineKey + " Pipeline Layout",
	})
	if err != nil {
		return nil, fmt.Errorf("renderer: create pipeline layout: %w", err)
	}
	defer layout.Release()

	created, err := device.CreateRenderPipeline(p.RenderPipelineDescriptor(layout, vs, fs, format))
	if err != nil {
		return nil, fmt.Errorf("renderer: create render pipeline: %w", err)
	}
	p.SetRenderPipeline(created)
	common.Logger().Debug("renderer: scatter pipeline created", "format", fmt.Sprint(format))

	return p, nil
}

// RenderToPass sets the pipeline and vertex buffer on pass and draws every point.
// Nothing is recorded when there is no buffer.
func (r *ScatterRenderer) RenderToPass(pass PassEncoder) {
	if r.buffer == nil || r.vertexCount == 0 {
		return
	}
	pass.SetPipeline(r.pipeline.RenderPipeline())
	pass.SetVertexBuffer(0, r.buffer, 0, wgpu.WholeSize)
	pass.Draw(r.vertexCount, 1, 0, 0)
}

func (r *ScatterRenderer) UpdateVertices(device *wgpu.Device, queue *wgpu.Queue, data *chart.ChartData) error {
	if data == nil || data.Len() == 0 {
		r.releaseBuffer()
		return nil
	}

	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: ScatterPipelineKey + " Vertex Buffer",
		Size:  data.ByteSize(),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("renderer: create vertex buffer of %d bytes: %w", data.ByteSize(), err)
	}
	queue.WriteBuffer(buf, 0, data.Bytes())

	r.releaseBuffer()
	r.buffer = buf
	r.vertexCount = uint32(data.Len())
	common.Logger().Debug("renderer: vertex buffer uploaded", "points", data.Len(), "bytes", data.ByteSize())
	return nil
}

func (r *ScatterRenderer) UpdateData(backend Backend, data *chart.ChartData) error {
	device, err := backend.Device()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendNotReady, err)
	}
	queue, err := backend.Queue()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendNotReady, err)
	}
	return r.UpdateVertices(device, queue, data)
}

func (r *ScatterRenderer) RenderWithBackend(backend Backend, opts RenderOptions) error {
	device, err := backend.Device()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendNotReady, err)
	}
	queue, err := backend.Queue()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendNotReady, err)
	}
	surface, err := backend.Surface()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendNotReady, err)
	}
	return RenderFrame(device, queue, surface, opts.ClearColor, r)
}

// VertexCount returns the number of points drawn per frame.
func (r *ScatterRenderer) VertexCount() uint32 {
	return r.vertexCount
}

// HasBuffer reports whether a vertex buffer is allocated.
func (r *ScatterRenderer) HasBuffer() bool {
	return r.buffer != nil
}

// Release frees the vertex buffer and the pipeline.
func (r *ScatterRenderer) Release() {
	r.releaseBuffer()
	if r.pipeline != nil {
		r.pipeline.Release()
	}
}

func (r *ScatterRenderer) releaseBuffer() {
	if r.buffer != nil {
		r.buffer.Release()
		r.buffer = nil
	}
	r.vertexCount = 0
}
