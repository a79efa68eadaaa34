// Package pipeline describes render pipeline configuration independently of a GPU device,
// so it can be assembled and validated before any GPU object exists.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/helion-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrMissingShader is returned when a pipeline lacks its vertex or fragment shader.
var ErrMissingShader = errors.New("pipeline: both vertex and fragment shaders must be set")

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	// pipelineKey is the unique identifier for this pipeline, used as the GPU object label
	pipelineKey string

	vertexShader, fragmentShader shader.Shader

	// renderPipeline is nil until SetRenderPipeline is called with the created GPU object
	renderPipeline *wgpu.RenderPipeline

	vertexBuffers []wgpu.VertexBufferLayout
	blendEnabled  bool
	cullMode      wgpu.CullMode
	topology      wgpu.PrimitiveTopology
	frontFace     wgpu.FrontFace
	writeMask     wgpu.ColorWriteMask
	blendState    *wgpu.BlendState
	sampleCount   uint32
}

// Pipeline defines the interface for a render pipeline configuration: the vertex and fragment
// shaders, the vertex buffer layouts they read, and the fixed-function state. Pipelines carry no
// depth or stencil state; they target a single color attachment.
type Pipeline interface {
	// PipelineKey returns the unique key associated with this pipeline.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	PipelineKey() string

	// Shader retrieves the shader of the given stage, or nil if not set.
	//
	// Parameters:
	//   - shaderType: the stage of shader to retrieve
	//
	// Returns:
	//   - shader.Shader: the shader, or nil
	Shader(shaderType shader.ShaderType) shader.Shader

	// VertexBuffers returns the vertex buffer layouts bound at slots 0..n-1.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: the layouts in slot order
	VertexBuffers() []wgpu.VertexBufferLayout

	// BlendEnabled returns whether blending is enabled for this pipeline.
	//
	// Returns:
	//   - bool: true if blending is enabled, false otherwise
	BlendEnabled() bool

	// BlendState returns the blend state applied when blending is enabled.
	//
	// Returns:
	//   - *wgpu.BlendState: the blend state for this pipeline
	BlendState() *wgpu.BlendState

	// CullMode returns the cull mode configured for this pipeline.
	//
	// Returns:
	//   - wgpu.CullMode: the cull mode for this pipeline
	CullMode() wgpu.CullMode

	// Topology returns the primitive topology configured for this pipeline.
	//
	// Returns:
	//   - wgpu.PrimitiveTopology: the primitive topology for this pipeline
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the front face winding order configured for this pipeline.
	//
	// Returns:
	//   - wgpu.FrontFace: the front face winding order for this pipeline
	FrontFace() wgpu.FrontFace

	// WriteMask returns the color write mask configured for this pipeline.
	//
	// Returns:
	//   - wgpu.ColorWriteMask: the color write mask for this pipeline
	WriteMask() wgpu.ColorWriteMask

	// SampleCount returns the multisample count of the color target.
	//
	// Returns:
	//   - uint32: the sample count, 1 when multisampling is off
	SampleCount() uint32

	// Validate checks that both shaders are set and that every vertex buffer layout feeds the
	// vertex shader's inputs.
	//
	// Returns:
	//   - error: ErrMissingShader, a shader.ErrVertexLayoutMismatch-wrapped error, or nil
	Validate() error

	// RenderPipelineDescriptor assembles the descriptor passed to Device.CreateRenderPipeline.
	//
	// Parameters:
	//   - layout: the pipeline layout
	//   - vs: the compiled vertex shader module
	//   - fs: the compiled fragment shader module
	//   - format: the color target format
	//
	// Returns:
	//   - *wgpu.RenderPipelineDescriptor: the descriptor
	RenderPipelineDescriptor(layout *wgpu.PipelineLayout, vs, fs *wgpu.ShaderModule, format wgpu.TextureFormat) *wgpu.RenderPipelineDescriptor

	// RenderPipeline returns the created GPU pipeline, or nil before SetRenderPipeline.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the GPU pipeline
	RenderPipeline() *wgpu.RenderPipeline

	// SetRenderPipeline stores the GPU pipeline created from this configuration.
	//
	// Parameters:
	//   - rp: the WebGPU render pipeline to set
	SetRenderPipeline(rp *wgpu.RenderPipeline)

	// Release frees the GPU pipeline, if any.
	Release()
}

var _ Pipeline = &pipeline{}

// NewPipeline is the entry point to create a new Pipeline. The defaults suit point rendering:
// point-list topology, alpha blending, no culling, full write mask and a sample count of 1.
//
// Parameters:
//   - pipelineKey: the unique key for this pipeline
//   - opts: a variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline instance with the specified configuration
func NewPipeline(pipelineKey string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:  pipelineKey,
		blendEnabled: true,
		cullMode:     wgpu.CullModeNone,
		topology:     wgpu.PrimitiveTopologyPointList,
		frontFace:    wgpu.FrontFaceCCW,
		writeMask:    wgpu.ColorWriteMaskAll,
		sampleCount:  1,
		blendState:   AlphaBlending(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AlphaBlending returns straight source-over alpha blending.
func AlphaBlending() *wgpu.BlendState {
	return &wgpu.BlendState{
		Color: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorSrcAlpha,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
		Alpha: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
	}
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Shader(shaderType shader.ShaderType) shader.Shader {
	switch shaderType {
	case shader.ShaderTypeVertex:
		return p.vertexShader
	case shader.ShaderTypeFragment:
		return p.fragmentShader
	}
	return nil
}

func (p *pipeline) VertexBuffers() []wgpu.VertexBufferLayout {
	return p.vertexBuffers
}

func (p *pipeline) BlendEnabled() bool {
	return p.blendEnabled
}

func (p *pipeline) BlendState() *wgpu.BlendState {
	return p.blendState
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipeline) WriteMask() wgpu.ColorWriteMask {
	return p.writeMask
}

func (p *pipeline) SampleCount() uint32 {
	return p.sampleCount
}

func (p *pipeline) Validate() error {
	if p.vertexShader == nil || p.fragmentShader == nil {
		return fmt.Errorf("%w: %s", ErrMissingShader, p.pipelineKey)
	}
	for slot, layout := range p.vertexBuffers {
		if err := shader.VerifyVertexLayout(p.vertexShader, layout); err != nil {
			return fmt.Errorf("pipeline %s: vertex buffer %d: %w", p.pipelineKey, slot, err)
		}
	}
	return nil
}

func (p *pipeline) RenderPipelineDescriptor(layout *wgpu.PipelineLayout, vs, fs *wgpu.ShaderModule, format wgpu.TextureFormat) *wgpu.RenderPipelineDescriptor {
	target := wgpu.ColorTargetState{
		Format:    format,
		WriteMask: p.writeMask,
	}
	if p.blendEnabled {
		target.Blend = p.blendState
	}

	return &wgpu.RenderPipelineDescriptor{
		Label:  p.pipelineKey + " Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: p.vertexShader.EntryPoint(),
			Buffers:    p.vertexBuffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: p.fragmentShader.EntryPoint(),
			Targets:    []wgpu.ColorTargetState{target},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.topology,
			FrontFace: p.frontFace,
			CullMode:  p.cullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: p.sampleCount,
			Mask:  0xFFFFFFFF,
		},
	}
}

func (p *pipeline) RenderPipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.renderPipeline = rp
}

func (p *pipeline) Release() {
	if p.renderPipeline != nil {
		p.renderPipeline.Release()
		p.renderPipeline = nil
	}
}
