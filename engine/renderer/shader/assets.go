package shader

import _ "embed"

const (
	// ScatterVertexKey is the key of the embedded scatter vertex shader.
	ScatterVertexKey = "scatter_vertex"

	// ScatterFragmentKey is the key of the embedded scatter fragment shader.
	ScatterFragmentKey = "scatter_fragment"
)

var (
	//go:embed assets/scatter_vertex.wgsl
	scatterVertexSource string

	//go:embed assets/scatter_fragment.wgsl
	scatterFragmentSource string
)

// ScatterVertex parses the embedded point vertex shader. Its VertexInput struct declares
// position (vec2<f32>), color (vec4<f32>) and size (f32) at locations 0, 1 and 2.
func ScatterVertex() Shader {
	return NewShader(ScatterVertexKey, ShaderTypeVertex, scatterVertexSource)
}

// ScatterFragment parses the embedded fragment shader, which writes the interpolated vertex color.
func ScatterFragment() Shader {
	return NewShader(ScatterFragmentKey, ShaderTypeFragment, scatterFragmentSource)
}
