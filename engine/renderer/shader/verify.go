package shader

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

var (
	// ErrNoVertexInput is returned when a vertex shader declares no vertex input struct.
	ErrNoVertexInput = errors.New("shader: no vertex input struct")

	// ErrVertexLayoutMismatch is returned when a CPU vertex layout disagrees with the shader's inputs.
	ErrVertexLayoutMismatch = errors.New("shader: vertex layout mismatch")
)

// VerifyVertexLayout checks that want, the layout of the CPU-side vertex buffer, feeds every
// input of the shader's first vertex input struct: the same locations, the same formats and
// the same packed offsets. want.ArrayStride may exceed the packed size to allow trailing padding.
//
// Parameters:
//   - s: a vertex Shader
//   - want: the vertex buffer layout the pipeline will be created with
//
// Returns:
//   - error: ErrNoVertexInput, an ErrVertexLayoutMismatch-wrapped description, or nil
func VerifyVertexLayout(s Shader, want wgpu.VertexBufferLayout) error {
	layouts := s.VertexLayouts()
	if len(layouts) == 0 {
		return fmt.Errorf("%w in %s", ErrNoVertexInput, s.Key())
	}
	got := layouts[0]

	if len(want.Attributes) != len(got.Attributes) {
		return fmt.Errorf("%w: %s declares %d attributes, buffer layout has %d",
			ErrVertexLayoutMismatch, s.Key(), len(got.Attributes), len(want.Attributes))
	}
	if want.ArrayStride < got.ArrayStride {
		return fmt.Errorf("%w: stride %d is smaller than the %d bytes %s reads",
			ErrVertexLayoutMismatch, want.ArrayStride, got.ArrayStride, s.Key())
	}

	byLocation := make(map[uint32]wgpu.VertexAttribute, len(want.Attributes))
	for _, a := range want.Attributes {
		byLocation[a.ShaderLocation] = a
	}
	for _, g := range got.Attributes {
		w, ok := byLocation[g.ShaderLocation]
		if !ok {
			return fmt.Errorf("%w: no attribute for @location(%d)", ErrVertexLayoutMismatch, g.ShaderLocation)
		}
		if w.Format != g.Format {
			return fmt.Errorf("%w: @location(%d) format %v, shader expects %v",
				ErrVertexLayoutMismatch, g.ShaderLocation, w.Format, g.Format)
		}
		if w.Offset != g.Offset {
			return fmt.Errorf("%w: @location(%d) offset %d, shader expects %d",
				ErrVertexLayoutMismatch, g.ShaderLocation, w.Offset, g.Offset)
		}
	}
	return nil
}
