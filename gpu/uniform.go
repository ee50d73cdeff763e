package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/viewport"
	"golang.org/x/exp/constraints"
)

// UniformSize is the byte size of the viewport uniform buffer.
// Layout: row0 (vec4<f32>) + row1 (vec4<f32>) = 32 bytes.
const UniformSize = 32

// VertexStride is the byte stride per vertex expected by the shader.
// Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes  (location 0)
//	color    (vec4<f32>) = 16 bytes (location 1)
const VertexStride = 24

// UniformBytes packs m into the 32-byte uniform layout read by the shader:
// each matrix row becomes a vec4<f32> whose w component is zero.
// Values are little-endian float32 regardless of T.
func UniformBytes[T constraints.Float](m viewport.Matrix[T]) []byte {
	buf := make([]byte, UniformSize)
	for r, row := range m {
		base := r * 16
		for c, v := range row {
			binary.LittleEndian.PutUint32(buf[base+c*4:], math.Float32bits(float32(v)))
		}
		// Bytes base+12..base+15 remain zero.
	}
	return buf
}

// UniformLayoutEntry describes the uniform binding (group 0, binding 0).
func UniformLayoutEntry() gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: gputypes.ShaderStageVertex,
		Buffer: &gputypes.BufferBindingLayout{
			Type:           gputypes.BufferBindingTypeUniform,
			MinBindingSize: UniformSize,
		},
	}
}

// UniformUsage is the buffer usage for the uniform buffer.
const UniformUsage = gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst

// VertexLayout describes the vertex buffer read by the shader.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1},
		},
	}
}

// PutVertex writes one vertex at buf[0:VertexStride].
func PutVertex(buf []byte, x, y float32, r, g, b, a float32) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(x))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(y))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(r))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(b))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(a))
}
