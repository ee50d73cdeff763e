//go:build !nogpu

package gpu

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// ShaderSource is the WGSL source of the viewport shader.
// Entry points: vs_main (vertex) and fs_main (fragment).
//
//go:embed shaders/viewport.wgsl
var ShaderSource string

// Shader entry point names.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// CompileShader compiles ShaderSource to SPIR-V words.
func CompileShader() ([]uint32, error) {
	return compileSPIRV(ShaderSource)
}

// compileSPIRV compiles WGSL source to a SPIR-V uint32 slice.
func compileSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile viewport shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, errors.New("gpu: compile viewport shader: SPIR-V length is not a multiple of 4")
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}
