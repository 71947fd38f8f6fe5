package wgpu

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/ldi/gpucore"
)

//go:embed shaders/raycast.wgsl
var raycastShaderSource string

// sourceForKind returns the WGSL fragment source for one pipeline kind.
// All four kinds share vertex and fragment entry points. It replaces a
// NUM_INPUT_VIEWS marker with the kind's input view count; the embedded
// raycast.wgsl contains no such marker, so every kind receives the same
// source and the shader reads its view/eye counts from the uniforms.
func sourceForKind(kind gpucore.PipelineKind) string {
	src := raycastShaderSource
	src = strings.ReplaceAll(src, "/*NUM_INPUT_VIEWS*/ 1", strconv.Itoa(kind.NumInputViews()))
	return src
}

// compileShaderToSPIRV compiles WGSL source to a SPIR-V uint32 slice via
// naga. SPIR-V is little-endian 32-bit words.
func compileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("wgpu: compiling shader: %w", err)
	}

	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// createHALShaderModule creates a HAL shader module from SPIR-V code.
func createHALShaderModule(device hal.Device, label string, spirvCode []uint32) (hal.ShaderModule, error) {
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
}
