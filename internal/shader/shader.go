// Package shader holds the WGSL form of the packed-color primitives and
// compiles it to SPIR-V for targets that run them as a compute kernel.
package shader

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/gogpu/naga"
)

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic uint32 = 0x07230203

// EntryPoint is the compute entry point of the primitives kernel.
const EntryPoint = "main"

// WorkgroupSize is the kernel's workgroup width.
const WorkgroupSize = 64

//go:embed shaders/primitives.wgsl
var primitivesWGSL string

// Source returns the WGSL source of the primitives kernel.
func Source() string {
	return primitivesWGSL
}

// CompileSPIRV compiles the primitives kernel to SPIR-V words.
func CompileSPIRV() ([]uint32, error) {
	return compile(primitivesWGSL)
}

func compile(src string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("failed to compile shader: %d bytes is not a whole number of words", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return code, nil
}

// WriteSPIRV writes SPIR-V words to w as a little-endian binary module.
func WriteSPIRV(w io.Writer, code []uint32) error {
	if err := binary.Write(w, binary.LittleEndian, code); err != nil {
		return fmt.Errorf("write spirv: %w", err)
	}
	return nil
}

// Workgroups returns the number of workgroups needed to cover n words.
func Workgroups(n int) int {
	return (n + WorkgroupSize - 1) / WorkgroupSize
}
