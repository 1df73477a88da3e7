package hostinfo

import "golang.org/x/sys/cpu"

// SIMD names the widest vector extension found and how many float64 values
// fit in one of its registers.
type SIMD struct {
	Name         string
	Float64Lanes int
}

// DetectSIMD reports the widest vector extension the CPU supports.
func DetectSIMD() SIMD {
	switch {
	case cpu.X86.HasAVX512F:
		return SIMD{Name: "avx512f", Float64Lanes: 8}
	case cpu.X86.HasAVX2:
		return SIMD{Name: "avx2", Float64Lanes: 4}
	case cpu.X86.HasAVX:
		return SIMD{Name: "avx", Float64Lanes: 4}
	case cpu.X86.HasSSE2:
		return SIMD{Name: "sse2", Float64Lanes: 2}
	case cpu.ARM64.HasSVE:
		return SIMD{Name: "sve", Float64Lanes: 2}
	case cpu.ARM64.HasASIMD:
		return SIMD{Name: "asimd", Float64Lanes: 2}
	default:
		return SIMD{Name: "none", Float64Lanes: 1}
	}
}
