package scan

import "golang.org/x/sys/cpu"

// indexByteSSE2 and indexByteAVX2 are implemented in scan_amd64.s. Each
// scans in fixed-width blocks (16 bytes for SSE2, 32 for AVX2) and falls
// back to a scalar epilogue for the final partial block, so no load reads
// past len(b).
//
//go:noescape
func indexByteSSE2(b []byte, c byte) int

//go:noescape
func indexByteAVX2(b []byte, c byte) int

// indexByte is resolved once at init time to the widest vector kernel the
// running CPU supports. This is the runtime-cpuid/function-pointer
// dispatch strategy; the instruction-set choice itself is still fixed per
// build (this file only compiles for GOARCH=amd64).
var indexByte = func(b []byte, c byte) int {
	return indexByteScalar(b, c)
}

func init() {
	switch {
	case cpu.X86.HasAVX2:
		indexByte = indexByteAVX2
	case cpu.X86.HasSSE2:
		indexByte = indexByteSSE2
	default:
		indexByte = indexByteScalar
	}
}
