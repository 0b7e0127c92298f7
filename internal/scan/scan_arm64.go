package scan

import "golang.org/x/sys/cpu"

// indexByteNEON is implemented in scan_arm64.s. It scans 16-byte blocks with
// a NEON compare + horizontal-max "any match" test, then pinpoints the exact
// offset inside the matching block with a scalar scan (the scalar-epilogue
// tail strategy, applied per-block rather than only at the end, since NEON
// has no direct equivalent of x86's PMOVMSKB to extract a lane bitmask).
//
//go:noescape
func indexByteNEON(b []byte, c byte) int

var indexByte = func(b []byte, c byte) int {
	return indexByteScalar(b, c)
}

func init() {
	if cpu.ARM64.HasASIMD {
		indexByte = indexByteNEON
	} else {
		indexByte = indexByteScalar
	}
}
