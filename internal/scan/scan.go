// Package scan provides the byte-scan kernels the tokenizer is built on:
// locating the first occurrence of a single delimiter byte in a slice.
//
// A single kernel family covers every delimiter search the tokenizer needs
// (space, '=', ';', ':'); multi-delimiter scans are expressed as repeated
// IndexByte calls combined with min, rather than as a separate multi-needle
// kernel. This keeps exactly one hot function to vectorize per architecture.
//
// The concrete implementation is chosen once, at init time, based on the
// running CPU's feature bits (see scan_amd64.go / scan_arm64.go): AVX2 or
// SSE2 on amd64, NEON on arm64, with a portable scalar fallback. There is no
// AVX-512 kernel; amd64 CPUs with AVX-512 use the AVX2 one. All of them must
// agree on every input; see scan_fuzz_test.go for the differential check.
package scan

// IndexByte returns the offset of the first occurrence of c in b, or
// len(b) if c does not appear. It never faults and never allocates.
func IndexByte(b []byte, c byte) int {
	return indexByte(b, c)
}

// IndexByte2 returns the offset of the first occurrence of c0 or c1 in b,
// whichever comes first, or len(b) if neither appears.
func IndexByte2(b []byte, c0, c1 byte) int {
	i0 := indexByte(b, c0)
	i1 := indexByte(b, c1)
	if i1 < i0 {
		return i1
	}
	return i0
}

// IndexByte3 returns the offset of the first occurrence of c0, c1 or c2 in
// b, or len(b) if none appear.
func IndexByte3(b []byte, c0, c1, c2 byte) int {
	i := IndexByte2(b, c0, c1)
	i2 := indexByte(b, c2)
	if i2 < i {
		return i2
	}
	return i
}
