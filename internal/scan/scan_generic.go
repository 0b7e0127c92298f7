//go:build !amd64 && !arm64

package scan

// On architectures without a hand-written kernel, the scalar implementation
// is the only one available; there is no runtime dispatch to perform.
var indexByte = indexByteScalar
