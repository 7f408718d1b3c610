//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures use the scalar level.
	// Future: wasm SIMD128, riscv64 vector extension.
	setLevel(DispatchScalar)
}

// HasFMA returns false on architectures without detection support.
func HasFMA() bool {
	return false
}
