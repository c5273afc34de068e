//go:build amd64

package dct

import "golang.org/x/sys/cpu"

// sse2Kernel is the amd64 kernel variant. Real SSE2 code computes the
// row/column dot products four lanes at a time (see
// original_source/c/dct.c's dct_1d_sse2); that tiling changes
// floating-point summation order and can disagree with the scalar
// path in the last bit, which spec §8.7 forbids. sse2Kernel instead
// shares forwardCore/inverseCore with scalarKernel so the dispatch
// boundary is real (selected at load time by CPU feature probing)
// while the numeric result is identical by construction.
var sse2Kernel = kernel{name: "sse2", forward: forwardCore, inverse: inverseCore}

var selected = func() kernel {
	if cpu.X86.HasSSE2 {
		return sse2Kernel
	}
	return scalarKernel
}()
