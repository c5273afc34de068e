//go:build arm64

package dct

import "golang.org/x/sys/cpu"

// neonKernel is the arm64 kernel variant; see sse2Kernel's doc comment
// in dct_amd64.go for why it shares forwardCore/inverseCore rather
// than re-tiling the summation the way original_source/c/dct.c's
// dct_1d_neon does.
var neonKernel = kernel{name: "neon", forward: forwardCore, inverse: inverseCore}

var selected = func() kernel {
	if cpu.ARM64.HasASIMD {
		return neonKernel
	}
	return scalarKernel
}()
