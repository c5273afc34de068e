//go:build arm64

package quant

import "golang.org/x/sys/cpu"

// neonKernel mirrors original_source/c/quant.c's quantize_block_neon;
// see sse2Kernel's doc comment in quant_amd64.go for why it shares
// quantizeCore/dequantizeCore rather than the reference's float
// round-trip.
var neonKernel = kernel{name: "neon", quantize: quantizeCore, dequantize: dequantizeCore}

var selected = func() kernel {
	if cpu.ARM64.HasASIMD {
		return neonKernel
	}
	return scalarKernel
}()
