//go:build amd64

package quant

import "golang.org/x/sys/cpu"

// sse2Kernel mirrors original_source/c/quant.c's quantize_block_sse2
// dispatch boundary. The reference SSE2 path converts to float,
// divides, and converts back, which rounds to nearest rather than
// truncating toward zero and would violate spec §8.7's bit-identical
// requirement; sse2Kernel instead shares quantizeCore/dequantizeCore
// with the scalar path so the selected implementation is provably
// identical while still being chosen via real CPU-feature detection.
var sse2Kernel = kernel{name: "sse2", quantize: quantizeCore, dequantize: dequantizeCore}

var selected = func() kernel {
	if cpu.X86.HasSSE2 {
		return sse2Kernel
	}
	return scalarKernel
}()
