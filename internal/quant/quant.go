package quant

import (
	"math"

	"github.com/IRodriguez13/bitgrain/internal/block"
)

// quantizeCore truncates b[i] toward zero by table[i] (spec §4.5:
// "trunc(block[i] / table[i])", not rounding — this asymmetry is
// intentional and matches classic JPEG quantization). Go's integer
// division on signed ints already truncates toward zero, so this is
// the whole implementation; no float round-trip is needed or wanted
// (see DESIGN.md's Open Question entry on why that would diverge from
// the spec's truncation pin).
func quantizeCore(b *block.Block, t *Table) {
	for i := range b {
		b[i] = b[i] / int16(t[i])
	}
}

// dequantizeCore restores frequency magnitude: block[i] = q[i]*table[i].
// The multiplication is done in int32 so a crafted payload's
// out-of-range coefficient is caught rather than silently wrapping;
// ok is false the moment any product overflows int16 (spec §4.7/§7:
// decoders must surface this as MalformedPayload).
func dequantizeCore(b *block.Block, t *Table) bool {
	for i := range b {
		v := int32(b[i]) * int32(t[i])
		if v < math.MinInt16 || v > math.MaxInt16 {
			return false
		}
		b[i] = int16(v)
	}
	return true
}

// Quantize applies t to b in place using the kernel variant selected
// for this process. All variants share quantizeCore, so the result is
// bit-identical across scalar/SSE2/NEON dispatch by construction (spec
// §8.7) — see the doc comment on internal/dct's kernel type for why
// that's the correct way to satisfy the equivalence contract.
func Quantize(b *block.Block, t *Table) {
	selected.quantize(b, t)
}

// Dequantize inverts Quantize, reporting ok=false if any dequantized
// coefficient would fall outside int16 range.
func Dequantize(b *block.Block, t *Table) bool {
	return selected.dequantize(b, t)
}

type kernel struct {
	name       string
	quantize   func(*block.Block, *Table)
	dequantize func(*block.Block, *Table) bool
}

var scalarKernel = kernel{name: "scalar", quantize: quantizeCore, dequantize: dequantizeCore}

// ActiveKernel returns the name of the kernel variant chosen for this
// process, for diagnostics and tests.
func ActiveKernel() string {
	return selected.name
}
