// Package quant derives quality-scaled quantization tables and
// applies/inverts quantization on a block.
//
// Base tables are the standard JPEG Annex K luma/chroma tables — per
// spec.md §9, original_source only shows the SIMD-dispatch shape of
// quantization (quant.c), not the table values, so BitGrain adopts
// option (a) from the spec's own menu rather than inventing a table.
package quant

import "github.com/IRodriguez13/bitgrain/internal/block"

// BaseLuma is the standard JPEG Annex K luminance quantization table,
// in natural (row-major) order.
var BaseLuma = [block.N]uint16{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// BaseChroma is the standard JPEG Annex K chrominance quantization
// table, in natural (row-major) order.
var BaseChroma = [block.N]uint16{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// Table is an effective, quality-scaled 64-entry quantization table.
// Every entry is guaranteed >= 1 (spec §3 invariant: prevents
// divide-by-zero during dequant).
type Table [block.N]uint16

// Derive scales base by factor s (spec §3: q[i] = clamp(round(base[i]*s), 1, 255))
// and returns the effective table.
func Derive(base [block.N]uint16, scale float64) Table {
	var t Table
	for i, v := range base {
		scaled := round(float64(v) * scale)
		if scaled < 1 {
			scaled = 1
		} else if scaled > 255 {
			scaled = 255
		}
		t[i] = uint16(scaled)
	}
	return t
}

func round(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
