// Package zigzag reorders an 8x8 block between natural (row-major) and
// zigzag (low-to-high spatial frequency) order, and packs the
// resulting 63 AC coefficients as run-length symbols (spec §4.6). DPCM
// coding of the DC term is done by the caller, not by this package.
//
// There is no close JPEG2000 analogue to port from — JPEG2000 codes
// coefficients with EBCOT bit-plane passes rather than zigzag+RLE —
// so this package is written fresh against spec §3/§4.6, in the
// teacher's style of expressing a fixed permutation as package-level
// data (cf. the teacher's mqStates table in internal/entropy/mqc.go).
package zigzag

import "github.com/IRodriguez13/bitgrain/internal/block"

// order[z] is the natural-order index of the coefficient that belongs
// at zigzag position z.
var order = [block.N]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// Forward reorders b from natural to zigzag order, returning a new
// array: out[z] = b[order[z]].
func Forward(b *block.Block) [block.N]int16 {
	var out [block.N]int16
	for z, n := range order {
		out[z] = b[n]
	}
	return out
}

// Inverse reorders zigzag-ordered coefficients back to natural order:
// b[order[z]] = in[z]. zigzag⁻¹ ∘ zigzag = identity (spec §8.5).
func Inverse(in *[block.N]int16) block.Block {
	var b block.Block
	for z, n := range order {
		b[n] = in[z]
	}
	return b
}

// MaxRun is the largest zero run directly encodable without an escape;
// longer runs are split into ZRL escapes of MaxRun+1 (16) zeros each.
const MaxRun = 15

// Symbol is a (run, value) pair: run zeros followed by a nonzero AC
// coefficient. EOB is represented by Symbol{Run: 0, Value: 0} and must
// only ever be the last symbol in a sequence; ZRL (a 16-zero escape)
// is Symbol{Run: MaxRun, Value: 0}.
type Symbol struct {
	Run   uint8
	Value int16
}

// IsEOB reports whether s is the end-of-block marker.
func (s Symbol) IsEOB() bool {
	return s.Run == 0 && s.Value == 0
}

// IsZRL reports whether s is a zero-run-length escape (16 zeros, no
// value emitted).
func (s Symbol) IsZRL() bool {
	return s.Run == MaxRun && s.Value == 0
}

// EncodeAC packs the 63 zigzag-ordered AC coefficients (in[1:64]) into
// run-length symbols terminated by EOB, per spec §4.6. If all 63
// coefficients are zero, the result is a single EOB symbol; if the
// last coefficient (zigzag position 63) is nonzero, no trailing EOB is
// emitted.
func EncodeAC(in *[block.N]int16) []Symbol {
	syms := make([]Symbol, 0, 16)
	run := 0
	for i := 1; i < block.N; i++ {
		v := in[i]
		if v == 0 {
			run++
			continue
		}
		for run > MaxRun {
			syms = append(syms, Symbol{Run: MaxRun, Value: 0})
			run -= MaxRun + 1
		}
		syms = append(syms, Symbol{Run: uint8(run), Value: v})
		run = 0
	}
	if run > 0 {
		syms = append(syms, Symbol{Run: 0, Value: 0})
	}
	return syms
}

// DecodeAC expands run-length symbols back into the 63 zigzag-ordered
// AC positions of out (out[0], the DC slot, is left untouched).
func DecodeAC(syms []Symbol, out *[block.N]int16) {
	pos := 1
	for _, s := range syms {
		if s.IsEOB() {
			break
		}
		pos += int(s.Run)
		if pos >= block.N {
			break
		}
		out[pos] = s.Value
		pos++
	}
}
