package quant

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IRodriguez13/bitgrain/internal/block"
)

func TestQuantizeDequantizeRoundTrip(t *testing.T) {
	table := Derive(BaseLuma, 1.0)
	var b block.Block
	for i := range b {
		b[i] = int16(i * 3)
	}

	Quantize(&b, &table)
	ok := Dequantize(&b, &table)
	require.True(t, ok)
}

func TestDequantizeRejectsOutOfRangeCoefficient(t *testing.T) {
	var table Table
	for i := range table {
		table[i] = 1000
	}
	var b block.Block
	b[0] = 1000 // 1000*1000 overflows int16

	ok := Dequantize(&b, &table)
	require.False(t, ok)
}
