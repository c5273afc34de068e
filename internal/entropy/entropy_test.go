package entropy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IRodriguez13/bitgrain/internal/zigzag"
)

func TestCategoryRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2, -2, 7, -7, 255, -255, 1023, -1024} {
		cat := category(v)
		bits := magnitudeBits(v, cat)
		got := unmagnitude(bits, cat)
		require.Equal(t, v, got, "value %d", v)
	}
}

func TestEncodeDecodeBlockRoundTrip(t *testing.T) {
	cases := []struct {
		dc int32
		ac []zigzag.Symbol
	}{
		{dc: 0, ac: []zigzag.Symbol{{Run: 0, Value: 0}}},
		{dc: 5, ac: []zigzag.Symbol{{Run: 0, Value: 3}, {Run: 2, Value: -1}, {Run: 0, Value: 0}}},
		{dc: -17, ac: []zigzag.Symbol{{Run: zigzag.MaxRun, Value: 0}, {Run: 0, Value: 1}, {Run: 0, Value: 0}}},
	}

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, c := range cases {
		require.NoError(t, enc.EncodeBlock(c.dc, c.ac))
	}
	require.NoError(t, enc.Flush())

	dec := NewDecoder(bytes.NewReader(buf.Bytes()))
	for _, want := range cases {
		dc, ac, err := dec.DecodeBlock()
		require.NoError(t, err)
		require.Equal(t, want.dc, dc)
		require.Equal(t, want.ac, ac)
	}
}

func TestEncodeDecodeBlockWithFFRunsRoundTrip(t *testing.T) {
	// DC diffs and AC magnitudes chosen so their Huffman-coded bit
	// stream is likely to produce 0xFF bytes, exercising the
	// byte-stuffing path in internal/bio end to end.
	cases := []struct {
		dc int32
		ac []zigzag.Symbol
	}{
		{dc: 1023, ac: []zigzag.Symbol{{Run: 0, Value: 1023}, {Run: 0, Value: 0}}},
		{dc: -1024, ac: []zigzag.Symbol{{Run: 15, Value: 0}, {Run: 15, Value: 0}, {Run: 0, Value: -1023}, {Run: 0, Value: 0}}},
	}

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, c := range cases {
		require.NoError(t, enc.EncodeBlock(c.dc, c.ac))
	}
	require.NoError(t, enc.Flush())

	dec := NewDecoder(bytes.NewReader(buf.Bytes()))
	for _, want := range cases {
		dc, ac, err := dec.DecodeBlock()
		require.NoError(t, err)
		require.Equal(t, want.dc, dc)
		require.Equal(t, want.ac, ac)
	}
}
