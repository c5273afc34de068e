package bio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type errWriter struct {
	n   int
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.n <= 0 {
		return 0, e.err
	}
	e.n--
	return len(p), nil
}

func TestWriteBitsNoStuffing(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBits(0xABCD, 16))
	require.NoError(t, w.Close())
	require.Equal(t, []byte{0xAB, 0xCD}, buf.Bytes())
}

func TestWriteBitsInsertsStuffingByte(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBits(0xFF, 8))
	require.NoError(t, w.WriteBits(0x12, 8))
	require.NoError(t, w.Close())
	require.Equal(t, []byte{0xFF, 0x00, 0x12}, buf.Bytes())
}

func TestWriteBitsConsecutiveFF(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBits(0xFF, 8))
	require.NoError(t, w.WriteBits(0xFF, 8))
	require.NoError(t, w.Close())
	require.Equal(t, []byte{0xFF, 0x00, 0xFF, 0x00}, buf.Bytes())
}

func TestClosePadsPartialByte(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBits(0x5, 3)) // 101
	require.NoError(t, w.Close())
	require.Equal(t, []byte{0xA0}, buf.Bytes()) // 10100000
}

func TestWriteBitsPropagatesError(t *testing.T) {
	testErr := errors.New("boom")
	w := NewWriter(&errWriter{n: 0, err: testErr})
	err := w.WriteBits(0xFF, 8)
	require.ErrorIs(t, err, testErr)
}

func TestReadBitsRoundTripNoStuffing(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBits(0xABCD, 16))
	require.NoError(t, w.Close())

	r := NewReader(bytes.NewReader(buf.Bytes()))
	got, err := r.ReadBits(16)
	require.NoError(t, err)
	require.Equal(t, uint32(0xABCD), got)
}

func TestReadBitsStripsStuffingByte(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xFF, 0x00, 0x12}))
	first, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint32(0xFF), first)

	second, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint32(0x12), second)
}

func TestRoundTripMixedLengthsWithFF(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	values := []struct {
		val uint32
		n   uint
	}{
		{0x1, 1}, {0xFF, 8}, {0x3, 2}, {0xFF, 8}, {0xAB, 8},
	}
	for _, v := range values {
		require.NoError(t, w.WriteBits(v.val, v.n))
	}
	require.NoError(t, w.Close())

	r := NewReader(bytes.NewReader(buf.Bytes()))
	for _, v := range values {
		got, err := r.ReadBits(v.n)
		require.NoError(t, err)
		require.Equal(t, v.val, got)
	}
}

func TestReadBitsEOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	_, err := r.ReadBits(1)
	require.Error(t, err)
}

func TestWriteBitsZero(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBits(0xFFFFFFFF, 0))
	require.NoError(t, w.Close())
	require.Equal(t, 0, buf.Len())
}
