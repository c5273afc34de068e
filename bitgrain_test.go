package bitgrain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestE1GrayscaleFlatBlockHeader(t *testing.T) {
	pix := make([]byte, 8*8)
	for i := range pix {
		pix[i] = 128
	}
	dst := make([]byte, 4096)
	n, err := EncodeGray(dst, pix, 8, 8, 85)
	require.NoError(t, err)
	require.Equal(t, []byte{0x42, 0x47, 0x01, 0x08, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00}, dst[:11])

	out, w, h, ch, err := Decode(dst[:n])
	require.NoError(t, err)
	require.Equal(t, 8, w)
	require.Equal(t, 8, h)
	require.Equal(t, 1, ch)
	for _, v := range out {
		require.Equal(t, byte(128), v)
	}
}

func TestE2RGBGradientRoundTripQuality(t *testing.T) {
	width, height := 16, 16
	pix := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			pix[i+0] = byte(x * 16)
			pix[i+1] = byte(y * 16)
			pix[i+2] = 0
		}
	}
	dst := make([]byte, 1<<16)
	n, err := EncodeRGB(dst, pix, width, height, 75)
	require.NoError(t, err)

	out, w, h, ch, err := Decode(dst[:n])
	require.NoError(t, err)
	require.Equal(t, width, w)
	require.Equal(t, height, h)
	require.Equal(t, 3, ch)

	psnr := PSNR(pix, out)
	ssim := SSIM(pix, out)
	require.GreaterOrEqual(t, psnr, 35.0)
	require.GreaterOrEqual(t, ssim, 0.95)
}

func TestE3NonMultipleOf8Dimensions(t *testing.T) {
	width, height := 17, 17
	rng := rand.New(rand.NewSource(42))
	pix := make([]byte, width*height)
	rng.Read(pix)

	dst := make([]byte, 1<<16)
	n, err := EncodeGray(dst, pix, width, height, 50)
	require.NoError(t, err)

	out, w, h, _, err := Decode(dst[:n])
	require.NoError(t, err)
	require.Equal(t, width, w)
	require.Equal(t, height, h)
	require.Len(t, out, width*height)
}

func TestE4TruncatedStream(t *testing.T) {
	pix := make([]byte, 8*8)
	dst := make([]byte, 4096)
	n, err := EncodeGray(dst, pix, 8, 8, 85)
	require.NoError(t, err)

	_, _, _, _, err = Decode(dst[:n-1])
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, TruncatedPayload, kind)
}

func TestE5CorruptedMagic(t *testing.T) {
	pix := make([]byte, 8*8)
	dst := make([]byte, 4096)
	n, err := EncodeGray(dst, pix, 8, 8, 85)
	require.NoError(t, err)
	dst[0] = 'X'

	_, _, _, _, err = Decode(dst[:n])
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, MalformedHeader, kind)
}

func TestE6QualityZeroClampsToDefault(t *testing.T) {
	pix := make([]byte, 8*8)
	for i := range pix {
		pix[i] = byte(i)
	}
	dstA := make([]byte, 4096)
	dstB := make([]byte, 4096)

	nA, err := EncodeGray(dstA, pix, 8, 8, 0)
	require.NoError(t, err)
	nB, err := EncodeGray(dstB, pix, 8, 8, 85)
	require.NoError(t, err)

	require.Equal(t, dstA[:nA], dstB[:nB])
}

func TestE7ICCRoundTrip(t *testing.T) {
	width, height := 8, 8
	pix := make([]byte, width*height*3)
	icc := make([]byte, 64)
	for i := range icc {
		icc[i] = byte(i)
	}

	dst := make([]byte, 4096)
	n, err := EncodeRGBWithICC(dst, pix, width, height, 85, icc)
	require.NoError(t, err)

	_, _, _, _, gotICC, err := DecodeWithICC(dst[:n])
	require.NoError(t, err)
	require.Equal(t, icc, gotICC)
}

func TestDimensionsOutOfRangeRejected(t *testing.T) {
	dst := make([]byte, 16)
	_, err := EncodeGray(dst, make([]byte, 10), 0, 10, 85)
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, DimensionsOutOfRange, kind)
}

func TestBufferTooSmall(t *testing.T) {
	pix := make([]byte, 64*64)
	dst := make([]byte, 4)
	_, err := EncodeGray(dst, pix, 64, 64, 85)
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, BufferTooSmall, kind)
}

func TestEncodeRGBWithOptions444RoundTrip(t *testing.T) {
	width, height := 8, 8
	pix := make([]byte, width*height*3)
	for i := range pix {
		pix[i] = byte(i)
	}
	dst := make([]byte, 4096)
	n, err := EncodeRGBWithOptions(dst, pix, width, height, EncodeOptions{Quality: 85, Subsampling: Subsampling444})
	require.NoError(t, err)

	out, w, h, ch, err := Decode(dst[:n])
	require.NoError(t, err)
	require.Equal(t, width, w)
	require.Equal(t, height, h)
	require.Equal(t, 3, ch)
	require.Len(t, out, width*height*3)
}

func TestEncodeRGBWithOptionsRejectsSubsampling(t *testing.T) {
	dst := make([]byte, 4096)
	pix := make([]byte, 8*8*3)
	_, err := EncodeRGBWithOptions(dst, pix, 8, 8, EncodeOptions{Quality: 85, Subsampling: Subsampling420})
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, InvalidArgument, kind)
}
