// Package bitgrain implements a lossy still-image codec in the JPEG
// lineage: color transform, 8x8 block DCT, quality-scaled
// quantization, zigzag reordering, and fixed-Huffman entropy coding,
// framed by the .bg container format.
//
// The core is buffer-in, buffer-out and does no I/O of its own: every
// Encode*/Decode* call is a pure, single-threaded, synchronous
// function of its arguments (see internal/config for the size limits
// it enforces and internal/codecerr for its error taxonomy).
//
// Basic usage for encoding an RGB image:
//
//	n, err := bitgrain.EncodeRGB(dst, pix, width, height, 85)
//	if err != nil {
//	    var kind bitgrain.Kind
//	    if k, ok := bitgrain.KindOf(err); ok {
//	        kind = k
//	    }
//	    log.Fatalf("encode failed: %v (%v)", err, kind)
//	}
//
// Basic usage for decoding:
//
//	pix, width, height, channels, err := bitgrain.Decode(src)
package bitgrain

import (
	"github.com/IRodriguez13/bitgrain/internal/codecerr"
	"github.com/IRodriguez13/bitgrain/internal/config"
	"github.com/IRodriguez13/bitgrain/internal/container"
)

// MaxDimension, MaxPixelBytes and MaxFileBytes mirror the limits the
// core enforces (spec §6); exported so callers can pre-validate
// without attempting an encode/decode that's bound to fail.
const (
	MaxDimension  = config.MaxDimension
	MaxPixelBytes = config.MaxPixelBytes
	MaxFileBytes  = config.MaxFileBytes
)

func validateDims(width, height, channels int) error {
	if width <= 0 || height <= 0 {
		return codecerr.New(codecerr.DimensionsOutOfRange, "width and height must be positive")
	}
	if width > config.MaxDimension || height > config.MaxDimension {
		return codecerr.New(codecerr.DimensionsOutOfRange, "width or height exceeds MaxDimension")
	}
	if config.PixelBytesExceedsLimit(uint64(width), uint64(height), uint64(channels)) {
		return codecerr.New(codecerr.DimensionsOutOfRange, "width*height*channels exceeds MaxPixelBytes")
	}
	return nil
}

func validatePixelBuffer(pix []byte, width, height, channels int) error {
	want := width * height * channels
	if len(pix) < want {
		return codecerr.Newf(codecerr.InvalidArgument, "pixel buffer too small: have %d bytes, need %d", len(pix), want)
	}
	return nil
}

// EncodeGray encodes a single-channel (grayscale) image. pix must hold
// width*height bytes, row-major. quality 0 selects the default (85);
// other out-of-range values are clamped to [1,100].
func EncodeGray(dst []byte, pix []byte, width, height, quality int) (int, error) {
	return encode(dst, pix, width, height, 1, quality, nil)
}

// EncodeRGB encodes a 3-channel interleaved RGB image (R,G,B,R,G,B,...).
func EncodeRGB(dst []byte, pix []byte, width, height, quality int) (int, error) {
	return encode(dst, pix, width, height, 3, quality, nil)
}

// EncodeRGBA encodes a 4-channel interleaved RGBA image.
func EncodeRGBA(dst []byte, pix []byte, width, height, quality int) (int, error) {
	return encode(dst, pix, width, height, 4, quality, nil)
}

// EncodeRGBWithICC is EncodeRGB plus an opaque ICC color profile blob
// carried through the container verbatim (spec §8.10).
func EncodeRGBWithICC(dst []byte, pix []byte, width, height, quality int, icc []byte) (int, error) {
	return encode(dst, pix, width, height, 3, quality, icc)
}

// EncodeRGBAWithICC is EncodeRGBA plus an ICC profile blob.
func EncodeRGBAWithICC(dst []byte, pix []byte, width, height, quality int, icc []byte) (int, error) {
	return encode(dst, pix, width, height, 4, quality, icc)
}

// Subsampling selects the chroma subsampling ratio EncodeOptions
// requests. Only Subsampling444 is implemented today; 422 and 420 are
// reserved for a future container version (spec §9).
type Subsampling int

const (
	Subsampling444 Subsampling = iota
	Subsampling422
	Subsampling420
)

// EncodeOptions groups the encode-time knobs beyond quality: chroma
// subsampling and an optional ICC profile blob.
type EncodeOptions struct {
	Quality     int
	Subsampling Subsampling
	ICC         []byte
}

// EncodeRGBWithOptions is EncodeRGB/EncodeRGBWithICC generalized to an
// EncodeOptions value. Subsampling422/420 are defined but rejected
// with InvalidArgument; only Subsampling444 is supported until a
// future container version raises VersionColor.
func EncodeRGBWithOptions(dst []byte, pix []byte, width, height int, opts EncodeOptions) (int, error) {
	if opts.Subsampling != Subsampling444 {
		return 0, codecerr.New(codecerr.InvalidArgument, "chroma subsampling 422/420 require container version >= 4")
	}
	return encode(dst, pix, width, height, 3, opts.Quality, opts.ICC)
}

// EncodeRGBAWithOptions is EncodeRGBWithOptions for 4-channel images.
func EncodeRGBAWithOptions(dst []byte, pix []byte, width, height int, opts EncodeOptions) (int, error) {
	if opts.Subsampling != Subsampling444 {
		return 0, codecerr.New(codecerr.InvalidArgument, "chroma subsampling 422/420 require container version >= 4")
	}
	return encode(dst, pix, width, height, 4, opts.Quality, opts.ICC)
}

// Decode parses a .bg stream and reconstructs its pixel buffer. The
// returned channels is 1, 3, or 4 per the stream's declared version.
func Decode(src []byte) (pix []byte, width, height, channels int, err error) {
	pix, width, height, channels, _, err = decode(src)
	return pix, width, height, channels, err
}

// DecodeWithICC is Decode plus the ICC profile blob embedded in the
// stream, if any (nil if the stream carries no ICC section). Unlike
// the C reference, the returned blob is an ordinary Go-GC-owned slice;
// there is no release function to call.
func DecodeWithICC(src []byte) (pix []byte, width, height, channels int, icc []byte, err error) {
	return decode(src)
}

// Version reports the .bg container version byte (1, 2, or 3) implied
// by a channel count, for callers assembling a header themselves.
func Version(channels int) (byte, bool) {
	v, ok := container.VersionForChannels(channels)
	return byte(v), ok
}
