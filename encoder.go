package bitgrain

import (
	"bytes"
	"encoding/binary"

	"github.com/IRodriguez13/bitgrain/internal/blockizer"
	"github.com/IRodriguez13/bitgrain/internal/codecerr"
	"github.com/IRodriguez13/bitgrain/internal/colorxform"
	"github.com/IRodriguez13/bitgrain/internal/config"
	"github.com/IRodriguez13/bitgrain/internal/container"
	"github.com/IRodriguez13/bitgrain/internal/dct"
	"github.com/IRodriguez13/bitgrain/internal/entropy"
	"github.com/IRodriguez13/bitgrain/internal/quant"
	"github.com/IRodriguez13/bitgrain/internal/zigzag"
)

// encode drives the full pipeline of spec §4.8: validate, color
// transform, derive quant tables, and per component blockize → DCT →
// quantize → zigzag+RLE → entropy-encode, finally framing the result
// behind the container header and optional ICC section.
//
// Each component's entropy payload is framed with a 4-byte LE length
// prefix; the spec leaves the exact intra-payload framing to the
// implementer; this lets the decoder split components without
// tracking bit position across the entropy coder's byte-stuffed
// stream.
func encode(dst []byte, pix []byte, width, height, channels, quality int, icc []byte) (int, error) {
	if err := validateDims(width, height, channels); err != nil {
		return 0, err
	}
	if err := validatePixelBuffer(pix, width, height, channels); err != nil {
		return 0, err
	}
	version, ok := container.VersionForChannels(channels)
	if !ok {
		return 0, codecerr.Newf(codecerr.InvalidArgument, "unsupported channel count %d", channels)
	}

	planes := buildEncodePlanes(pix, width, height, channels)

	effQuality := config.ClampQuality(quality)
	scale := config.QualityScale(effQuality)
	lumaTable := quant.Derive(quant.BaseLuma, scale)
	chromaTable := quant.Derive(quant.BaseChroma, scale)

	var out bytes.Buffer
	var header [container.HeaderSize]byte
	container.PutHeader(header[:], container.Header{Version: version, Width: uint32(width), Height: uint32(height)})
	out.Write(header[:])
	// The fixed 11-byte header (spec §4.1) has no room for the
	// quality used, but dequantization needs the exact scale the
	// encoder derived from it; one quality byte is carried here so
	// decode can rebuild bit-identical tables (see DESIGN.md).
	out.WriteByte(byte(effQuality))
	out.Write(container.PutICCSection(nil, icc))

	for i, plane := range planes {
		table := &lumaTable
		if i == 1 || i == 2 {
			table = &chromaTable
		}
		payload, err := encodeComponent(plane, table)
		if err != nil {
			return 0, err
		}
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
		out.Write(lenBuf[:])
		out.Write(payload)
	}

	if out.Len() > len(dst) {
		return 0, codecerr.Newf(codecerr.BufferTooSmall, "output needs %d bytes, destination has %d", out.Len(), len(dst))
	}
	n := copy(dst, out.Bytes())
	return n, nil
}

// buildEncodePlanes deinterleaves pix into one 8-bit plane per
// component, applying the RGB(A)->YCbCr(A) transform for channels >=
// 3 (spec §4.8 step 2). Alpha, when present, passes through
// unmodified — it is neither color-transformed nor chroma-subsampled,
// and is quantized with the luma table like the Y plane.
func buildEncodePlanes(pix []byte, width, height, channels int) []*blockizer.Plane {
	n := width * height
	planes := make([]*blockizer.Plane, channels)
	for i := range planes {
		planes[i] = blockizer.NewPlane(width, height)
	}

	if channels == 1 {
		copy(planes[0].Pix, pix[:n])
		return planes
	}

	r := make([]float64, n)
	g := make([]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		r[i] = float64(pix[i*channels+0])
		g[i] = float64(pix[i*channels+1])
		b[i] = float64(pix[i*channels+2])
	}
	colorxform.Forward(r, g, b)
	for i := 0; i < n; i++ {
		planes[0].Pix[i] = colorxform.RoundClamp(r[i])
		planes[1].Pix[i] = colorxform.RoundClamp(g[i])
		planes[2].Pix[i] = colorxform.RoundClamp(b[i])
	}
	if channels == 4 {
		for i := 0; i < n; i++ {
			planes[3].Pix[i] = pix[i*channels+3]
		}
	}
	return planes
}

// encodeComponent blockizes one plane and entropy-encodes every
// block, maintaining the component's DC predictor across blocks (spec
// §4.6, §4.8 step 4).
func encodeComponent(plane *blockizer.Plane, table *quant.Table) ([]byte, error) {
	blocks := blockizer.Partition(plane)

	var buf bytes.Buffer
	enc := entropy.NewEncoder(&buf)

	var dcPred int32
	for bi := range blocks {
		blk := &blocks[bi]
		blk.LevelShift()
		dct.Forward(blk)
		quant.Quantize(blk, table)
		zz := zigzag.Forward(blk)

		dc := int32(zz[0])
		diff := dc - dcPred
		dcPred = dc

		ac := zigzag.EncodeAC(&zz)
		if err := enc.EncodeBlock(diff, ac); err != nil {
			return nil, codecerr.Wrap(codecerr.MalformedPayload, err, "entropy encode")
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, codecerr.Wrap(codecerr.AllocationFailed, err, "entropy flush")
	}
	return buf.Bytes(), nil
}
