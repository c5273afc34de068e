package bitgrain

import (
	"bytes"
	"encoding/binary"

	"github.com/IRodriguez13/bitgrain/internal/block"
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

// decode drives the inverse of encode (spec §4.9): parse the header,
// quality byte, and optional ICC section, then per declared component
// entropy-decode → inverse zigzag/RLE → dequantize → IDCT →
// level-unshift → reassemble into a plane, finally recombining planes
// (inverse color transform for channels >= 3) into an interleaved
// pixel buffer.
func decode(src []byte) (pix []byte, width, height, channels int, icc []byte, err error) {
	if len(src) > config.MaxFileBytes {
		return nil, 0, 0, 0, nil, codecerr.New(codecerr.DimensionsOutOfRange, "input exceeds MaxFileBytes")
	}
	hdr, err := container.ParseHeader(src)
	if err != nil {
		return nil, 0, 0, 0, nil, err
	}
	width, height, channels = int(hdr.Width), int(hdr.Height), hdr.Version.Channels()

	if len(src) < container.HeaderSize+1 {
		return nil, 0, 0, 0, nil, codecerr.New(codecerr.TruncatedPayload, "missing quality byte")
	}
	quality := int(src[container.HeaderSize])

	icc, rest, err := container.SplitICCSection(src[container.HeaderSize+1:])
	if err != nil {
		return nil, 0, 0, 0, nil, err
	}

	scale := config.QualityScale(quality)
	lumaTable := quant.Derive(quant.BaseLuma, scale)
	chromaTable := quant.Derive(quant.BaseChroma, scale)

	planes := make([]*blockizer.Plane, channels)
	for i := 0; i < channels; i++ {
		table := &lumaTable
		if i == 1 || i == 2 {
			table = &chromaTable
		}
		payload, next, perr := readComponentPayload(rest)
		if perr != nil {
			return nil, 0, 0, 0, nil, perr
		}
		rest = next

		plane, derr := decodeComponent(payload, width, height, table)
		if derr != nil {
			return nil, 0, 0, 0, nil, derr
		}
		planes[i] = plane
	}

	pix = assembleDecodedPlanes(planes, width, height, channels)
	return pix, width, height, channels, icc, nil
}

func readComponentPayload(rest []byte) (payload []byte, next []byte, err error) {
	if len(rest) < 4 {
		return nil, nil, codecerr.New(codecerr.TruncatedPayload, "missing component length prefix")
	}
	n := binary.LittleEndian.Uint32(rest[:4])
	end := 4 + uint64(n)
	if end > uint64(len(rest)) {
		return nil, nil, codecerr.New(codecerr.TruncatedPayload, "component payload truncated")
	}
	return rest[4:end], rest[end:], nil
}

// decodeComponent reconstructs one plane's worth of samples from its
// entropy-coded payload.
func decodeComponent(payload []byte, width, height int, table *quant.Table) (*blockizer.Plane, error) {
	blocksX, blocksY := blockizer.Dims(width, height)
	total := blocksX * blocksY

	dec := entropy.NewDecoder(bytes.NewReader(payload))
	blocks := make([]block.Block, total)

	var dcPred int32
	for i := 0; i < total; i++ {
		diff, ac, err := dec.DecodeBlock()
		if err != nil {
			return nil, codecerr.Wrap(codecerr.MalformedPayload, err, "entropy decode")
		}
		dcPred += diff

		var zz [block.N]int16
		zz[0] = int16(dcPred)
		zigzag.DecodeAC(ac, &zz)

		blk := zigzag.Inverse(&zz)
		if ok := quant.Dequantize(&blk, table); !ok {
			return nil, codecerr.New(codecerr.MalformedPayload, "dequantized coefficient out of int16 range")
		}
		dct.Inverse(&blk)
		blk.LevelUnshift()
		blocks[i] = blk
	}

	return blockizer.Reassemble(blocks, width, height), nil
}

// assembleDecodedPlanes recombines per-component planes into an
// interleaved pixel buffer, applying the inverse color transform for
// channels >= 3.
func assembleDecodedPlanes(planes []*blockizer.Plane, width, height, channels int) []byte {
	n := width * height
	pix := make([]byte, n*channels)

	if channels == 1 {
		copy(pix, planes[0].Pix)
		return pix
	}

	y := make([]float64, n)
	cb := make([]float64, n)
	cr := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = float64(planes[0].Pix[i])
		cb[i] = float64(planes[1].Pix[i])
		cr[i] = float64(planes[2].Pix[i])
	}
	colorxform.Inverse(y, cb, cr)
	for i := 0; i < n; i++ {
		pix[i*channels+0] = colorxform.RoundClamp(y[i])
		pix[i*channels+1] = colorxform.RoundClamp(cb[i])
		pix[i*channels+2] = colorxform.RoundClamp(cr[i])
	}
	if channels == 4 {
		for i := 0; i < n; i++ {
			pix[i*channels+3] = planes[3].Pix[i]
		}
	}
	return pix
}
