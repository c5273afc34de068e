// Package container implements bit-exact framing of the .bg stream:
// the 11-byte header, the optional ICC section, and delimiting the
// remaining bytes as the entropy-coded payload (spec §4.1).
//
// Grounded on the teacher's internal/box (box-style length+tag
// framing) and internal/codestream/header.go (fixed-layout header
// parsing with explicit error returns), generalized from JP2's
// variable box graph down to BitGrain's single fixed 11-byte header
// plus one optional tagged section.
package container

import (
	"encoding/binary"

	"github.com/IRodriguez13/bitgrain/internal/codecerr"
	"github.com/IRodriguez13/bitgrain/internal/config"
)

const (
	// HeaderSize is the fixed header length in bytes.
	HeaderSize = config.HeaderSize

	magic0 = 'B'
	magic1 = 'G'
)

// Version identifies the channel layout of the image (spec §4.1).
type Version byte

const (
	VersionGray  Version = 1 // 1 channel
	VersionColor Version = 2 // 3 channels, YCbCr
	VersionAlpha Version = 3 // 4 channels, YCbCr + A
)

// Channels returns the component count implied by v.
func (v Version) Channels() int {
	switch v {
	case VersionGray:
		return 1
	case VersionColor:
		return 3
	case VersionAlpha:
		return 4
	default:
		return 0
	}
}

// VersionForChannels returns the version byte for a channel count, or
// false if channels isn't one of 1, 3, 4.
func VersionForChannels(channels int) (Version, bool) {
	switch channels {
	case 1:
		return VersionGray, true
	case 3:
		return VersionColor, true
	case 4:
		return VersionAlpha, true
	default:
		return 0, false
	}
}

// Header is the parsed 11-byte .bg header.
type Header struct {
	Version Version
	Width   uint32
	Height  uint32
}

// iccTag marks the optional ICC section; chosen arbitrarily but
// distinct from any valid entropy-coded first byte pattern isn't
// required, since the section has an explicit length prefix and the
// payload that follows is parsed with no tag of its own.
var iccTag = [4]byte{'i', 'C', 'C', 'P'}

// PutHeader writes h into the first HeaderSize bytes of dst, which
// must have length >= HeaderSize.
func PutHeader(dst []byte, h Header) {
	dst[0] = magic0
	dst[1] = magic1
	dst[2] = byte(h.Version)
	binary.LittleEndian.PutUint32(dst[3:7], h.Width)
	binary.LittleEndian.PutUint32(dst[7:11], h.Height)
}

// ParseHeader reads and validates the header at the start of src.
func ParseHeader(src []byte) (Header, error) {
	if len(src) < HeaderSize {
		return Header{}, codecerr.New(codecerr.MalformedHeader, "input shorter than header")
	}
	if src[0] != magic0 || src[1] != magic1 {
		return Header{}, codecerr.New(codecerr.MalformedHeader, "bad magic")
	}
	v := Version(src[2])
	if v != VersionGray && v != VersionColor && v != VersionAlpha {
		return Header{}, codecerr.New(codecerr.MalformedHeader, "unknown version")
	}
	h := Header{
		Version: v,
		Width:   binary.LittleEndian.Uint32(src[3:7]),
		Height:  binary.LittleEndian.Uint32(src[7:11]),
	}
	if h.Width == 0 || h.Height == 0 || h.Width > config.MaxDimension || h.Height > config.MaxDimension {
		return Header{}, codecerr.New(codecerr.DimensionsOutOfRange, "width/height out of range")
	}
	if config.PixelBytesExceedsLimit(uint64(h.Width), uint64(h.Height), uint64(v.Channels())) {
		return Header{}, codecerr.New(codecerr.DimensionsOutOfRange, "pixel buffer exceeds size limit")
	}
	return h, nil
}

// PutICCSection appends a tagged, length-prefixed ICC section to dst
// and returns the extended slice. icc may be empty, in which case no
// section is written at all.
func PutICCSection(dst []byte, icc []byte) []byte {
	if len(icc) == 0 {
		return dst
	}
	dst = append(dst, iccTag[:]...)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(icc)))
	dst = append(dst, lenBuf[:]...)
	return append(dst, icc...)
}

// SplitICCSection inspects the bytes following the header: if they
// begin with the ICC tag, it returns the ICC payload and the
// remaining bytes (the entropy-coded payload); otherwise it returns a
// nil ICC slice and rest unchanged.
func SplitICCSection(afterHeader []byte) (icc []byte, rest []byte, err error) {
	if len(afterHeader) < 4 || [4]byte{afterHeader[0], afterHeader[1], afterHeader[2], afterHeader[3]} != iccTag {
		return nil, afterHeader, nil
	}
	if len(afterHeader) < 8 {
		return nil, nil, codecerr.New(codecerr.TruncatedPayload, "ICC section length truncated")
	}
	n := binary.LittleEndian.Uint32(afterHeader[4:8])
	end := 8 + uint64(n)
	if end > uint64(len(afterHeader)) {
		return nil, nil, codecerr.New(codecerr.TruncatedPayload, "ICC section body truncated")
	}
	return afterHeader[8:end], afterHeader[end:], nil
}
