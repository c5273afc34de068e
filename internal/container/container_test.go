package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IRodriguez13/bitgrain/internal/codecerr"
)

func TestHeaderRoundTrip(t *testing.T) {
	buf := make([]byte, HeaderSize)
	PutHeader(buf, Header{Version: VersionColor, Width: 640, Height: 480})

	h, err := ParseHeader(buf)
	require.NoError(t, err)
	require.Equal(t, VersionColor, h.Version)
	require.Equal(t, uint32(640), h.Width)
	require.Equal(t, uint32(480), h.Height)
}

func TestParseHeaderTooShort(t *testing.T) {
	_, err := ParseHeader(make([]byte, 5))
	kind, ok := codecerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, codecerr.MalformedHeader, kind)
}

func TestParseHeaderBadMagic(t *testing.T) {
	buf := make([]byte, HeaderSize)
	PutHeader(buf, Header{Version: VersionGray, Width: 1, Height: 1})
	buf[0] = 'X'
	_, err := ParseHeader(buf)
	kind, _ := codecerr.KindOf(err)
	require.Equal(t, codecerr.MalformedHeader, kind)
}

func TestParseHeaderZeroDimension(t *testing.T) {
	buf := make([]byte, HeaderSize)
	PutHeader(buf, Header{Version: VersionGray, Width: 0, Height: 10})
	_, err := ParseHeader(buf)
	kind, _ := codecerr.KindOf(err)
	require.Equal(t, codecerr.DimensionsOutOfRange, kind)
}

func TestICCSectionRoundTrip(t *testing.T) {
	icc := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	buf := PutICCSection(nil, icc)
	buf = append(buf, 0x01, 0x02, 0x03) // trailing payload

	gotICC, rest, err := SplitICCSection(buf)
	require.NoError(t, err)
	require.Equal(t, icc, gotICC)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, rest)
}

func TestNoICCSection(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	icc, rest, err := SplitICCSection(payload)
	require.NoError(t, err)
	require.Nil(t, icc)
	require.Equal(t, payload, rest)
}

func TestVersionForChannels(t *testing.T) {
	for channels, want := range map[int]Version{1: VersionGray, 3: VersionColor, 4: VersionAlpha} {
		v, ok := VersionForChannels(channels)
		require.True(t, ok)
		require.Equal(t, want, v)
		require.Equal(t, channels, v.Channels())
	}
	_, ok := VersionForChannels(2)
	require.False(t, ok)
}
