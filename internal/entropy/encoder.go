package entropy

import (
	"bytes"

	"github.com/IRodriguez13/bitgrain/internal/bio"
	"github.com/IRodriguez13/bitgrain/internal/zigzag"
)

// Encoder packs zigzag-ordered, DPCM/RLE-coded block data into a
// byte-stuffed, MSB-first Huffman bit stream for one component (spec
// §4.7). The caller drives per-block DC prediction (spec §4.6); the
// Encoder only turns already-formed (dcDiff, acSymbols) pairs into
// bits.
//
// bio.Writer does the MSB-first bit packing and inserts the 0x00
// stuffing byte after every 0xFF directly, so there is no separate
// stuffing wrapper between it and the destination buffer.
type Encoder struct {
	buf *bytes.Buffer
	bw  *bio.Writer
}

// NewEncoder returns an Encoder that appends its coded bytes to buf.
func NewEncoder(buf *bytes.Buffer) *Encoder {
	return &Encoder{
		buf: buf,
		bw:  bio.NewWriter(buf),
	}
}

// EncodeBlock writes one block's DC difference and AC run-length
// symbols.
func (e *Encoder) EncodeBlock(dcDiff int32, ac []zigzag.Symbol) error {
	if err := e.encodeDC(dcDiff); err != nil {
		return err
	}
	for _, s := range ac {
		if err := e.encodeAC(s); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeDC(diff int32) error {
	cat := category(diff)
	c, ok := lookupEncode(dcCodes, cat)
	if !ok {
		return &errNoCode{table: "DC", sym: cat}
	}
	if err := e.bw.WriteBits(uint32(c.bits), uint(c.length)); err != nil {
		return err
	}
	if cat == 0 {
		return nil
	}
	return e.bw.WriteBits(magnitudeBits(diff, cat), uint(cat))
}

func (e *Encoder) encodeAC(s zigzag.Symbol) error {
	var sym byte
	switch {
	case s.IsEOB():
		sym = 0x00
	case s.IsZRL():
		sym = 0xF0
	default:
		cat := category(int32(s.Value))
		sym = s.Run<<4 | cat
	}
	c, ok := lookupEncode(acCodes, sym)
	if !ok {
		return &errNoCode{table: "AC", sym: sym}
	}
	if err := e.bw.WriteBits(uint32(c.bits), uint(c.length)); err != nil {
		return err
	}
	if s.IsEOB() || s.IsZRL() {
		return nil
	}
	cat := category(int32(s.Value))
	return e.bw.WriteBits(magnitudeBits(int32(s.Value), cat), uint(cat))
}

// Flush pads the current byte with zero bits and closes the
// underlying writer.
func (e *Encoder) Flush() error {
	return e.bw.Close()
}

// lookupEncode finds sym's canonical code. Every symbol actually
// present in the table (via build) gets length >= 1, so a zero length
// unambiguously means sym isn't covered by this table.
func lookupEncode(ct codeTable, sym byte) (code, bool) {
	c := ct.encode[sym]
	return c, c.length != 0
}
