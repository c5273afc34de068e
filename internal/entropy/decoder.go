package entropy

import (
	"bytes"
	"io"

	"github.com/IRodriguez13/bitgrain/internal/bio"
	"github.com/IRodriguez13/bitgrain/internal/zigzag"
)

// Decoder reads one component's Huffman-coded, byte-stuffed bit
// stream back into (dcDiff, acSymbols) pairs (spec §4.7, decoder
// contract).
type Decoder struct {
	br *bio.Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r *bytes.Reader) *Decoder {
	return &Decoder{br: bio.NewReader(r)}
}

// DecodeBlock reads one block's DC difference and AC symbols (through
// EOB). Any bit pattern that matches no table entry, or running past
// the end of the payload, surfaces as an error; the root decode driver
// maps both cases to MalformedPayload.
func (d *Decoder) DecodeBlock() (dcDiff int32, ac []zigzag.Symbol, err error) {
	cat, err := d.decodeSymbol(dcCodes)
	if err != nil {
		return 0, nil, err
	}
	if cat != 0 {
		bits, err := d.br.ReadBits(uint(cat))
		if err != nil {
			return 0, nil, wrapReadErr(err)
		}
		dcDiff = unmagnitude(bits, cat)
	}

	ac = make([]zigzag.Symbol, 0, 16)
	pos := 1
	for pos < 64 {
		sym, err := d.decodeSymbol(acCodes)
		if err != nil {
			return 0, nil, err
		}
		switch {
		case sym == 0x00:
			ac = append(ac, zigzag.Symbol{Run: 0, Value: 0})
			return dcDiff, ac, nil
		case sym == 0xF0:
			ac = append(ac, zigzag.Symbol{Run: zigzag.MaxRun, Value: 0})
			pos += zigzag.MaxRun + 1
			continue
		}
		run := sym >> 4
		acCat := sym & 0x0F
		bits, err := d.br.ReadBits(uint(acCat))
		if err != nil {
			return 0, nil, wrapReadErr(err)
		}
		v := unmagnitude(bits, acCat)
		ac = append(ac, zigzag.Symbol{Run: run, Value: int16(v)})
		pos += int(run) + 1
	}
	return dcDiff, ac, nil
}

// decodeSymbol walks ct bit-by-bit, matching the JPEG canonical
// property that codes of equal length are contiguous and shorter
// codes are tried first.
func (d *Decoder) decodeSymbol(ct codeTable) (byte, error) {
	var code uint16
	for length := uint8(1); length <= 16; length++ {
		bit, err := d.br.ReadBits(1)
		if err != nil {
			return 0, wrapReadErr(err)
		}
		code = code<<1 | uint16(bit)
		if sym, ok := ct.decode[length][code]; ok {
			return sym, nil
		}
	}
	return 0, &errNoCode{table: "decode", sym: byte(code)}
}

func wrapReadErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
