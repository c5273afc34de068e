// Package entropy implements BitGrain's fixed Huffman entropy codec
// (spec §4.7): canonical DC/AC code tables shared by every component,
// MSB-first bit packing, and 0xFF byte-stuffing.
//
// This supersedes the teacher's MQ arithmetic coder (internal/entropy
// in mrjoshuak-go-jpeg2000) — arithmetic coding is an explicit
// non-goal here — but keeps its habit of expressing a coder's fixed
// tables as package-level data (cf. the teacher's mqStates table).
// This package has no per-architecture variants.
package entropy

// table is a canonical Huffman table: bits[i] counts how many codes
// have length i+1, and values lists the symbols in code order. This
// is exactly the JPEG JPG/DHT table representation (Annex C).
type table struct {
	bits   [16]byte
	values []byte
}

// std DC luminance table, JPEG Annex K.3.3 (Table K.3). Used for the DC
// terms of all components; AC terms use stdACTable below (spec §4.7:
// "two canonical code tables... shared by all components").
var stdDCTable = table{
	bits: [16]byte{0, 1, 5, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	values: []byte{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11,
	},
}

// std AC luminance table, JPEG Annex K.3.3 (Table K.5). Each value
// byte packs (run<<4 | category); 0x00 is EOB, 0xF0 is ZRL.
var stdACTable = table{
	bits: [16]byte{0, 2, 1, 3, 3, 2, 4, 3, 5, 5, 4, 4, 0, 0, 1, 0x7d},
	values: []byte{
		0x01, 0x02, 0x03, 0x00, 0x04, 0x11, 0x05, 0x12,
		0x21, 0x31, 0x41, 0x06, 0x13, 0x51, 0x61, 0x07,
		0x22, 0x71, 0x14, 0x32, 0x81, 0x91, 0xa1, 0x08,
		0x23, 0x42, 0xb1, 0xc1, 0x15, 0x52, 0xd1, 0xf0,
		0x24, 0x33, 0x62, 0x72, 0x82, 0x09, 0x0a, 0x16,
		0x17, 0x18, 0x19, 0x1a, 0x25, 0x26, 0x27, 0x28,
		0x29, 0x2a, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39,
		0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49,
		0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59,
		0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69,
		0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79,
		0x7a, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89,
		0x8a, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98,
		0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7,
		0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6,
		0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3, 0xc4, 0xc5,
		0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2, 0xd3, 0xd4,
		0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda, 0xe1, 0xe2,
		0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9, 0xea,
		0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
		0xf9, 0xfa,
	},
}

// code is one entry of a built Huffman table: length in bits and the
// code value right-justified in the low bits.
type code struct {
	length uint8
	bits   uint16
}

// codeTable is a table built for encoding (symbol -> code) and
// decoding (a length-indexed map of code -> symbol, since Huffman
// codes of a given length are contiguous in a canonical table).
type codeTable struct {
	encode [256]code
	// decode[length] maps a left-justified-to-length code value to
	// the symbol, for each representable length 1..16.
	decode [17]map[uint16]byte
}

// build assigns canonical codes to t's symbols in order (JPEG Annex
// C.2: shortest codes first, lexicographically increasing within a
// length, 0 is never all-ones for any length actually used).
func (t table) build() codeTable {
	var sizes []uint8
	for length, count := range t.bits {
		for i := 0; i < int(count); i++ {
			sizes = append(sizes, uint8(length+1))
		}
	}

	codes := make([]uint16, len(sizes))
	var c uint16
	size := sizes[0]
	k := 0
	for k < len(sizes) {
		for k < len(sizes) && sizes[k] == size {
			codes[k] = c
			c++
			k++
		}
		c <<= 1
		size++
	}

	var ct codeTable
	for i := 1; i <= 16; i++ {
		ct.decode[i] = make(map[uint16]byte)
	}
	for i, sym := range t.values {
		ct.encode[sym] = code{length: sizes[i], bits: codes[i]}
		ct.decode[sizes[i]][codes[i]] = sym
	}
	return ct
}

var (
	dcCodes = stdDCTable.build()
	acCodes = stdACTable.build()
)
