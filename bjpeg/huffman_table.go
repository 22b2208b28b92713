package bjpeg

// HuffmanTable is a canonical Huffman code table built from a JPEG-style
// BITS/HUFFVALS spec: Bits[L] is the count of codes of length L (L in
// 1..16), Symbols holds the associated byte values in canonical code order.
type HuffmanTable struct {
	Bits    [17]int // index 1..16 used, index 0 unused
	Symbols []byte

	minCode          [17]int32
	maxCode          [17]int32
	firstSymbolIndex [17]int
	codeForSymbol    map[byte]huffCode
}

type huffCode struct {
	value  uint32
	length int
}

// NewHuffmanTable builds the canonical code assignment and the derived
// min/max/first-symbol-index decode tables from bits and symbols.
//
// Invariant: sum(bits) == len(symbols); violating it is an InvalidTable error.
func NewHuffmanTable(bits [17]int, symbols []byte) (*HuffmanTable, error) {
	total := 0
	for l := 1; l <= 16; l++ {
		total += bits[l]
	}
	if total != len(symbols) {
		return nil, newError(InvalidTable, "huffman table: sum(bits)=%d != len(symbols)=%d", total, len(symbols))
	}

	t := &HuffmanTable{
		Bits:          bits,
		Symbols:       symbols,
		codeForSymbol: make(map[byte]huffCode, len(symbols)),
	}

	var code int32
	var start int
	var symIdx int
	for l := 1; l <= 16; l++ {
		if bits[l] > 0 {
			t.minCode[l] = code
			t.firstSymbolIndex[l] = start
			for i := 0; i < bits[l]; i++ {
				t.codeForSymbol[symbols[symIdx]] = huffCode{value: uint32(code), length: l}
				code++
				symIdx++
			}
			t.maxCode[l] = code - 1
			start += bits[l]
		} else {
			t.minCode[l] = -1
			t.maxCode[l] = -1
			t.firstSymbolIndex[l] = -1
		}
		code <<= 1
	}
	return t, nil
}

// CodeForSymbol returns the canonical code and its bit length for symbol.
func (t *HuffmanTable) CodeForSymbol(symbol byte) (value uint32, length int, err error) {
	c, ok := t.codeForSymbol[symbol]
	if !ok {
		return 0, 0, newError(InvalidTable, "huffman table: no code for symbol 0x%02x", symbol)
	}
	return c.value, c.length, nil
}

// DecodeSymbol reads bits from r one at a time until a valid canonical code
// is formed, and returns the associated symbol.
func (t *HuffmanTable) DecodeSymbol(r *BitReader) (byte, error) {
	codeLen := 1
	bit, err := r.NextBit()
	if err != nil {
		return 0, err
	}
	code := int32(bit)
	for code > t.maxCode[codeLen] {
		codeLen++
		if codeLen > 16 {
			return 0, newError(CorruptStream, "huffman code exceeds 16 bits")
		}
		bit, err = r.NextBit()
		if err != nil {
			return 0, err
		}
		code = (code << 1) | int32(bit)
	}
	idx := t.firstSymbolIndex[codeLen] + int(code-t.minCode[codeLen])
	if idx < 0 || idx >= len(t.Symbols) {
		return 0, newError(CorruptStream, "huffman code decoded to out-of-range symbol index %d", idx)
	}
	return t.Symbols[idx], nil
}

func mustHuffmanTable(bits [17]int, symbols []byte) *HuffmanTable {
	t, err := NewHuffmanTable(bits, symbols)
	if err != nil {
		panic(err)
	}
	return t
}

// StandardLumaDCTable returns the Annex K baseline luminance DC table.
func StandardLumaDCTable() *HuffmanTable {
	return mustHuffmanTable(
		[17]int{0, 0, 1, 5, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		[]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	)
}

// StandardChromaDCTable returns the Annex K baseline chrominance DC table.
func StandardChromaDCTable() *HuffmanTable {
	return mustHuffmanTable(
		[17]int{0, 0, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		[]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	)
}

// StandardLumaACTable returns the Annex K baseline luminance AC table.
func StandardLumaACTable() *HuffmanTable {
	return mustHuffmanTable(
		[17]int{0, 0, 2, 1, 3, 3, 2, 4, 3, 5, 5, 4, 4, 0, 0, 1, 125},
		[]byte{
			0x01, 0x02, 0x03, 0x00, 0x04, 0x11, 0x05, 0x12, 0x21, 0x31, 0x41, 0x06, 0x13, 0x51, 0x61, 0x07,
			0x22, 0x71, 0x14, 0x32, 0x81, 0x91, 0xa1, 0x08, 0x23, 0x42, 0xb1, 0xc1, 0x15, 0x52, 0xd1, 0xf0,
			0x24, 0x33, 0x62, 0x72, 0x82, 0x09, 0x0a, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x25, 0x26, 0x27, 0x28,
			0x29, 0x2a, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49,
			0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59, 0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69,
			0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79, 0x7a, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89,
			0x8a, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98, 0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7,
			0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6, 0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3, 0xc4, 0xc5,
			0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2, 0xd3, 0xd4, 0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda, 0xe1, 0xe2,
			0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9, 0xea, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
			0xf9, 0xfa,
		},
	)
}

// StandardChromaACTable returns the Annex K baseline chrominance AC table.
func StandardChromaACTable() *HuffmanTable {
	return mustHuffmanTable(
		[17]int{0, 0, 2, 1, 2, 4, 4, 3, 4, 7, 5, 4, 4, 0, 1, 2, 119},
		[]byte{
			0x00, 0x01, 0x02, 0x03, 0x11, 0x04, 0x05, 0x21, 0x31, 0x06, 0x12, 0x41, 0x51, 0x07, 0x61, 0x71,
			0x13, 0x22, 0x32, 0x81, 0x08, 0x14, 0x42, 0x91, 0xa1, 0xb1, 0xc1, 0x09, 0x23, 0x33, 0x52, 0xf0,
			0x15, 0x62, 0x72, 0xd1, 0x0a, 0x16, 0x24, 0x34, 0xe1, 0x25, 0xf1, 0x17, 0x18, 0x19, 0x1a, 0x26,
			0x27, 0x28, 0x29, 0x2a, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48,
			0x49, 0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59, 0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68,
			0x69, 0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79, 0x7a, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87,
			0x88, 0x89, 0x8a, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98, 0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5,
			0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6, 0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3,
			0xc4, 0xc5, 0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2, 0xd3, 0xd4, 0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda,
			0xe2, 0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9, 0xea, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
			0xf9, 0xfa,
		},
	)
}
