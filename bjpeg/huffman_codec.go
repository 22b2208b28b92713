package bjpeg

// HuffmanCodec encodes and decodes a single 64-coefficient zig-zag vector
// using one DC table and one AC table, given the caller-supplied predicted
// DC value for the block.
type HuffmanCodec struct {
	DC *HuffmanTable
	AC *HuffmanTable
}

// NewHuffmanCodec pairs a DC and an AC table for one component's blocks.
func NewHuffmanCodec(dc, ac *HuffmanTable) *HuffmanCodec {
	return &HuffmanCodec{DC: dc, AC: ac}
}

const (
	zrlSymbol = 0xF0
	eobSymbol = 0x00
)

// EncodeBlock encodes coefs (a 64-element zig-zag vector, DC at index 0)
// against pred, the predicted DC coefficient. It returns the encoded bits
// and the new predictor value, which is coefs[0].
func (h *HuffmanCodec) EncodeBlock(coefs [64]int32, pred int32) (*BitWriter, int32, error) {
	w := NewBitWriter()

	diff := coefs[0] - pred
	category := Category(diff)
	code, length, err := h.DC.CodeForSymbol(byte(category))
	if err != nil {
		return nil, 0, err
	}
	w.AppendBits(code, length)
	if category > 0 {
		w.AppendBits(EncodeMagnitude(diff, category), category)
	}

	run := 0
	for i := 1; i < 64; i++ {
		v := coefs[i]
		if v == 0 {
			run++
			continue
		}
		for run > 15 {
			code, length, err = h.AC.CodeForSymbol(zrlSymbol)
			if err != nil {
				return nil, 0, err
			}
			w.AppendBits(code, length)
			run -= 16
		}
		category = Category(v)
		rs := byte((run << 4) | category)
		code, length, err = h.AC.CodeForSymbol(rs)
		if err != nil {
			return nil, 0, err
		}
		w.AppendBits(code, length)
		w.AppendBits(EncodeMagnitude(v, category), category)
		run = 0
	}
	if run > 0 {
		code, length, err = h.AC.CodeForSymbol(eobSymbol)
		if err != nil {
			return nil, 0, err
		}
		w.AppendBits(code, length)
	}

	return w, coefs[0], nil
}

// DecodeBlock decodes one block's worth of bits from r against pred, the
// predicted DC coefficient. It returns the 64-element zig-zag vector and the
// new predictor value, which is coefs[0].
func (h *HuffmanCodec) DecodeBlock(r *BitReader, pred int32) ([64]int32, int32, error) {
	var coefs [64]int32

	dcSymbol, err := h.DC.DecodeSymbol(r)
	if err != nil {
		return coefs, 0, err
	}
	category := int(dcSymbol)
	var diff int32
	if category > 0 {
		bits, err := r.NextBits(category)
		if err != nil {
			return coefs, 0, err
		}
		diff = DecodeMagnitude(bits, category)
	}
	coefs[0] = pred + diff

	k := 1
	for k < 64 {
		rs, err := h.AC.DecodeSymbol(r)
		if err != nil {
			return coefs, 0, err
		}
		run := int(rs >> 4)
		size := int(rs & 0x0F)
		k += run
		if size > 0 {
			if k >= 64 {
				return coefs, 0, newError(CorruptStream, "ac coefficient index %d exceeds block size", k)
			}
			bits, err := r.NextBits(size)
			if err != nil {
				return coefs, 0, err
			}
			coefs[k] = DecodeMagnitude(bits, size)
			k++
		} else if rs != zrlSymbol {
			// EOB: remaining coefficients are already zero.
			break
		} else {
			// ZRL: run of 16 zeros, the 16th index stays zero.
			k++
		}
	}
	if k > 64 {
		return coefs, 0, newError(CorruptStream, "ac coefficient index %d exceeds block size", k)
	}

	return coefs, coefs[0], nil
}
