package bjpeg

// SpatialBlock holds one 8x8 block of level-shifted pixel samples (raw
// sample minus the 2^(precision-1) bias) ready for the forward transform, or
// recovered by the inverse transform on decode.
type SpatialBlock [8][8]float64

// BlockCodec carries the forward path (DCT, quantize, entropy-encode) and
// inverse path (entropy-decode, dequantize, IDCT) for one 8x8 block,
// threading the DC predictor in and out.
type BlockCodec struct {
	Quant   *QuantizationTable
	Huffman *HuffmanCodec
}

// NewBlockCodec pairs a quantization table and a Huffman codec for one
// component's blocks.
func NewBlockCodec(quant *QuantizationTable, huffman *HuffmanCodec) *BlockCodec {
	return &BlockCodec{Quant: quant, Huffman: huffman}
}

// Encode runs block through the forward DCT, divides by the quantization
// table (truncating toward zero, matching a C-style integer cast), and
// entropy-encodes the result against pred. It returns the encoded bits and
// the new DC predictor.
func (b *BlockCodec) Encode(block SpatialBlock, pred int32) (*BitWriter, int32, error) {
	freq := FDCT([8][8]float64(block))

	var coefs [8][8]int32
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			coefs[r][c] = int32(freq[r][c] / float64(b.Quant[r][c]))
		}
	}

	vec := ToZigZag(coefs)
	return b.Huffman.EncodeBlock(vec, pred)
}

// Decode entropy-decodes one block's bits from r against pred, multiplies
// back by the quantization table, and applies the inverse DCT. It returns
// the recovered spatial block and the new DC predictor.
func (b *BlockCodec) Decode(r *BitReader, pred int32) (SpatialBlock, int32, error) {
	vec, newPred, err := b.Huffman.DecodeBlock(r, pred)
	if err != nil {
		return SpatialBlock{}, 0, err
	}

	coefs := FromZigZag(vec)
	var deq [8][8]float64
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			deq[row][col] = float64(coefs[row][col]) * float64(b.Quant[row][col])
		}
	}

	return SpatialBlock(IDCT(deq)), newPred, nil
}
