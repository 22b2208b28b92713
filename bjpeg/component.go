package bjpeg

// Component holds one color (or grey) component's static, immutable
// configuration: its sampling factor, quantization/Huffman tables, and
// resampling filter. All of it is read-only once built, so a single
// Component can safely drive both an encode and a decode scan
// concurrently — the per-scan cursor and DC predictor live in ScanState,
// never on Component itself.
type Component struct {
	ID     string
	Factor SamplingFactor
	Codec  *BlockCodec
	Interp Interpolation
}

// NewComponent builds a component from a quantization table, a paired
// Huffman codec, a sampling factor, and a resize filter.
func NewComponent(id string, factor SamplingFactor, quant *QuantizationTable, huffman *HuffmanCodec, interp Interpolation) *Component {
	return &Component{
		ID:     id,
		Factor: factor,
		Codec:  NewBlockCodec(quant, huffman),
		Interp: interp,
	}
}

// ScanState is the per-scan, per-component mutable state: the block cursor
// and the running DC predictor. A fresh ScanState is created for every
// encode or decode pass, so Component itself never accumulates state
// across scans.
type ScanState struct {
	Iterator  *BlockIterator
	Predictor int32
}

// Preencode resizes plane (widthxheight) to this component's sampling size
// relative to maxFactor, then pads it up to a whole number of MCUs with
// edge replication. It returns the padded plane and its dimensions.
func (c *Component) Preencode(plane [][]float64, width, height int, maxFactor SamplingFactor) (padded [][]float64, paddedWidth, paddedHeight int) {
	sw, sh := CalculateSamplingSize(width, height, c.Factor, maxFactor)
	resized := ResizePlane(plane, width, height, sw, sh, c.Interp)
	pw, ph := CalculatePaddingSize(sw, sh, c.Factor)
	padded = PadReplicate(resized, sw, sh, pw, ph)
	return padded, pw, ph
}

// Postdecode crops a decoded, padded plane down to its sampled size and
// resizes it back up to the frame's full resolution.
func (c *Component) Postdecode(plane [][]float64, sampledWidth, sampledHeight, targetWidth, targetHeight int) [][]float64 {
	cropped := CropTo(plane, sampledWidth, sampledHeight)
	return ResizePlane(cropped, sampledWidth, sampledHeight, targetWidth, targetHeight, c.Interp)
}

// NewEncodeScan attaches plane (already preencoded: resized and padded) to
// a fresh block iterator for an encode pass.
func (c *Component) NewEncodeScan(plane [][]float64) (*ScanState, error) {
	it := NewBlockIterator([2]int{c.Factor.Horizontal, c.Factor.Vertical})
	if err := it.Feed(plane); err != nil {
		return nil, err
	}
	return &ScanState{Iterator: it}, nil
}

// NewDecodeScan allocates a fresh, zero-filled block iterator of the given
// padded size for a decode pass.
func (c *Component) NewDecodeScan(paddedWidth, paddedHeight int) (*ScanState, error) {
	it := NewBlockIterator([2]int{c.Factor.Horizontal, c.Factor.Vertical})
	if err := it.Build(paddedWidth, paddedHeight); err != nil {
		return nil, err
	}
	return &ScanState{Iterator: it}, nil
}

// EncodeBlock pulls the scan's next spatial block, level-shifts it by
// -levelShift, and entropy-encodes it, threading the DC predictor through
// state.
func (c *Component) EncodeBlock(state *ScanState, levelShift float64) (*BitWriter, error) {
	block := state.Iterator.GetNext()
	for r := 0; r < 8; r++ {
		for col := 0; col < 8; col++ {
			block[r][col] -= levelShift
		}
	}
	bits, pred, err := c.Codec.Encode(block, state.Predictor)
	if err != nil {
		return nil, err
	}
	state.Predictor = pred
	return bits, nil
}

// DecodeBlock entropy-decodes the scan's next block from r, reverses the
// level shift, clamps to [0, 255], and writes it into the scan's plane,
// threading the DC predictor through state.
func (c *Component) DecodeBlock(state *ScanState, r *BitReader, levelShift float64) error {
	block, pred, err := c.Codec.Decode(r, state.Predictor)
	if err != nil {
		return err
	}
	state.Predictor = pred
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			v := block[row][col] + levelShift
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			block[row][col] = v
		}
	}
	state.Iterator.PutNext(block)
	return nil
}
