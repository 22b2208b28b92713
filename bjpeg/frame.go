package bjpeg

import "image"

// FrameMeta carries the out-of-band information a decoder needs that the
// entropy-coded bitstream itself does not: the original pixel dimensions,
// sample precision, whether components were interleaved, and whether the
// frame is single-component (grey).
type FrameMeta struct {
	Width      int
	Height     int
	Precision  int
	Interleave bool
	Grey       bool
}

// Frame drives a complete encode or decode of a BGR (or single-plane grey)
// image across its components. Interleave requests MCU-interleaved scan
// order; it is silently ignored for a single-component frame, which is
// always scanned non-interleaved.
type Frame struct {
	Components []*Component
	Interleave bool
	Precision  int
}

// NewFrame builds a color frame from its Y/Cr/Cb (or fewer) components.
func NewFrame(components []*Component, interleave bool, precision int) *Frame {
	if precision == 0 {
		precision = 8
	}
	return &Frame{Components: components, Interleave: interleave, Precision: precision}
}

func (f *Frame) isGrey() bool {
	return len(f.Components) == 1
}

func (f *Frame) effectiveInterleave() bool {
	return f.Interleave && !f.isGrey()
}

func (f *Frame) maxSamplingFactor() SamplingFactor {
	maxH, maxV := 1, 1
	for _, c := range f.Components {
		if c.Factor.Horizontal > maxH {
			maxH = c.Factor.Horizontal
		}
		if c.Factor.Vertical > maxV {
			maxV = c.Factor.Vertical
		}
	}
	return SamplingFactor{Horizontal: maxH, Vertical: maxV}
}

func (f *Frame) levelShift() float64 {
	return float64(int(1) << uint(f.Precision-1))
}

// sourcePlanes splits img into one sample plane per component: a single
// luma plane for a grey frame, or Y/Cr/Cb for a color frame.
func (f *Frame) sourcePlanes(img image.Image) [][][]float64 {
	if f.isGrey() {
		plane, _, _ := GreyPlane(img)
		return [][][]float64{plane}
	}
	y, cr, cb, _, _ := SplitBGR(img)
	return [][][]float64{y, cr, cb}
}

// Encode splits img into its components, preencodes each one (resize, pad,
// level-shift), and entropy-encodes every block in the frame's scan order.
// It returns the encoded bits and the metadata a decoder needs to invert
// the process.
func (f *Frame) Encode(img image.Image) (*BitWriter, FrameMeta, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	maxFactor := f.maxSamplingFactor()
	levelShift := f.levelShift()
	planes := f.sourcePlanes(img)

	states := make([]*ScanState, len(f.Components))
	for i, c := range f.Components {
		padded, _, _ := c.Preencode(planes[i], width, height, maxFactor)
		state, err := c.NewEncodeScan(padded)
		if err != nil {
			return nil, FrameMeta{}, err
		}
		states[i] = state
	}

	result := NewBitWriter()
	interleave := f.effectiveInterleave()

	if interleave {
		mcuCount := states[0].Iterator.GroupCount()
		for i := 1; i < len(states); i++ {
			if states[i].Iterator.GroupCount() != mcuCount {
				return nil, FrameMeta{}, newError(InvalidShape,
					"component %d has %d MCU positions, component 0 has %d",
					i, states[i].Iterator.GroupCount(), mcuCount)
			}
		}
		for mcu := 0; mcu < mcuCount; mcu++ {
			for ci, c := range f.Components {
				blocksPerMCU := c.Factor.Horizontal * c.Factor.Vertical
				for b := 0; b < blocksPerMCU; b++ {
					bits, err := c.EncodeBlock(states[ci], levelShift)
					if err != nil {
						return nil, FrameMeta{}, err
					}
					result.AppendSequence(bits)
				}
			}
		}
	} else {
		for ci, c := range f.Components {
			blockCount := states[ci].Iterator.BlockCount()
			for b := 0; b < blockCount; b++ {
				bits, err := c.EncodeBlock(states[ci], levelShift)
				if err != nil {
					return nil, FrameMeta{}, err
				}
				result.AppendSequence(bits)
			}
		}
	}

	meta := FrameMeta{
		Width:      width,
		Height:     height,
		Precision:  f.Precision,
		Interleave: interleave,
		Grey:       f.isGrey(),
	}
	return result, meta, nil
}

// Decode reverses Encode: it entropy-decodes every block in the frame's
// scan order, reconstructs each component's padded plane, crops and
// upsamples it back to the frame's resolution, and merges the components
// into an image.
func (f *Frame) Decode(r *BitReader, meta FrameMeta) (image.Image, error) {
	maxFactor := f.maxSamplingFactor()
	levelShift := float64(int(1) << uint(meta.Precision-1))

	sampledSizes := make([][2]int, len(f.Components))
	paddedSizes := make([][2]int, len(f.Components))
	states := make([]*ScanState, len(f.Components))
	for i, c := range f.Components {
		sw, sh := CalculateSamplingSize(meta.Width, meta.Height, c.Factor, maxFactor)
		pw, ph := CalculatePaddingSize(sw, sh, c.Factor)
		sampledSizes[i] = [2]int{sw, sh}
		paddedSizes[i] = [2]int{pw, ph}
		state, err := c.NewDecodeScan(pw, ph)
		if err != nil {
			return nil, err
		}
		states[i] = state
	}

	if meta.Interleave {
		mcuCount := states[0].Iterator.GroupCount()
		for i := 1; i < len(states); i++ {
			if states[i].Iterator.GroupCount() != mcuCount {
				return nil, newError(InvalidShape,
					"component %d has %d MCU positions, component 0 has %d",
					i, states[i].Iterator.GroupCount(), mcuCount)
			}
		}
		for mcu := 0; mcu < mcuCount; mcu++ {
			for ci, c := range f.Components {
				blocksPerMCU := c.Factor.Horizontal * c.Factor.Vertical
				for b := 0; b < blocksPerMCU; b++ {
					if err := c.DecodeBlock(states[ci], r, levelShift); err != nil {
						return nil, err
					}
				}
			}
		}
	} else {
		for ci, c := range f.Components {
			blockCount := states[ci].Iterator.BlockCount()
			for b := 0; b < blockCount; b++ {
				if err := c.DecodeBlock(states[ci], r, levelShift); err != nil {
					return nil, err
				}
			}
		}
	}

	planes := make([][][]float64, len(f.Components))
	for i, c := range f.Components {
		planes[i] = c.Postdecode(states[i].Iterator.GetAll(),
			sampledSizes[i][0], sampledSizes[i][1], meta.Width, meta.Height)
	}

	if f.isGrey() {
		return GreyImage(planes[0], meta.Width, meta.Height), nil
	}
	return MergeYCrCb(planes[0], planes[1], planes[2], meta.Width, meta.Height), nil
}
