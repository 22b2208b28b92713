package bjpeg

import "testing"

func testComponent(factor SamplingFactor) *Component {
	quant := StandardLumaQuantTable()
	huffman := NewHuffmanCodec(StandardLumaDCTable(), StandardLumaACTable())
	return NewComponent("Y", factor, quant, huffman, InterpolationLinear)
}

func TestComponentPreencodePadsToMCU(t *testing.T) {
	c := testComponent(SamplingFactor{2, 2})
	plane := make([][]float64, 20)
	for r := range plane {
		plane[r] = make([]float64, 30)
	}
	padded, pw, ph := c.Preencode(plane, 30, 20, SamplingFactor{2, 2})
	if pw%16 != 0 || ph%16 != 0 {
		t.Fatalf("padded size %dx%d not a multiple of 16", pw, ph)
	}
	if len(padded) != ph || len(padded[0]) != pw {
		t.Fatalf("padded plane shape %dx%d != reported %dx%d", len(padded[0]), len(padded), pw, ph)
	}
}

func TestComponentEncodeDecodeBlockThreadsPredictor(t *testing.T) {
	c := testComponent(SamplingFactor{1, 1})
	plane := make([][]float64, 8)
	for r := range plane {
		plane[r] = make([]float64, 8)
		for col := range plane[r] {
			plane[r][col] = 128
		}
	}
	state, err := c.NewEncodeScan(plane)
	if err != nil {
		t.Fatalf("NewEncodeScan error: %v", err)
	}
	bits, err := c.EncodeBlock(state, 128)
	if err != nil {
		t.Fatalf("EncodeBlock error: %v", err)
	}

	decodeState, err := c.NewDecodeScan(8, 8)
	if err != nil {
		t.Fatalf("NewDecodeScan error: %v", err)
	}
	r := NewBitReader().Feed(bits.Bytes())
	if err := c.DecodeBlock(decodeState, r, 128); err != nil {
		t.Fatalf("DecodeBlock error: %v", err)
	}
	if decodeState.Predictor != state.Predictor {
		t.Fatalf("decode predictor = %d, encode predictor = %d, want equal", decodeState.Predictor, state.Predictor)
	}

	got := decodeState.Iterator.GetAll()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			d := got[row][col] - 128
			if d < -2 || d > 2 {
				t.Fatalf("decoded[%d][%d] = %v, want close to 128", row, col, got[row][col])
			}
		}
	}
}
