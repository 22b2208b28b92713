package bjpeg

import "math"

// QuantizationTable is an 8x8 matrix of positive integers used to divide (on
// encode) or multiply (on decode) DCT coefficients.
type QuantizationTable [8][8]int

// NewQuantizationTable validates that every entry is positive and returns the
// table; a non-positive entry is an InvalidTable error.
func NewQuantizationTable(values [8][8]int) (*QuantizationTable, error) {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if values[r][c] <= 0 {
				return nil, newError(InvalidTable, "quantization table entry [%d][%d]=%d must be positive", r, c, values[r][c])
			}
		}
	}
	t := QuantizationTable(values)
	return &t, nil
}

// scaleFactor implements the JPEG quality-to-scale-factor formula.
// quality must already be known to be in [1, 99].
func scaleFactor(quality int) float64 {
	if quality <= 50 {
		return 50.0 / float64(quality)
	}
	return 2.0 - 0.02*float64(quality)
}

// Scale returns a new table with every entry multiplied by the quality's
// scale factor, rounded, and clamped to [1, 255].
//
// quality must be in [1, 99]; quality == 100 and any value outside [1, 99]
// is rejected as InvalidQuality rather than propagated as a sentinel.
func (t *QuantizationTable) Scale(quality int) (*QuantizationTable, error) {
	if quality < 1 || quality > 99 {
		return nil, newError(InvalidQuality, "quality %d outside [1, 99]", quality)
	}
	factor := scaleFactor(quality)
	var out QuantizationTable
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			v := int(math.Round(float64(t[r][c]) * factor))
			if v < 1 {
				v = 1
			} else if v > 255 {
				v = 255
			}
			out[r][c] = v
		}
	}
	return &out, nil
}

func mustQuantizationTable(values [8][8]int) *QuantizationTable {
	t, err := NewQuantizationTable(values)
	if err != nil {
		panic(err)
	}
	return t
}

// StandardLumaQuantTable returns the Annex K baseline luminance quantization table.
func StandardLumaQuantTable() *QuantizationTable {
	return mustQuantizationTable([8][8]int{
		{16, 11, 10, 16, 24, 40, 51, 61},
		{12, 12, 14, 19, 26, 58, 60, 55},
		{14, 13, 16, 24, 40, 57, 69, 56},
		{14, 17, 22, 29, 51, 87, 80, 62},
		{18, 22, 37, 56, 68, 109, 103, 77},
		{24, 35, 55, 64, 81, 104, 113, 92},
		{49, 64, 78, 87, 103, 121, 120, 101},
		{72, 92, 95, 98, 112, 100, 103, 99},
	})
}

// StandardChromaQuantTable returns the Annex K baseline chrominance quantization table.
func StandardChromaQuantTable() *QuantizationTable {
	return mustQuantizationTable([8][8]int{
		{17, 18, 24, 47, 99, 99, 99, 99},
		{18, 21, 26, 66, 99, 99, 99, 99},
		{24, 26, 56, 99, 99, 99, 99, 99},
		{47, 66, 99, 99, 99, 99, 99, 99},
		{99, 99, 99, 99, 99, 99, 99, 99},
		{99, 99, 99, 99, 99, 99, 99, 99},
		{99, 99, 99, 99, 99, 99, 99, 99},
		{99, 99, 99, 99, 99, 99, 99, 99},
	})
}
