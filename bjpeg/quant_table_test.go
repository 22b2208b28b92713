package bjpeg

import "testing"

func TestNewQuantizationTableRejectsNonPositive(t *testing.T) {
	var values [8][8]int
	values[0][0] = 1
	_, err := NewQuantizationTable(values)
	if !IsKind(err, InvalidTable) {
		t.Fatalf("expected InvalidTable for zero entry, got %v", err)
	}
}

func TestScaleRejectsOutOfRangeQuality(t *testing.T) {
	table := StandardLumaQuantTable()
	for _, q := range []int{0, 100, 200, -5} {
		if _, err := table.Scale(q); !IsKind(err, InvalidQuality) {
			t.Errorf("Scale(%d) error = %v, want InvalidQuality", q, err)
		}
	}
}

func TestScaleClampsToByteRange(t *testing.T) {
	table := StandardLumaQuantTable()
	low, err := table.Scale(1)
	if err != nil {
		t.Fatalf("Scale(1) error: %v", err)
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if low[r][c] < 1 || low[r][c] > 255 {
				t.Fatalf("Scale(1)[%d][%d] = %d out of [1,255]", r, c, low[r][c])
			}
		}
	}
}

func TestScaleMonotonicWithQuality(t *testing.T) {
	table := StandardLumaQuantTable()
	low, _ := table.Scale(10)
	high, _ := table.Scale(90)
	if low[0][0] < high[0][0] {
		t.Fatalf("lower quality should not produce a smaller scaled entry: q10=%d q90=%d", low[0][0], high[0][0])
	}
}
