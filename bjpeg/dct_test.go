package bjpeg

import "testing"

func approxEqualBlock(a, b [8][8]float64, eps float64) bool {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			d := a[r][c] - b[r][c]
			if d < 0 {
				d = -d
			}
			if d > eps {
				return false
			}
		}
	}
	return true
}

func TestIDCTInvertsFDCT(t *testing.T) {
	var block [8][8]float64
	n := 0.0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			block[r][c] = n - 64
			n++
		}
	}

	freq := FDCT(block)
	back := IDCT(freq)

	if !approxEqualBlock(back, block, 1e-9) {
		t.Fatalf("IDCT(FDCT(block)) != block\ngot  %v\nwant %v", back, block)
	}
}

func TestFDCTFlatBlockIsPureDC(t *testing.T) {
	var block [8][8]float64
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			block[r][c] = 42
		}
	}
	freq := FDCT(block)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if r == 0 && c == 0 {
				continue
			}
			if freq[r][c] > 1e-9 || freq[r][c] < -1e-9 {
				t.Fatalf("flat block produced nonzero AC coefficient at [%d][%d]: %v", r, c, freq[r][c])
			}
		}
	}
}
