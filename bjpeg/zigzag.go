package bjpeg

// ZigZagOrder maps an 8x8 coefficient position [row][col] to its index in the
// standard JPEG zig-zag scan (DC at index 0, increasing spatial frequency).
var ZigZagOrder = [8][8]int{
	{0, 1, 5, 6, 14, 15, 27, 28},
	{2, 4, 7, 13, 16, 26, 29, 42},
	{3, 8, 12, 17, 25, 30, 41, 43},
	{9, 11, 18, 24, 31, 40, 44, 53},
	{10, 19, 23, 32, 39, 45, 52, 54},
	{20, 22, 33, 38, 46, 51, 55, 60},
	{21, 34, 37, 47, 50, 56, 59, 61},
	{35, 36, 48, 49, 57, 58, 62, 63},
}

// ToZigZag converts an 8x8 coefficient matrix to a 64-element zig-zag vector.
func ToZigZag(block [8][8]int32) [64]int32 {
	var vec [64]int32
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			vec[ZigZagOrder[r][c]] = block[r][c]
		}
	}
	return vec
}

// FromZigZag converts a 64-element zig-zag vector back to an 8x8 matrix.
// FromZigZag(ToZigZag(m)) == m for every m, and vice versa.
func FromZigZag(vec [64]int32) [8][8]int32 {
	var block [8][8]int32
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			block[r][c] = vec[ZigZagOrder[r][c]]
		}
	}
	return block
}
