package bjpeg

import "testing"

func TestCategory(t *testing.T) {
	cases := []struct {
		v    int32
		want int
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{5, 3},
		{-5, 3},
		{7, 3},
		{8, 4},
		{-8, 4},
		{1023, 10},
	}
	for _, tc := range cases {
		if got := Category(tc.v); got != tc.want {
			t.Errorf("Category(%d) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestEncodeDecodeMagnitudeExamples(t *testing.T) {
	cases := []struct {
		v        int32
		category int
		want     uint32
	}{
		{1, 1, 0b1},
		{-1, 1, 0b0},
		{5, 3, 0b101},
		{-5, 3, 0b010},
	}
	for _, tc := range cases {
		got := EncodeMagnitude(tc.v, tc.category)
		if got != tc.want {
			t.Errorf("EncodeMagnitude(%d, %d) = %0*b, want %0*b", tc.v, tc.category, tc.category, got, tc.category, tc.want)
		}
	}
}

func TestMagnitudeRoundTrip(t *testing.T) {
	for v := int32(-1023); v <= 1023; v++ {
		category := Category(v)
		encoded := EncodeMagnitude(v, category)
		decoded := DecodeMagnitude(encoded, category)
		if decoded != v {
			t.Fatalf("round trip failed for %d: encoded=%d decoded=%d", v, encoded, decoded)
		}
	}
}
