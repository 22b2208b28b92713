package bjpeg

import "testing"

func TestParseSamplingName(t *testing.T) {
	cases := map[string]SamplingFactor{
		"444":   {1, 1},
		"422":   {2, 1},
		"420":   {2, 2},
		"440":   {1, 2},
		"411":   {4, 1},
		"410":   {4, 2},
		"4:4:4": {1, 1},
		"4:2:2": {2, 1},
		"4:2:0": {2, 2},
	}
	for name, want := range cases {
		got, err := ParseSamplingName(name)
		if err != nil {
			t.Errorf("ParseSamplingName(%q) returned error: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseSamplingName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseSamplingNameUnrecognized(t *testing.T) {
	if _, err := ParseSamplingName("bogus"); !IsKind(err, InvalidSampling) {
		t.Fatalf("ParseSamplingName(%q) error = %v, want InvalidSampling", "bogus", err)
	}
}

func TestSamplingByNameResolve(t *testing.T) {
	factors, err := SamplingByName("420").Resolve(3)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(factors) != 3 {
		t.Fatalf("Resolve(3) returned %d factors, want 3", len(factors))
	}
	if factors[0] != (SamplingFactor{2, 2}) {
		t.Errorf("luma factor = %v, want {2,2}", factors[0])
	}
	if factors[1] != (SamplingFactor{1, 1}) || factors[2] != (SamplingFactor{1, 1}) {
		t.Errorf("chroma factors = %v, %v, want {1,1}, {1,1}", factors[1], factors[2])
	}
}

func TestSamplingByNameResolveUnrecognized(t *testing.T) {
	if _, err := SamplingByName("bogus").Resolve(3); !IsKind(err, InvalidSampling) {
		t.Fatalf("Resolve error = %v, want InvalidSampling", err)
	}
}

func TestBroadcastRepeatsLastAndTruncates(t *testing.T) {
	got := Broadcast([]int{1, 2}, 4)
	want := []int{1, 2, 2, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Broadcast = %v, want %v", got, want)
		}
	}

	truncated := Broadcast([]int{1, 2, 3, 4}, 2)
	if len(truncated) != 2 || truncated[0] != 1 || truncated[1] != 2 {
		t.Fatalf("Broadcast truncation = %v, want [1 2]", truncated)
	}
}

func TestSamplingPerComponentResolve(t *testing.T) {
	factors, err := SamplingPerComponent([]SamplingFactor{{2, 2}, {1, 1}}).Resolve(3)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := []SamplingFactor{{2, 2}, {1, 1}, {1, 1}}
	for i := range want {
		if factors[i] != want[i] {
			t.Fatalf("Resolve = %v, want %v", factors, want)
		}
	}
}
