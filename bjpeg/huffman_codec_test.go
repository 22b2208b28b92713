package bjpeg

import "testing"

func TestHuffmanCodecBlockRoundTrip(t *testing.T) {
	codec := NewHuffmanCodec(StandardLumaDCTable(), StandardLumaACTable())

	var coefs [64]int32
	coefs[0] = 12
	coefs[17] = 7 // preceded by 16 zeros, exercises a ZRL escape
	coefs[63] = -3

	bits, newPred, err := codec.EncodeBlock(coefs, 5)
	if err != nil {
		t.Fatalf("EncodeBlock error: %v", err)
	}
	if newPred != 12 {
		t.Fatalf("new predictor = %d, want 12", newPred)
	}

	r := NewBitReader().Feed(bits.Bytes())
	decoded, decPred, err := codec.DecodeBlock(r, 5)
	if err != nil {
		t.Fatalf("DecodeBlock error: %v", err)
	}
	if decPred != 12 {
		t.Fatalf("decoded predictor = %d, want 12", decPred)
	}
	if decoded != coefs {
		t.Fatalf("decoded coefficients = %v, want %v", decoded, coefs)
	}
}

func TestHuffmanCodecAllZeroACBlock(t *testing.T) {
	codec := NewHuffmanCodec(StandardLumaDCTable(), StandardLumaACTable())

	var coefs [64]int32
	coefs[0] = -4

	bits, _, err := codec.EncodeBlock(coefs, 0)
	if err != nil {
		t.Fatalf("EncodeBlock error: %v", err)
	}
	r := NewBitReader().Feed(bits.Bytes())
	decoded, _, err := codec.DecodeBlock(r, 0)
	if err != nil {
		t.Fatalf("DecodeBlock error: %v", err)
	}
	if decoded != coefs {
		t.Fatalf("decoded = %v, want %v", decoded, coefs)
	}
}

func TestHuffmanCodecDCPredictorChaining(t *testing.T) {
	codec := NewHuffmanCodec(StandardLumaDCTable(), StandardLumaACTable())
	values := []int32{10, 12, 8, 8, -20}

	w := NewBitWriter()
	pred := int32(0)
	for _, v := range values {
		var coefs [64]int32
		coefs[0] = v
		bits, newPred, err := codec.EncodeBlock(coefs, pred)
		if err != nil {
			t.Fatalf("EncodeBlock(%d) error: %v", v, err)
		}
		w.AppendSequence(bits)
		pred = newPred
	}

	r := NewBitReader().Feed(w.Bytes())
	pred = 0
	for _, want := range values {
		decoded, newPred, err := codec.DecodeBlock(r, pred)
		if err != nil {
			t.Fatalf("DecodeBlock error: %v", err)
		}
		if decoded[0] != want {
			t.Fatalf("decoded DC = %d, want %d", decoded[0], want)
		}
		pred = newPred
	}
}
