package bjpeg

import "testing"

func TestNewHuffmanTableRejectsMismatchedCounts(t *testing.T) {
	bits := [17]int{}
	bits[1] = 2
	_, err := NewHuffmanTable(bits, []byte{0x00})
	if !IsKind(err, InvalidTable) {
		t.Fatalf("expected InvalidTable, got %v", err)
	}
}

func TestHuffmanTableEncodeDecodeRoundTrip(t *testing.T) {
	tables := []*HuffmanTable{
		StandardLumaDCTable(),
		StandardChromaDCTable(),
		StandardLumaACTable(),
		StandardChromaACTable(),
	}
	for _, table := range tables {
		for _, symbol := range table.Symbols {
			value, length, err := table.CodeForSymbol(symbol)
			if err != nil {
				t.Fatalf("CodeForSymbol(0x%02x) error: %v", symbol, err)
			}
			w := NewBitWriter()
			w.AppendBits(value, length)
			r := NewBitReader().Feed(w.Bytes())
			got, err := table.DecodeSymbol(r)
			if err != nil {
				t.Fatalf("DecodeSymbol error for 0x%02x: %v", symbol, err)
			}
			if got != symbol {
				t.Errorf("round trip for symbol 0x%02x produced 0x%02x", symbol, got)
			}
		}
	}
}

func TestHuffmanTablePrefixFree(t *testing.T) {
	table := StandardLumaACTable()
	codes := make(map[string]byte)
	for _, symbol := range table.Symbols {
		value, length, err := table.CodeForSymbol(symbol)
		if err != nil {
			t.Fatalf("CodeForSymbol error: %v", err)
		}
		key := ""
		for i := length - 1; i >= 0; i-- {
			if (value>>uint(i))&1 == 1 {
				key += "1"
			} else {
				key += "0"
			}
		}
		for existing := range codes {
			if len(existing) <= len(key) && existing == key[:len(existing)] {
				t.Fatalf("code %q for 0x%02x is a prefix of %q", existing, symbol, key)
			}
			if len(key) <= len(existing) && key == existing[:len(key)] {
				t.Fatalf("code %q for 0x%02x has %q as a prefix", key, symbol, existing)
			}
		}
		codes[key] = symbol
	}
}
