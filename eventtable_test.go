package flp

import "testing"

func TestKindOfTotalityAndFixedRanges(t *testing.T) {
	for id := 0; id < 256; id++ {
		k := kindOf(byte(id))
		switch {
		case id < RangeWord:
			if k != KindU8 && k != KindI8 {
				t.Errorf("id %d in BYTE range has kind %v, want a fixed 1-byte kind", id, k)
			}
		case id < RangeDword:
			if k != KindU16 && k != KindI16 {
				t.Errorf("id %d in WORD range has kind %v, want a fixed 2-byte kind", id, k)
			}
		case id < RangeText:
			if k != KindU32 && k != KindI32 && k != KindF32 {
				t.Errorf("id %d in DWORD range has kind %v, want a fixed 4-byte kind", id, k)
			}
		default:
			if k != KindText && k != KindData {
				t.Errorf("id %d in TEXT/DATA range has kind %v, want text or data", id, k)
			}
		}
	}
}

func TestFixedSizeRanges(t *testing.T) {
	cases := []struct {
		id   byte
		size int
	}{
		{0, 1}, {63, 1},
		{64, 2}, {127, 2},
		{128, 4}, {191, 4},
		{192, -1}, {255, -1},
	}
	for _, c := range cases {
		if got := fixedSize(c.id); got != c.size {
			t.Errorf("fixedSize(%d) = %d, want %d", c.id, got, c.size)
		}
	}
}

func TestIsKnownDwordRangeId(t *testing.T) {
	if !isKnownDwordRangeId(eventIDTempo) {
		t.Errorf("eventIDTempo should be a known DWORD-range id")
	}
	if isKnownDwordRangeId(140) {
		t.Errorf("140 should not be a known DWORD-range id")
	}
	if isKnownDwordRangeId(5) {
		t.Errorf("BYTE-range id should never be a known DWORD-range id")
	}
	if isKnownDwordRangeId(eventIDChanName) {
		t.Errorf("a DATA-range id should never be a known DWORD-range id")
	}
}
