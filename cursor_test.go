package flp

import "testing"

func TestEncodeDecodeVLIRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 2, 3, 63, 64, 127, 128, 200, 16383, 16384, 1 << 20, 1<<31 - 1}
	for _, n := range cases {
		enc := EncodeVLI(n)
		got, consumed, err := DecodeVLIAt(enc, 0)
		if err != nil {
			t.Fatalf("DecodeVLIAt(%d): unexpected error: %v", n, err)
		}
		if got != n {
			t.Errorf("round-trip mismatch: encoded %d, decoded %d", n, got)
		}
		if consumed != len(enc) {
			t.Errorf("consumed %d bytes, expected %d", consumed, len(enc))
		}
	}
}

func TestEncodeVLIMinimalWidth(t *testing.T) {
	cases := map[uint64]int{
		0:     1,
		127:   1,
		128:   2,
		200:   2,
		16383: 2,
		16384: 3,
	}
	for n, wantLen := range cases {
		enc := EncodeVLI(n)
		if len(enc) != wantLen {
			t.Errorf("EncodeVLI(%d) = %v, want length %d", n, enc, wantLen)
		}
	}
}

func TestEncodeVLI200(t *testing.T) {
	// §8: payload length 200 encodes as C8 01.
	got := EncodeVLI(200)
	want := []byte{0xC8, 0x01}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("EncodeVLI(200) = % X, want % X", got, want)
	}
}

func TestDecodeVLIAtMalformed(t *testing.T) {
	buf := []byte{0x80, 0x80, 0x80}
	_, _, err := DecodeVLIAt(buf, 0)
	if err != ErrMalformedVli {
		t.Fatalf("expected ErrMalformedVli, got %v", err)
	}
}

func TestCursorReadPrimitives(t *testing.T) {
	buf := []byte{0x2A, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	c := NewCursor(buf)

	b, err := c.ReadU8()
	if err != nil || b != 0x2A {
		t.Fatalf("ReadU8 = %v, %v", b, err)
	}
	u32, err := c.ReadU32()
	if err != nil || u32 != 0x04030201 {
		t.Fatalf("ReadU32 = %#x, %v", u32, err)
	}
	if c.Remaining() != 4 {
		t.Fatalf("Remaining = %d, want 4", c.Remaining())
	}
	rest, err := c.ReadBytes(4)
	if err != nil || len(rest) != 4 {
		t.Fatalf("ReadBytes = %v, %v", rest, err)
	}
	if _, err := c.ReadU8(); err != ErrEndOfBuffer {
		t.Fatalf("expected ErrEndOfBuffer, got %v", err)
	}
}

func TestCursorWriteThenRead(t *testing.T) {
	c := NewCursor(nil)
	c.WriteU8(5)
	c.WriteU16(300)
	c.WriteVLI(200)

	r := NewCursor(c.Bytes())
	b, _ := r.ReadU8()
	if b != 5 {
		t.Fatalf("ReadU8 = %d, want 5", b)
	}
	u16, _ := r.ReadU16()
	if u16 != 300 {
		t.Fatalf("ReadU16 = %d, want 300", u16)
	}
	v, err := r.ReadVLI()
	if err != nil || v != 200 {
		t.Fatalf("ReadVLI = %d, %v", v, err)
	}
}
