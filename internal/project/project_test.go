package project

import (
	"bytes"
	"testing"
)

// buildFile assembles a whole-file buffer from an event-stream body, mirroring
// the root package's own test helper (format 0, 1 channel, PPQ 0x60).
func buildFile(eventStream []byte) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{'F', 'L', 'h', 'd', 0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x60, 0x00})
	buf.Write([]byte{'F', 'L', 'd', 't'})
	size := uint32(len(eventStream))
	buf.Write([]byte{byte(size), byte(size >> 8), byte(size >> 16), byte(size >> 24)})
	buf.Write(eventStream)
	return buf.Bytes()
}

func TestTitleAbsentByDefault(t *testing.T) {
	p, err := Open(buildFile(nil))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := p.Title(); got != "" {
		t.Fatalf("Title() = %q, want empty", got)
	}
}

func TestSetTitleAppendsWhenAbsent(t *testing.T) {
	p, err := Open(buildFile(nil))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	p = p.SetTitle("My Project")
	if got := p.Title(); got != "My Project" {
		t.Fatalf("Title() = %q, want %q", got, "My Project")
	}
}

func TestSetTitleReplacesExisting(t *testing.T) {
	data := buildFile([]byte{0xC8, 0x04, 'O', 'l', 'd', 0x00})
	p, err := Open(data)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := p.Title(); got != "Old" {
		t.Fatalf("Title() = %q, want %q", got, "Old")
	}
	p = p.SetTitle("New")
	if got := p.Title(); got != "New" {
		t.Fatalf("Title() = %q, want %q", got, "New")
	}
	if len(p.File.Events) != 1 {
		t.Fatalf("expected replace in place, got %d events", len(p.File.Events))
	}
}

func TestTempoReadsRawDword(t *testing.T) {
	data := buildFile([]byte{0x9C, 0x40, 0x0D, 0x03, 0x00}) // id 156, DWORD 0x00030D40 = 200000
	p, err := Open(data)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	tempo, err := p.Tempo()
	if err != nil {
		t.Fatalf("Tempo: %v", err)
	}
	if tempo != 200000 {
		t.Fatalf("Tempo() = %d, want 200000", tempo)
	}
}

func TestTempoAbsentIsError(t *testing.T) {
	p, err := Open(buildFile(nil))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := p.Tempo(); err == nil {
		t.Fatalf("expected error for absent tempo event")
	}
}

func TestSampleNamesInStreamOrder(t *testing.T) {
	data := buildFile([]byte{
		0xD9, 0x05, 'k', 'i', 'c', 'k', 0x00,
		0xD9, 0x06, 's', 'n', 'a', 'r', 'e', 0x00,
	})
	p, err := Open(data)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	names := p.SampleNames()
	if len(names) != 2 || names[0] != "kick" || names[1] != "snare" {
		t.Fatalf("SampleNames() = %v, want [kick snare]", names)
	}
}

func TestPPQAndDetectedVersionDefaults(t *testing.T) {
	p, err := Open(buildFile(nil))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if p.PPQ() != 0x60 {
		t.Fatalf("PPQ() = %d, want 0x60", p.PPQ())
	}
	if p.DetectedVersion() != "0.0.0" {
		t.Fatalf("DetectedVersion() = %q, want 0.0.0 sentinel", p.DetectedVersion())
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	data := buildFile([]byte{0x05, 0x2A})
	p, err := Open(data)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := p.Serialize(); !bytes.Equal(got, data) {
		t.Fatalf("Serialize() round-trip mismatch:\n got  % X\n want % X", got, data)
	}
}

func TestTextCodecASCIIRoundTrip(t *testing.T) {
	payload := encodeText("hello", false)
	if got := decodeText(payload, false); got != "hello" {
		t.Fatalf("decodeText(encodeText) = %q, want hello", got)
	}
	if payload[len(payload)-1] != 0 {
		t.Fatalf("expected NUL terminator, got % X", payload)
	}
}

func TestTextCodecUnicodeRoundTrip(t *testing.T) {
	payload := encodeText("héllo", true)
	if got := decodeText(payload, true); got != "héllo" {
		t.Fatalf("decodeText(encodeText) = %q, want héllo", got)
	}
	if len(payload) < 2 || payload[len(payload)-1] != 0 || payload[len(payload)-2] != 0 {
		t.Fatalf("expected 2-byte NUL terminator, got % X", payload)
	}
}
