package plugindata

import "testing"

func record(subID uint32, payload []byte) []byte {
	out := make([]byte, 0, 12+len(payload))
	out = append(out, byte(subID), byte(subID>>8), byte(subID>>16), byte(subID>>24))
	size := uint64(len(payload))
	low := uint32(size)
	high := uint32(size >> 32)
	out = append(out, byte(low), byte(low>>8), byte(low>>16), byte(low>>24))
	out = append(out, byte(high), byte(high>>8), byte(high>>16), byte(high>>24))
	out = append(out, payload...)
	return out
}

func buildPayload(records ...[]byte) []byte {
	out := []byte{0, 0, 0, 0} // wrapper marker
	for _, r := range records {
		out = append(out, r...)
	}
	return out
}

func TestParsePluginAndVendorName(t *testing.T) {
	payload := buildPayload(
		record(SubIDPluginName, []byte("FruityWrapper")),
		record(SubIDVendorName, []byte("Image-Line")),
	)
	records, err := Parse(payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	name, ok := PluginName(records)
	if !ok || name != "FruityWrapper" {
		t.Fatalf("PluginName() = %q, %v", name, ok)
	}
	vendor, ok := VendorName(records)
	if !ok || vendor != "Image-Line" {
		t.Fatalf("VendorName() = %q, %v", vendor, ok)
	}
}

func TestParseEmptyAfterMarker(t *testing.T) {
	records, err := Parse([]byte{0, 0, 0, 0})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected 0 records, got %d", len(records))
	}
}

func TestParseTooShortForMarker(t *testing.T) {
	if _, err := Parse([]byte{1, 2}); err == nil {
		t.Fatalf("expected error for payload shorter than the wrapper marker")
	}
}

func TestParseTruncatedRecordHeader(t *testing.T) {
	payload := append(buildPayload(), 1, 2, 3) // marker + 3 stray bytes, not a full 12-byte header
	if _, err := Parse(payload); err == nil {
		t.Fatalf("expected error for truncated record header")
	}
}

func TestParseOverrunningRecordPayload(t *testing.T) {
	rec := record(SubIDPluginName, []byte("ABCDEFGH"))
	payload := buildPayload(rec)
	payload = payload[:len(payload)-4] // lop off the tail so the declared size overruns
	if _, err := Parse(payload); err == nil {
		t.Fatalf("expected error for record payload overrunning the buffer")
	}
}

func TestMissingSubIDsReportNotFound(t *testing.T) {
	records, err := Parse(buildPayload(record(99, []byte("x"))))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := PluginName(records); ok {
		t.Fatalf("expected PluginName not found")
	}
	if _, ok := VendorName(records); ok {
		t.Fatalf("expected VendorName not found")
	}
}
