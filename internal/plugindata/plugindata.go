// Package plugindata parses the sub-format embedded inside one specific
// "plugin data" event (spec §6). This parsing is explicitly not core: the
// core decoder only ever delivers the raw payload bytes of that event; this
// package is the external collaborator that makes sense of them.
//
// Layout:
//
//	offset  size  field
//	0       4     wrapper marker (value ignored)
//	4       ...   repeated records:
//	              4   sub-id (LE)
//	              8   size, as low-u32 then high-u32 (LE)
//	              N   payload
package plugindata

import "fmt"

// Sub-ids naming the plugin and its vendor. The embedded format is a
// general key-value container; these are the two keys callers care about.
const (
	SubIDPluginName = 1
	SubIDVendorName = 2
)

// Record is one decoded sub-record from the embedded container.
type Record struct {
	SubID   uint32
	Payload []byte
}

// Parse decodes the wrapper marker and every following record. It returns
// an error if the payload is shorter than the wrapper marker, if a record
// header is truncated, or if a record's declared size would overrun the
// buffer — there is no other structural validation, matching the core's own
// "preserve, don't normalize" stance.
func Parse(payload []byte) ([]Record, error) {
	if len(payload) < 4 {
		return nil, fmt.Errorf("plugindata: payload too short for wrapper marker")
	}
	pos := 4 // skip the wrapper marker

	var records []Record
	for pos < len(payload) {
		if pos+12 > len(payload) {
			return nil, fmt.Errorf("plugindata: truncated record header at offset %d", pos)
		}
		subID := readU32(payload[pos:])
		low := readU32(payload[pos+4:])
		high := readU32(payload[pos+8:])
		size := uint64(low) | uint64(high)<<32
		pos += 12

		if uint64(pos)+size > uint64(len(payload)) {
			return nil, fmt.Errorf("plugindata: record payload overruns buffer at offset %d", pos)
		}
		records = append(records, Record{SubID: subID, Payload: payload[pos : pos+int(size)]})
		pos += int(size)
	}
	return records, nil
}

// PluginName extracts the UTF-8 plugin name from a decoded record set, if
// present.
func PluginName(records []Record) (string, bool) {
	return findUTF8(records, SubIDPluginName)
}

// VendorName extracts the UTF-8 vendor name from a decoded record set, if
// present.
func VendorName(records []Record) (string, bool) {
	return findUTF8(records, SubIDVendorName)
}

func findUTF8(records []Record, subID uint32) (string, bool) {
	for _, r := range records {
		if r.SubID == subID {
			return string(r.Payload), true
		}
	}
	return "", false
}

func readU32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
