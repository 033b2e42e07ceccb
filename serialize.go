package flp

import "encoding/binary"

// Serialize reconstructs a whole file buffer from pf: the outer file header
// verbatim, the event chunk magic verbatim with its length field
// recomputed, each event's framing+payload in order, then any trailing
// bytes. No other field is regenerated — the outer header's semantic
// fields are never re-derived, since legacy files may carry non-canonical
// but valid header bytes that must be preserved.
func Serialize(pf ParsedFile) []byte {
	eventBytes := serializeEvents(pf.Events)
	eventsSize := uint32(len(eventBytes) + len(pf.TrailingBytes))

	out := make([]byte, 0, fileHeaderSize+eventChunkHeaderSize+len(eventBytes)+len(pf.TrailingBytes))
	out = append(out, pf.FileHeaderBytes...)
	out = append(out, pf.EventChunkHeaderBytes[0:4]...)
	lenBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(lenBuf, eventsSize)
	out = append(out, lenBuf...)
	out = append(out, eventBytes...)
	out = append(out, pf.TrailingBytes...)
	return out
}

func serializeEvents(events []Event) []byte {
	var out []byte
	for _, e := range events {
		framing := e.Framing
		if len(framing) == 0 {
			framing = synthesizeFraming(e)
		}
		out = append(out, framing...)
		out = append(out, e.Payload...)
	}
	return out
}

// synthesizeFraming builds framing for an event that carries none (i.e. one
// created via CreateEvent rather than parsed): just the ID byte for
// fixed-range events, or the ID byte plus a minimal VLI size for
// TEXT/DATA-range events.
func synthesizeFraming(e Event) []byte {
	if fixedSize(e.ID) >= 0 {
		return []byte{e.ID}
	}
	out := make([]byte, 0, 1+4)
	out = append(out, e.ID)
	out = append(out, EncodeVLI(uint64(len(e.Payload)))...)
	return out
}
