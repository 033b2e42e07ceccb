package flp

// Patch applies f to every event in pf, producing a new ParsedFile. f may
// change an event's ID, Payload, and Kind; Patch itself decides what
// happens to Framing, so that untouched events round-trip byte-exact (§4.5,
// tested property 3):
//
//   - If f left Payload pointing at the exact same backing array as the
//     original (not merely equal bytes — see samePayload) and ID unchanged,
//     the original Framing is kept unchanged.
//   - Otherwise, if the original event was synthesized (empty Framing),
//     Framing stays empty and Serialize synthesizes it at write time.
//   - Otherwise, if the original Framing carried a VLI size prefix
//     (length > 1), Framing is rebuilt from the new ID and payload length.
//   - Otherwise (a fixed-range event whose ID or payload changed), Framing
//     becomes a single byte holding the new ID.
//
// pf itself is not mutated; Patch returns a new value with a new Events
// slice, per the copy-on-write model in §3.
func Patch(pf ParsedFile, f func(Event, int) Event) ParsedFile {
	newEvents := make([]Event, len(pf.Events))
	for i, e := range pf.Events {
		updated := f(e, i)
		updated.Framing = reframe(e, updated)
		newEvents[i] = updated
	}
	out := pf
	out.Events = newEvents
	return out
}

func reframe(orig, updated Event) []byte {
	if orig.ID == updated.ID && samePayload(orig.Payload, updated.Payload) {
		return orig.Framing
	}
	if len(orig.Framing) == 0 {
		return nil
	}
	if len(orig.Framing) > 1 {
		out := make([]byte, 0, 1+4)
		out = append(out, updated.ID)
		out = append(out, EncodeVLI(uint64(len(updated.Payload)))...)
		return out
	}
	return []byte{updated.ID}
}

// samePayload reports whether a and b are the same slice of the same
// backing array — reference identity, not value equality, per the design
// note that a transform which merely copies equal bytes into a new slice is
// not "untouched" for framing purposes.
func samePayload(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

// FindFirst returns the first event with the given ID, if any.
func FindFirst(pf ParsedFile, id byte) (Event, bool) {
	for _, e := range pf.Events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// FindAll returns every event with the given ID, in stream order.
func FindAll(pf ParsedFile, id byte) []Event {
	var out []Event
	for _, e := range pf.Events {
		if e.ID == id {
			out = append(out, e)
		}
	}
	return out
}
