package flp

// Event is a single atomic unit of the event stream.
//
// Framing is the exact original bytes that precede the payload in the
// source file: always at least the 1-byte ID, plus a VLI-encoded size for
// TEXT/DATA-range events and for unknown-DWORD-range events resolved as
// variable-length. For any event parsed from input, Framing||Payload is a
// byte-exact copy of that event's region in the source buffer. Framing is
// empty only for events synthesized after parsing (CreateEvent); the
// serializer fills it in at write time.
type Event struct {
	ID      byte
	Kind    Kind
	Framing []byte
	Payload []byte
}

// CreateEvent builds a new event from an ID and payload. Its Kind is
// resolved from the event table and its Framing is left empty — the
// serializer synthesizes framing for any event whose Framing is empty.
func CreateEvent(id byte, payload []byte) Event {
	return Event{
		ID:      id,
		Kind:    kindOf(id),
		Payload: payload,
	}
}
