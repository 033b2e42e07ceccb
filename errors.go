package flp

import "errors"

// Decode and structural errors returned by the core. All are fatal at the
// top-level call: the decoder never attempts partial recovery, because a
// corrupt container cannot produce a trustworthy event sequence.
var (
	// ErrBadMagic is returned when an expected chunk magic ("FLhd"/"FLdt")
	// does not match.
	ErrBadMagic = errors.New("flp: bad chunk magic")

	// ErrBadHeaderSize is returned when the outer header's declared size
	// field is not 6.
	ErrBadHeaderSize = errors.New("flp: outer header size must be 6")

	// ErrBadFormat is returned when the format field falls outside [-1, 0x50].
	ErrBadFormat = errors.New("flp: format field out of range")

	// ErrLengthMismatch is returned when the file length disagrees with the
	// declared event-stream length.
	ErrLengthMismatch = errors.New("flp: file length does not match declared event-stream length")

	// ErrTruncatedEvent is returned when an event's payload would extend
	// past the end of the event stream.
	ErrTruncatedEvent = errors.New("flp: event payload truncated")

	// ErrMalformedVli is returned when a variable-length integer continues
	// past the buffer (or slice) it is being decoded from.
	ErrMalformedVli = errors.New("flp: malformed variable-length integer")

	// ErrEndOfBuffer is returned by a cursor read primitive that runs past
	// the end of its underlying buffer.
	ErrEndOfBuffer = errors.New("flp: read past end of buffer")

	// ErrKindMismatch is returned by typed accessors when a caller asks for
	// a value of one kind (e.g. numeric) from an event of another kind
	// (e.g. text). The core never returns it itself.
	ErrKindMismatch = errors.New("flp: event kind mismatch")
)
