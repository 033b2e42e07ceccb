package flp

import "encoding/binary"

const (
	fileHeaderSize       = 14
	eventChunkHeaderSize = 8
	outerHeaderLength    = 6
	minFormat            = -1
	maxFormat            = 0x50
)

var (
	fileMagic       = [4]byte{'F', 'L', 'h', 'd'}
	eventChunkMagic = [4]byte{'F', 'L', 'd', 't'}
)

// ParsedFile is the result of decoding a .flp container.
type ParsedFile struct {
	// FileHeaderBytes is the fixed 14-byte outer "file header" chunk,
	// preserved verbatim. The outer length field within it always equals 6.
	FileHeaderBytes []byte

	// EventChunkHeaderBytes is the 8-byte prefix of the inner "event
	// chunk" (4-byte magic + 4-byte little-endian length) as parsed. Only
	// the magic is preserved on write; the length is recomputed.
	EventChunkHeaderBytes []byte

	// Events is the ordered event sequence.
	Events []Event

	// TrailingBytes holds any bytes after the event stream and before
	// end-of-file. Expected empty; retained opaquely if present.
	TrailingBytes []byte

	// DetectedVersion is the version string parsed from the "FL version"
	// event, or the sentinel "0.0.0" if none was found.
	DetectedVersion string

	// UseUnicode is true iff DetectedVersion parses as major.minor with
	// (major > 11) or (major == 11 && minor >= 5).
	UseUnicode bool
}

// Format returns the outer header's signed 16-bit format field.
func (pf ParsedFile) Format() int16 {
	return int16(binary.LittleEndian.Uint16(pf.FileHeaderBytes[8:10]))
}

// ChannelCount returns the outer header's channel count field.
func (pf ParsedFile) ChannelCount() uint16 {
	return binary.LittleEndian.Uint16(pf.FileHeaderBytes[10:12])
}

// PPQ returns the outer header's pulses-per-quarter-note field.
func (pf ParsedFile) PPQ() uint16 {
	return binary.LittleEndian.Uint16(pf.FileHeaderBytes[12:14])
}

// Parse decodes a whole-file byte buffer into a ParsedFile. On any
// structural failure it returns a typed error (see errors.go) and no
// ParsedFile: there are no partial results.
func Parse(data []byte) (ParsedFile, error) {
	if len(data) < fileHeaderSize+eventChunkHeaderSize {
		return ParsedFile{}, ErrEndOfBuffer
	}

	if !hasMagic(data, 0, fileMagic) {
		return ParsedFile{}, ErrBadMagic
	}
	headerSize := binary.LittleEndian.Uint32(data[4:8])
	if headerSize != outerHeaderLength {
		return ParsedFile{}, ErrBadHeaderSize
	}
	format := int16(binary.LittleEndian.Uint16(data[8:10]))
	if format < minFormat || format > maxFormat {
		return ParsedFile{}, ErrBadFormat
	}

	if !hasMagic(data, fileHeaderSize, eventChunkMagic) {
		return ParsedFile{}, ErrBadMagic
	}
	eventsSize := binary.LittleEndian.Uint32(data[fileHeaderSize+4 : fileHeaderSize+8])

	const streamStart = fileHeaderSize + eventChunkHeaderSize
	if uint64(len(data)) != uint64(streamStart)+uint64(eventsSize) {
		return ParsedFile{}, ErrLengthMismatch
	}

	streamEnd := streamStart + int(eventsSize)
	events, detectedVersion, err := decodeEvents(data[streamStart:streamEnd])
	if err != nil {
		return ParsedFile{}, err
	}
	if detectedVersion == "" {
		detectedVersion = "0.0.0"
	}

	return ParsedFile{
		FileHeaderBytes:       append([]byte(nil), data[0:fileHeaderSize]...),
		EventChunkHeaderBytes: append([]byte(nil), data[fileHeaderSize:streamStart]...),
		Events:                events,
		TrailingBytes:         append([]byte(nil), data[streamEnd:]...),
		DetectedVersion:       detectedVersion,
		UseUnicode:            useUnicodeFor(detectedVersion),
	}, nil
}

func hasMagic(data []byte, offset int, magic [4]byte) bool {
	return data[offset] == magic[0] && data[offset+1] == magic[1] &&
		data[offset+2] == magic[2] && data[offset+3] == magic[3]
}
