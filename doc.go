// Package flp implements the FL Studio project file (.flp) binary container:
// an event-tagged, length-ambiguous legacy format that must round-trip
// byte-for-byte when unchanged and byte-conservatively when edited.
//
// The format is a flat event stream wrapped by two small fixed chunks (an
// outer "file header" and an inner "event chunk"). Each event in the stream
// carries an ID byte that selects its payload size by range: fixed 1/2/4-byte
// payloads for most ranges, and a 7-bit variable-length-integer (VLI) encoded
// size for TEXT/DATA-range events. One range — unknown DWORD-range IDs — is
// ambiguous: the payload may be a fixed 4 bytes or a VLI-prefixed variable
// payload, and the decoder must guess using a bounded look-ahead heuristic
// (see decoder.go and lookahead.go).
//
// Parsing is synchronous, single-threaded per call, and allocates only
// memory: Parse copies event framing/payload out of the input buffer, so
// callers may reuse or free that buffer immediately after Parse returns.
// Patch is a pure function from (ParsedFile, transform) to a new ParsedFile;
// Serialize is infallible given a well-formed ParsedFile.
package flp
