package flp

import (
	"regexp"
	"strings"
)

// versionPattern matches a dotted version string such as "20.9.2": one or
// more digits, followed by one or more ".digits" groups.
var versionPattern = regexp.MustCompile(`^\d+(\.\d+)+$`)

// decodeEvents splits stream[0:len(stream)] (the already-sliced event-stream
// region of the source buffer) into an ordered Event sequence, per §4.3.
// detectedVersion is the first "FL version" event payload matching
// versionPattern, or "" if none was found.
func decodeEvents(stream []byte) (events []Event, detectedVersion string, err error) {
	end := len(stream)
	p := 0

	for p < end {
		id := stream[p]
		var framingLen, payloadLen int

		switch {
		case id < RangeWord:
			framingLen, payloadLen = 1, 1
		case id < RangeDword:
			framingLen, payloadLen = 1, 2
		case id < RangeText:
			if isKnownDwordRangeId(id) {
				framingLen, payloadLen = 1, 4
			} else {
				variable, size, vliLen := disambiguateUnknownDword(stream, p, end)
				if variable {
					framingLen, payloadLen = 1+vliLen, size
				} else {
					framingLen, payloadLen = 1, 4
				}
			}
		default: // TEXT or DATA range
			size, vliLen, vliErr := DecodeVLIAt(stream, p+1)
			if vliErr != nil {
				return nil, "", vliErr
			}
			framingLen, payloadLen = 1+vliLen, int(size)
		}

		if p+framingLen+payloadLen > end {
			return nil, "", ErrTruncatedEvent
		}

		framing := append([]byte(nil), stream[p:p+framingLen]...)
		payload := append([]byte(nil), stream[p+framingLen:p+framingLen+payloadLen]...)

		events = append(events, Event{
			ID:      id,
			Kind:    kindOf(id),
			Framing: framing,
			Payload: payload,
		})

		if detectedVersion == "" && id == eventIDVersion {
			if v, ok := tryParseVersion(payload); ok {
				detectedVersion = v
			}
		}

		p += framingLen + payloadLen
	}

	return events, detectedVersion, nil
}

// tryParseVersion interprets payload as an ASCII string with trailing NULs
// trimmed, and reports whether it matches versionPattern.
func tryParseVersion(payload []byte) (string, bool) {
	s := strings.TrimRight(string(payload), "\x00")
	if versionPattern.MatchString(s) {
		return s, true
	}
	return "", false
}

// useUnicodeFor reports whether detectedVersion parses as major.minor with
// (major > 11) or (major == 11 && minor >= 5), per §3. A version string that
// fails to parse, or the sentinel "0.0.0", leaves useUnicode false.
func useUnicodeFor(detectedVersion string) bool {
	if detectedVersion == "" {
		return false
	}
	parts := strings.SplitN(detectedVersion, ".", 3)
	if len(parts) < 2 {
		return false
	}
	major, ok := atoiSimple(parts[0])
	if !ok {
		return false
	}
	minor, ok := atoiSimple(parts[1])
	if !ok {
		return false
	}
	return major > 11 || (major == 11 && minor >= 5)
}

func atoiSimple(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
