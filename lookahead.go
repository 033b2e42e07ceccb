package flp

import "github.com/sonicvault/flp/internal/logger"

// lookaheadWindow bounds how far the scorer walks forward from a candidate
// next-event offset: far enough to find corroborating structure, not so far
// that a single tiebreak becomes an expensive re-parse of the rest of the
// file.
const lookaheadWindow = 200

// rejectedScore is returned for a hypothesis whose forward walk runs into an
// invalid or over-running VLI — the hypothesis is certainly wrong.
const rejectedScore = -100

// disambiguateMargin biases ties toward the fixed-DWORD default, so the
// heuristic doesn't flip interpretations on inputs whose local structure is
// uninformative.
const disambiguateMargin = 2

// disambiguateUnknownDword chooses between the two payload-size hypotheses
// for an unknown DWORD-range event (§4.3.1). p is the offset of the event's
// ID byte; end is the exclusive end of the event stream.
//
// It returns variable=true with the decoded VLI size and byte length when
// the variable-length hypothesis wins; otherwise the caller should treat the
// event as a fixed 4-byte DWORD payload.
func disambiguateUnknownDword(stream []byte, p, end int) (variable bool, size int, vliLen int) {
	// Hypothesis B: a VLI size prefix at p+1.
	s, v, err := DecodeVLIAt(stream[:end], p+1)
	bRejected := err != nil || s > 100000 || p+1+v+int(s) > end
	if bRejected {
		return false, 0, 0
	}

	// Both interpretations consume the same 5 bytes for size 3; prefer the
	// fixed default to keep framing minimal and deterministic.
	if s == 3 {
		return false, 0, 0
	}

	scoreA := scoreHypothesis(stream, p+5, end)
	scoreB := scoreHypothesis(stream, p+1+v+int(s), end)
	variable = scoreB > scoreA+disambiguateMargin
	logger.TraceIf("decoder", "dword disambiguation at offset %d: fixed=%d variable=%d (size=%d) -> variable=%v",
		p, scoreA, scoreB, s, variable)
	if variable {
		return true, int(s), v
	}
	return false, 0, 0
}

// scoreHypothesis walks forward from q, up to lookaheadWindow bytes or the
// event-stream end, using the simplified walker of §4.3.2, and returns a
// score where a well-aligned stream (one that quickly reaches a TEXT/DATA
// event) scores positively and a misaligned stream (long runs of small
// "BYTE range" IDs corresponding to nothing) scores negatively.
func scoreHypothesis(stream []byte, q, end int) int {
	limit := q + lookaheadWindow
	if limit > end {
		limit = end
	}

	consecutiveSmall := 0
	maxConsecutiveSmall := 0
	textDataCount := 0

	for q < limit {
		id := stream[q]
		switch {
		case id < RangeWord:
			if id < 32 && !isKnownDwordRangeId(id) {
				consecutiveSmall++
				if consecutiveSmall > maxConsecutiveSmall {
					maxConsecutiveSmall = consecutiveSmall
				}
			} else {
				consecutiveSmall = 0
			}
			q += 2
		case id < RangeDword:
			consecutiveSmall = 0
			q += 3
		case id < RangeText:
			consecutiveSmall = 0
			q += 5
		default:
			size, n, err := DecodeVLIAt(stream[:end], q+1)
			if err != nil || q+1+n+int(size) > end {
				return rejectedScore
			}
			textDataCount++
			consecutiveSmall = 0
			q = q + 1 + n + int(size)
		}
	}

	return 10*textDataCount - 3*maxConsecutiveSmall
}
