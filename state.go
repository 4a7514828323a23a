package skipbom

import "bytes"

// detectionState tracks where a Reader is in its lifecycle. Resolution is
// one-way: once a reader leaves statePending it never returns to it.
type detectionState int

const (
	// statePending means too few lookahead bytes have accumulated to decide
	// whether the stream starts with a marker.
	statePending detectionState = iota
	// stateLeftover means detection has resolved but the lookahead still
	// holds bytes beyond the marker that are owed to the caller.
	stateLeftover
	// statePassthrough means detection has resolved and the lookahead is
	// drained; reads go straight to the source.
	statePassthrough
)

// classification is the outcome of scanning the lookahead against the
// candidate set.
type classification int

const (
	// classPending means at least one candidate signature extends beyond the
	// lookahead and is still consistent with it.
	classPending classification = iota
	// classMatch means the lookahead begins with a full candidate signature.
	classMatch
	// classNoMatch means no candidate is consistent with the lookahead.
	classNoMatch
)

// classify scans the candidates, which must be normalized (descending
// signature length), against the accumulated lookahead.
//
// The first full signature found prefixing the lookahead wins; because of
// the ordering it is the longest such signature in the set. A candidate
// whose signature extends beyond the lookahead but still agrees with it
// keeps detection pending, so a short signature that prefixes a longer
// viable one (UTF-16LE within UTF-32LE) never resolves early. With eof set
// the scan always decides: candidates needing more bytes are discarded,
// letting a full-length shorter match resolve at end of stream.
//
// An empty candidate set classifies as no-match immediately.
func classify(lookahead []byte, candidates []BomType, eof bool) (classification, BomType) {
	for _, candidate := range candidates {
		signature := bomBytes[candidate]
		if len(lookahead) >= len(signature) {
			if bytes.Equal(lookahead[:len(signature)], signature) {
				return classMatch, candidate
			}

			continue
		}

		if !eof && bytes.HasPrefix(signature, lookahead) {
			return classPending, 0
		}
	}

	return classNoMatch, 0
}
