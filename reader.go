// Package skipbom reads a byte stream and transparently skips the byte
// order mark at its start, if one is present.
//
// Detection is incremental: the reader buffers at most the length of the
// longest candidate signature, works with sources that deliver bytes in
// arbitrarily small pieces, and reports "not determined yet" instead of
// blocking when the source momentarily has nothing to give.
package skipbom

import "io"

// Reader wraps a byte source and strips a leading byte order mark from it,
// if one from its candidate set is present. Bytes that turn out not to be
// part of a marker are surfaced unchanged, exactly once, in their original
// order.
//
// A Reader is not safe for concurrent use; it assumes sequential calls from
// a single caller and owns its source for its lifetime.
type Reader struct {
	source     io.Reader
	candidates []BomType
	maxLen     int

	state     detectionState
	lookahead lookaheadBuffer
	// drainPos and drainEnd delimit the leftover bytes within the lookahead
	// still owed to the caller once detection has resolved.
	drainPos int
	drainEnd int

	found  BomType
	hasBom bool
}

// NewReader wraps the given source, recognizing every marker in the catalog
// by default; pass candidates to restrict the recognized set.
func NewReader(source io.Reader, candidates ...BomType) *Reader {
	if len(candidates) == 0 {
		candidates = All()
	}

	return NewReaderSet(source, candidates)
}

// NewReaderSet wraps the given source, recognizing exactly the given marker
// set. An empty set resolves to "no marker" on the first read without
// touching the source.
func NewReaderSet(source io.Reader, candidates []BomType) *Reader {
	normalized := normalizeCandidates(candidates)
	maxLen := 0
	if len(normalized) > 0 {
		// normalized is ordered by descending signature length
		maxLen = normalized[0].Len()
	}

	return &Reader{
		source:     source,
		candidates: normalized,
		maxLen:     maxLen,
	}
}

// ReadBom attempts to fully resolve marker detection, pulling from the
// source as often as needed, and returns the marker found, if any.
//
// A nil result without an error means either "no marker" or "not determined
// yet because the source has no bytes to give right now"; BomFound tells
// the two apart. Once detection has resolved, further calls return the same
// result immediately without touching the source.
func (r *Reader) ReadBom() (*BomType, error) {
	if err := r.resolveDetection(); err != nil {
		return nil, err
	}

	bom, _ := r.BomFound()

	return bom, nil
}

// BomFound reports the outcome of detection so far without advancing it.
// The determined return is false while detection is still pending; once it
// is true, a nil bom means the stream does not start with a candidate
// marker.
func (r *Reader) BomFound() (bom *BomType, determined bool) {
	if r.state == statePending {
		return nil, false
	}

	if !r.hasBom {
		return nil, true
	}

	found := r.found

	return &found, true
}

// Read implements io.Reader. While detection is pending it first drives
// detection to resolution, returning (0, nil) if the source is momentarily
// empty, so marker bytes are never surfaced by accident. Once resolved it
// drains any leftover lookahead bytes into p and then forwards directly to
// the source.
func (r *Reader) Read(p []byte) (int, error) {
	if r.state == statePending {
		if err := r.resolveDetection(); err != nil {
			return 0, err
		}

		if r.state == statePending {
			// momentarily out of data; report no progress so the caller can
			// retry once the source has more
			return 0, nil
		}
	}

	if r.state == stateLeftover {
		n := copy(p, r.lookahead.bytes()[r.drainPos:r.drainEnd])
		r.drainPos += n
		if r.drainPos < r.drainEnd {
			return n, nil
		}

		r.state = statePassthrough
		if n == len(p) {
			return n, nil
		}

		m, err := r.source.Read(p[n:])

		return n + m, err
	}

	return r.source.Read(p)
}

// Source returns the wrapped source without altering detection state, for
// collaborators that need it directly.
func (r *Reader) Source() io.Reader {
	return r.source
}

// resolveDetection pulls from the source until detection resolves or the
// source reports no bytes available right now. It is a no-op once resolved.
//
// A source error propagates unchanged and leaves detection pending; bytes
// absorbed before the error are retained in the lookahead, so a retry after
// a transient failure loses nothing.
func (r *Reader) resolveDetection() error {
	for r.state == statePending {
		cls, bom := classify(r.lookahead.bytes(), r.candidates, false)
		if cls != classPending {
			r.resolve(cls, bom)

			return nil
		}

		n, err := r.source.Read(r.lookahead.space(r.maxLen))
		r.lookahead.advance(n)

		switch {
		case err == io.EOF:
			// the source has permanently ended; a marker is only confirmed
			// at its exact full signature length, so decide with what we have
			cls, bom := classify(r.lookahead.bytes(), r.candidates, true)
			r.resolve(cls, bom)

			return nil
		case err != nil:
			return err
		case n == 0:
			// temporarily no data; stay pending
			return nil
		}
	}

	return nil
}

// resolve transitions out of statePending. On a match, exactly the
// signature length is consumed from the front of the lookahead; on
// no-match, every lookahead byte becomes ordinary data owed to the caller.
func (r *Reader) resolve(cls classification, bom BomType) {
	consumed := 0
	if cls == classMatch {
		r.found = bom
		r.hasBom = true
		consumed = bom.Len()
	}

	r.drainPos = consumed
	r.drainEnd = r.lookahead.len()
	if r.drainPos == r.drainEnd {
		r.state = statePassthrough
	} else {
		r.state = stateLeftover
	}
}
