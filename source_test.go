package skipbom_test

import "io"

// stubSource delivers its queued chunks one Read call at a time. When the
// queue runs dry it reports io.EOF if the source has been ended, the
// configured terminal error if one is set, and (0, nil) otherwise, modeling
// a stream that has momentarily run out of bytes. More chunks may be
// appended later, the way a growing file or a socket would deliver them.
type stubSource struct {
	chunks   [][]byte
	ended    bool
	finalErr error
	reads    int
}

func newStubSource(chunks ...[]byte) *stubSource {
	return &stubSource{chunks: chunks}
}

func newEndedSource(chunks ...[]byte) *stubSource {
	return &stubSource{chunks: chunks, ended: true}
}

func (s *stubSource) Read(p []byte) (int, error) {
	s.reads++

	if len(s.chunks) == 0 {
		if s.finalErr != nil {
			return 0, s.finalErr
		}

		if s.ended {
			return 0, io.EOF
		}

		return 0, nil
	}

	chunk := s.chunks[0]
	n := copy(p, chunk)
	if n < len(chunk) {
		s.chunks[0] = chunk[n:]
	} else {
		s.chunks = s.chunks[1:]
	}

	return n, nil
}

func (s *stubSource) append(b []byte) {
	s.chunks = append(s.chunks, b)
}

func (s *stubSource) end() {
	s.ended = true
}

// eagerEOFSource returns its remaining bytes together with io.EOF on the
// final call, the way bytes.Reader does not but many readers may.
type eagerEOFSource struct {
	data []byte
}

func (s *eagerEOFSource) Read(p []byte) (int, error) {
	n := copy(p, s.data)
	s.data = s.data[n:]
	if len(s.data) == 0 {
		return n, io.EOF
	}

	return n, nil
}

// faultySource fails its first read with the configured error and delegates
// every later read to the wrapped source.
type faultySource struct {
	err    error
	inner  io.Reader
	failed bool
}

func (s *faultySource) Read(p []byte) (int, error) {
	if !s.failed {
		s.failed = true

		return 0, s.err
	}

	return s.inner.Read(p)
}
