package skipbom

// lookaheadBuffer accumulates the leading bytes of a stream while marker
// detection is pending. Its capacity is fixed at the longest catalog
// signature, so detection never allocates and never reads further ahead
// than a marker could extend.
type lookaheadBuffer struct {
	buf [maxBomLength]byte
	n   int
}

// bytes returns the bytes accumulated so far.
func (b *lookaheadBuffer) bytes() []byte {
	return b.buf[:b.n]
}

// space returns the writable region up to the given limit, which must not
// exceed the buffer capacity. The caller reports how much it wrote via
// advance.
func (b *lookaheadBuffer) space(limit int) []byte {
	return b.buf[b.n:limit]
}

// advance records that n more bytes were written into space.
func (b *lookaheadBuffer) advance(n int) {
	b.n += n
}

// len returns the count of bytes accumulated so far.
func (b *lookaheadBuffer) len() int {
	return b.n
}
