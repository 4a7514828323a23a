package skipbom

import "bytes"

// UTF8BOMLength is the length of the UTF-8 byte order mark in bytes.
const UTF8BOMLength = 3

// UTF8BOM returns the UTF-8 byte order mark as a byte slice.
func UTF8BOM() []byte {
	return UTF8.Bytes()
}

// TrimUTF8BOM returns b with a leading UTF-8 byte order mark removed, for
// callers that already hold the whole input in memory. If the mark is
// absent, b is returned unchanged.
func TrimUTF8BOM(b []byte) []byte {
	if bytes.HasPrefix(b, bomBytes[UTF8]) {
		return b[UTF8BOMLength:]
	}

	return b
}
