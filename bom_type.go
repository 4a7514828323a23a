package skipbom

import (
	"fmt"
	"sort"
	"strings"
)

// BomType identifies a byte order mark that may appear at the start of a
// byte stream to signal its text encoding.
//
// See the BOM section of the official Unicode FAQ:
// https://www.unicode.org/faq/utf_bom.html#bom1
type BomType int

const (
	// UTF8 is the byte order mark for the UTF-8 encoding.
	UTF8 BomType = iota
	// UTF16LE is the byte order mark for the UTF-16 little-endian encoding.
	UTF16LE
	// UTF16BE is the byte order mark for the UTF-16 big-endian encoding.
	UTF16BE
	// UTF32LE is the byte order mark for the UTF-32 little-endian encoding.
	UTF32LE
	// UTF32BE is the byte order mark for the UTF-32 big-endian encoding.
	UTF32BE
	// UTF7 is the byte order mark for the UTF-7 encoding.
	UTF7
	// UTF1 is the byte order mark for the UTF-1 encoding.
	UTF1
	// UTFEBCDIC is the byte order mark for the UTF-EBCDIC encoding.
	UTFEBCDIC
	// SCSU is the byte order mark for the Standard Compression Scheme for Unicode.
	SCSU
	// BOCU1 is the byte order mark for the BOCU-1 encoding.
	BOCU1
	// GB18030 is the byte order mark for the GB18030 Chinese coded character set.
	GB18030
)

// maxBomLength is the length, in bytes, of the longest signature in the
// catalog. The lookahead buffer is sized to it.
const maxBomLength = 4

// bomBytes maps each marker to its published byte signature.
var bomBytes = [...][]byte{
	UTF8:      {0xEF, 0xBB, 0xBF},
	UTF16LE:   {0xFF, 0xFE},
	UTF16BE:   {0xFE, 0xFF},
	UTF32LE:   {0xFF, 0xFE, 0x00, 0x00},
	UTF32BE:   {0x00, 0x00, 0xFE, 0xFF},
	UTF7:      {0x2B, 0x2F, 0x76},
	UTF1:      {0xF7, 0x64, 0x4C},
	UTFEBCDIC: {0xDD, 0x73, 0x66, 0x73},
	SCSU:      {0x0E, 0xFE, 0xFF},
	BOCU1:     {0xFB, 0xEE, 0x28},
	GB18030:   {0x84, 0x31, 0x95, 0x33},
}

// bomNames maps each marker to its stable name, as used by the YAML
// candidate-set representation.
var bomNames = [...]string{
	UTF8:      "utf-8",
	UTF16LE:   "utf-16le",
	UTF16BE:   "utf-16be",
	UTF32LE:   "utf-32le",
	UTF32BE:   "utf-32be",
	UTF7:      "utf-7",
	UTF1:      "utf-1",
	UTFEBCDIC: "utf-ebcdic",
	SCSU:      "scsu",
	BOCU1:     "bocu-1",
	GB18030:   "gb18030",
}

// All returns every marker in the catalog, in declaration order.
func All() []BomType {
	all := make([]BomType, 0, len(bomBytes))
	for i := range bomBytes {
		all = append(all, BomType(i))
	}

	return all
}

// ParseBomType resolves a stable marker name (as returned by String,
// case-insensitively) back to its BomType.
func ParseBomType(name string) (BomType, error) {
	for i, bomName := range bomNames {
		if strings.EqualFold(name, bomName) {
			return BomType(i), nil
		}
	}

	return 0, fmt.Errorf("unknown byte order mark name: '%s'", name)
}

// Bytes returns a copy of the marker's published byte signature, or nil for
// a value outside the catalog.
func (t BomType) Bytes() []byte {
	if !t.valid() {
		return nil
	}

	return append([]byte(nil), bomBytes[t]...)
}

// Len returns the length of the marker's signature in bytes, or zero for a
// value outside the catalog.
func (t BomType) Len() int {
	if !t.valid() {
		return 0
	}

	return len(bomBytes[t])
}

// String returns the marker's stable name.
func (t BomType) String() string {
	if !t.valid() {
		return fmt.Sprintf("BomType(%d)", int(t))
	}

	return bomNames[t]
}

func (t BomType) valid() bool {
	return t >= 0 && int(t) < len(bomBytes)
}

// normalizeCandidates deduplicates a candidate set, discards values outside
// the catalog, and orders it by descending signature length with ties broken
// by declaration order. The ordering makes detection deterministic: a longer
// signature is always preferred over a shorter one that prefixes it.
func normalizeCandidates(candidates []BomType) []BomType {
	var seen [len(bomBytes)]bool
	normalized := make([]BomType, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.valid() || seen[candidate] {
			continue
		}
		seen[candidate] = true
		normalized = append(normalized, candidate)
	}

	sort.SliceStable(normalized, func(i, j int) bool {
		if li, lj := normalized[i].Len(), normalized[j].Len(); li != lj {
			return li > lj
		}

		return normalized[i] < normalized[j]
	})

	return normalized
}
