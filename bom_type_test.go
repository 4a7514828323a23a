package skipbom_test

import (
	"bytes"

	"github.com/jrh3k5/skipbom"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BomType", func() {
	It("carries the published signature for each marker", func() {
		expected := map[skipbom.BomType][]byte{
			skipbom.UTF8:      {0xEF, 0xBB, 0xBF},
			skipbom.UTF16LE:   {0xFF, 0xFE},
			skipbom.UTF16BE:   {0xFE, 0xFF},
			skipbom.UTF32LE:   {0xFF, 0xFE, 0x00, 0x00},
			skipbom.UTF32BE:   {0x00, 0x00, 0xFE, 0xFF},
			skipbom.UTF7:      {0x2B, 0x2F, 0x76},
			skipbom.UTF1:      {0xF7, 0x64, 0x4C},
			skipbom.UTFEBCDIC: {0xDD, 0x73, 0x66, 0x73},
			skipbom.SCSU:      {0x0E, 0xFE, 0xFF},
			skipbom.BOCU1:     {0xFB, 0xEE, 0x28},
			skipbom.GB18030:   {0x84, 0x31, 0x95, 0x33},
		}

		all := skipbom.All()
		Expect(all).To(HaveLen(len(expected)))
		for _, bomType := range all {
			Expect(bomType.Bytes()).To(Equal(expected[bomType]), "marker %s", bomType)
			Expect(bomType.Len()).To(Equal(len(expected[bomType])))
		}
	})

	It("returns an independent copy of the signature bytes", func() {
		mutated := skipbom.UTF8.Bytes()
		mutated[0] = 0x00

		Expect(skipbom.UTF8.Bytes()).To(Equal([]byte{0xEF, 0xBB, 0xBF}))
	})

	It("has exactly one prefix-related signature pair in the catalog", func() {
		// detection's longest-viable rule only has to disambiguate pairs
		// where one signature prefixes another; the catalog must not grow a
		// new pair (or a three-way ambiguity) unnoticed
		type pair struct{ shorter, longer skipbom.BomType }
		var prefixPairs []pair

		for _, a := range skipbom.All() {
			for _, b := range skipbom.All() {
				if a == b || a.Len() >= b.Len() {
					continue
				}

				if bytes.HasPrefix(b.Bytes(), a.Bytes()) {
					prefixPairs = append(prefixPairs, pair{shorter: a, longer: b})
				}
			}
		}

		Expect(prefixPairs).To(Equal([]pair{{shorter: skipbom.UTF16LE, longer: skipbom.UTF32LE}}))
	})

	It("round-trips every marker through its stable name", func() {
		for _, bomType := range skipbom.All() {
			parsed, err := skipbom.ParseBomType(bomType.String())
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(bomType))
		}
	})

	It("parses names case-insensitively", func() {
		parsed, err := skipbom.ParseBomType("UTF-16LE")
		Expect(err).ToNot(HaveOccurred())
		Expect(parsed).To(Equal(skipbom.UTF16LE))
	})

	It("rejects unknown marker names", func() {
		_, err := skipbom.ParseBomType("utf-9")
		Expect(err).To(HaveOccurred())
	})
})
