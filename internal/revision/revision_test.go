// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package revision

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decode", func() {
	Describe("legacy scheme", func() {
		It("should decode every known legacy code to its documented board", func() {
			for code, want := range legacyBoards {
				got, err := Decode(fmt.Sprintf("%04x", code))
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(BoardInfo{
					Scheme:       SchemeOld,
					Model:        want.model,
					Revision:     want.revision,
					RAMMB:        want.ramMB,
					Manufacturer: want.manufacturer,
					Processor:    want.processor,
				}), "code %04x", code)
			}
		})

		It("should decode code 0002 to an Egoman Model B 1.0 with 256MB", func() {
			got, err := Decode("0002")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Model).To(Equal("Model B"))
			Expect(got.Revision).To(Equal("1.0"))
			Expect(got.RAMMB).To(Equal(256))
			Expect(got.Manufacturer).To(Equal("Egoman"))
			Expect(got.Scheme).To(Equal(SchemeOld))
		})

		It("should ignore the old warranty bit when looking up the table", func() {
			plain, err := Decode("000e")
			Expect(err).NotTo(HaveOccurred())
			voided, err := Decode("100000e")
			Expect(err).NotTo(HaveOccurred())
			Expect(voided).To(Equal(plain))
		})

		It("should return unknown sentinels for an unmapped legacy code", func() {
			got, err := Decode("0000")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(BoardInfo{
				Scheme:       SchemeOld,
				Model:        Unknown,
				Revision:     Unknown,
				Manufacturer: Unknown,
				Processor:    Unknown,
			}))
		})
	})

	Describe("new scheme", func() {
		It("should decode a Raspberry Pi 4 Model B code", func() {
			got, err := Decode("a03111")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(BoardInfo{
				Scheme:       SchemeNew,
				Model:        "4 Model B",
				Revision:     "1.1",
				RAMMB:        1024,
				Manufacturer: "Sony UK",
				Processor:    "BCM2711",
			}))
		})

		It("should decode a Raspberry Pi Zero 2 W code", func() {
			got, err := Decode("902120")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Model).To(Equal("Zero 2 W"))
			Expect(got.Revision).To(Equal("1.0"))
			Expect(got.RAMMB).To(Equal(512))
			Expect(got.Processor).To(Equal("BCM2837"))
		})

		It("should accept a 0x prefix and surrounding whitespace", func() {
			got, err := Decode("  0xa03111\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Model).To(Equal("4 Model B"))
		})

		It("should recover every model table entry from a synthetic code", func() {
			for index, name := range models {
				code := uint32(newSchemeFlag) | index<<modelShift
				Expect(DecodeCode(code).Model).To(Equal(name), "model index %#x", index)
			}
		})

		It("should recover every processor table entry from a synthetic code", func() {
			for index, name := range processors {
				code := uint32(newSchemeFlag) | uint32(index)<<processorShift
				Expect(DecodeCode(code).Processor).To(Equal(name), "processor index %d", index)
			}
		})

		It("should recover every manufacturer table entry from a synthetic code", func() {
			for index, name := range manufacturers {
				code := uint32(newSchemeFlag) | uint32(index)<<manufacturerShift
				Expect(DecodeCode(code).Manufacturer).To(Equal(name), "manufacturer index %d", index)
			}
		})

		It("should recover every memory table entry from a synthetic code", func() {
			for index, size := range memorySizesMB {
				code := uint32(newSchemeFlag) | uint32(index)<<memoryShift
				Expect(DecodeCode(code).RAMMB).To(Equal(size), "memory index %d", index)
			}
		})

		It("should change only the memory field when only the memory bits change", func() {
			base := DecodeCode(0xa03111)
			for index := range memorySizesMB {
				code := uint32(0xa03111)&^uint32(memoryMask<<memoryShift) | uint32(index)<<memoryShift
				got := DecodeCode(code)
				Expect(got.RAMMB).To(Equal(memorySizesMB[index]))
				got.RAMMB = base.RAMMB
				Expect(got).To(Equal(base), "memory index %d must not leak into other fields", index)
			}
		})

		It("should read the warranty and OTP bits individually", func() {
			Expect(DecodeCode(newSchemeFlag).OvervoltageAllowed).To(BeFalse())
			Expect(DecodeCode(newSchemeFlag | overvoltageBit).OvervoltageAllowed).To(BeTrue())
			Expect(DecodeCode(newSchemeFlag | otpProgramBit).OTPProgramProtected).To(BeTrue())
			Expect(DecodeCode(newSchemeFlag | otpReadBit).OTPReadProtected).To(BeTrue())
		})

		It("should sentinel only the out-of-range subfield", func() {
			// Memory bits 111 are beyond the mapped table.
			code := uint32(0xa03111)&^uint32(memoryMask<<memoryShift) | memoryMask<<memoryShift
			got := DecodeCode(code)
			Expect(got.RAMMB).To(BeZero())
			Expect(got.Model).To(Equal("4 Model B"))
			Expect(got.Processor).To(Equal("BCM2711"))
			Expect(got.Manufacturer).To(Equal("Sony UK"))

			// Processor index 0xF is unmapped.
			code = uint32(newSchemeFlag) | 0xF<<processorShift | 0x11<<modelShift
			got = DecodeCode(code)
			Expect(got.Processor).To(Equal(Unknown))
			Expect(got.Model).To(Equal("4 Model B"))

			// Model index 0x07 is an unreleased gap.
			got = DecodeCode(newSchemeFlag | 0x07<<modelShift)
			Expect(got.Model).To(Equal(Unknown))
			Expect(got.Processor).To(Equal("BCM2835"))
		})
	})

	Describe("purity", func() {
		It("should yield structurally equal results on repeated calls", func() {
			first, err := Decode("c03114")
			Expect(err).NotTo(HaveOccurred())
			second, err := Decode("c03114")
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})
	})

	Describe("malformed input", func() {
		It("should reject non-hexadecimal input without partial output", func() {
			for _, raw := range []string{"", "  ", "0x", "not-a-code", "12g4", "0xzz"} {
				got, err := Decode(raw)
				Expect(err).To(MatchError(ErrMalformedCode), "input %q", raw)
				Expect(got).To(Equal(BoardInfo{}), "input %q", raw)
			}
		})

		It("should reject values wider than 32 bits", func() {
			_, err := Decode("1ffffffff")
			Expect(err).To(MatchError(ErrMalformedCode))
		})
	})
})
