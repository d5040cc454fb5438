// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pideck/pideck/internal/revision"
)

const sampleCPUInfo = `processor	: 0
BogoMIPS	: 108.00
Features	: fp asimd evtstrm crc32 cpuid
CPU implementer	: 0x41
CPU architecture: 8
CPU variant	: 0x0
CPU part	: 0xd08
CPU revision	: 3

Hardware	: BCM2711
Revision	: a03111
Serial		: 10000000abcdef01
Model		: Raspberry Pi 4 Model B Rev 1.1
`

var _ = Describe("board.go", func() {
	Describe("parseCPUInfo", func() {
		It("should pick the board identity lines out of cpuinfo", func() {
			fields, err := parseCPUInfo(strings.NewReader(sampleCPUInfo))
			Expect(err).NotTo(HaveOccurred())
			Expect(fields.revision).To(Equal("a03111"))
			Expect(fields.serial).To(Equal("10000000abcdef01"))
			Expect(fields.hardware).To(Equal("BCM2711"))
			Expect(fields.model).To(Equal("Raspberry Pi 4 Model B Rev 1.1"))
		})

		It("should return empty fields for a non-Pi cpuinfo", func() {
			fields, err := parseCPUInfo(strings.NewReader("processor\t: 0\nvendor_id\t: GenuineIntel\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(fields.revision).To(BeEmpty())
		})
	})

	Describe("buildBoard", func() {
		It("should combine the devicetree model with the decoded code", func() {
			fields, err := parseCPUInfo(strings.NewReader(sampleCPUInfo))
			Expect(err).NotTo(HaveOccurred())

			board, err := buildBoard(fields, "Raspberry Pi 4 Model B Rev 1.1")
			Expect(err).NotTo(HaveOccurred())
			Expect(board.Model).To(Equal("Raspberry Pi 4 Model B Rev 1.1"))
			Expect(board.ModelName).To(Equal("4 Model B"))
			Expect(board.Scheme).To(Equal("new"))
			Expect(board.Revision).To(Equal("1.1"))
			Expect(board.RAMMB).To(Equal(1024))
			Expect(board.Manufacturer).To(Equal("Sony UK"))
			Expect(board.Processor).To(Equal("BCM2711"))
			Expect(board.Serial).To(Equal("10000000abcdef01"))
		})

		It("should fall back to the cpuinfo model line without a devicetree", func() {
			fields, err := parseCPUInfo(strings.NewReader(sampleCPUInfo))
			Expect(err).NotTo(HaveOccurred())

			board, err := buildBoard(fields, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(board.Model).To(Equal("Raspberry Pi 4 Model B Rev 1.1"))
		})

		It("should surface a malformed revision code with a partial board", func() {
			board, err := buildBoard(cpuInfoFields{revision: "zz-not-hex", serial: "s"}, "Some Board")
			Expect(err).To(MatchError(revision.ErrMalformedCode))
			Expect(board.Model).To(Equal("Some Board"))
			Expect(board.ModelName).To(BeEmpty())
		})
	})
})
