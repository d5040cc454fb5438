// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pideck/pideck/internal/api/info"
)

var _ = Describe("firmware.go", func() {
	Describe("parseVcgenTemp", func() {
		It("should parse a firmware temperature reading", func() {
			Expect(parseVcgenTemp("temp=48.3'C\n")).To(Equal(48.3))
		})
		It("should reject output without a separator", func() {
			_, err := parseVcgenTemp("garbage")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("parseVcgenVolts", func() {
		It("should parse a core voltage reading", func() {
			Expect(parseVcgenVolts("volt=0.8500V\n")).To(Equal(0.85))
		})
	})

	Describe("parseVcgenClock", func() {
		It("should parse a clock reading in Hz", func() {
			Expect(parseVcgenClock("frequency(48)=1500398464\n")).To(Equal(uint64(1500398464)))
		})
	})

	Describe("parseVcgenThrottled", func() {
		It("should decode the live and occurred flag groups", func() {
			throttle, err := parseVcgenThrottled("throttled=0x50005\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(throttle).To(Equal(info.Throttle{
				UnderVoltage:         true,
				Throttled:            true,
				UnderVoltageOccurred: true,
				ThrottlingOccurred:   true,
			}))
		})

		It("should decode a clean state", func() {
			throttle, err := parseVcgenThrottled("throttled=0x0")
			Expect(err).NotTo(HaveOccurred())
			Expect(throttle).To(Equal(info.Throttle{}))
		})

		It("should reject a non-hex mask", func() {
			_, err := parseVcgenThrottled("throttled=0xzz")
			Expect(err).To(HaveOccurred())
		})
	})
})
