// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pideck/pideck/internal/api/info"
)

var _ = Describe("wifi.go", func() {
	Describe("parseWifiList", func() {
		It("should parse terse nmcli output with escaped colons", func() {
			output := `*:HomeNet:AA\:BB\:CC\:DD\:EE\:FF:Infra:11:270 Mbit/s:82:WPA2
:Neighbour:11\:22\:33\:44\:55\:66:Infra:6:130 Mbit/s:45:WPA1 WPA2
`
			networks := parseWifiList(output)
			Expect(networks).To(Equal([]info.WifiNetwork{
				{
					InUse:    true,
					SSID:     "HomeNet",
					BSSID:    "AA:BB:CC:DD:EE:FF",
					Mode:     "Infra",
					Channel:  11,
					RateMbps: 270,
					Signal:   82,
					Security: "WPA2",
				},
				{
					SSID:     "Neighbour",
					BSSID:    "11:22:33:44:55:66",
					Mode:     "Infra",
					Channel:  6,
					RateMbps: 130,
					Signal:   45,
					Security: "WPA1 WPA2",
				},
			}))
		})

		It("should keep an SSID containing a literal colon intact", func() {
			output := `:my\:net:AA\:BB\:CC\:DD\:EE\:FF:Infra:1:65 Mbit/s:30:WPA2`
			networks := parseWifiList(output)
			Expect(networks).To(HaveLen(1))
			Expect(networks[0].SSID).To(Equal("my:net"))
		})

		It("should skip malformed lines and blank lines", func() {
			output := "\nnot-a-terse-line\n*:OnlyFour:AA:Infra\n"
			Expect(parseWifiList(output)).To(BeEmpty())
		})

		It("should parse an open network with empty security", func() {
			output := `:CoffeeShop:AA\:BB\:CC\:DD\:EE\:FF:Infra:36:540 Mbit/s:70:`
			networks := parseWifiList(output)
			Expect(networks).To(HaveLen(1))
			Expect(networks[0].Security).To(BeEmpty())
			Expect(networks[0].Channel).To(Equal(36))
		})
	})

	Describe("parseRate", func() {
		It("should extract the leading number", func() {
			Expect(parseRate("270 Mbit/s")).To(Equal(270))
		})
		It("should return 0 for garbage", func() {
			Expect(parseRate("fast")).To(BeZero())
		})
	})
})
