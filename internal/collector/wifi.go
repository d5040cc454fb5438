// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"strconv"
	"strings"

	"github.com/pideck/pideck/internal/api/info"
)

// wifiListFields is the nmcli -f field list requested by the scanner.
// The parser below depends on this order.
const wifiListFields = "IN-USE,SSID,BSSID,MODE,CHAN,RATE,SIGNAL,SECURITY"

// parseWifiList parses nmcli terse (-t) output: one network per line,
// colon-separated fields, literal colons escaped with a backslash
// (BSSIDs always contain them).
func parseWifiList(output string) []info.WifiNetwork {
	networks := []info.WifiNetwork{}
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitTerse(line)
		if len(fields) != 8 {
			continue
		}
		network := info.WifiNetwork{
			InUse:    fields[0] == "*",
			SSID:     fields[1],
			BSSID:    fields[2],
			Mode:     fields[3],
			Security: fields[7],
		}
		network.Channel, _ = strconv.Atoi(fields[4])
		network.RateMbps = parseRate(fields[5])
		network.Signal, _ = strconv.Atoi(fields[6])
		networks = append(networks, network)
	}
	return networks
}

// splitTerse splits an nmcli terse line on unescaped colons.
func splitTerse(line string) []string {
	fields := []string{}
	var field strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			field.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, field.String())
	return fields
}

// parseRate extracts the numeric part of a rate like "270 Mbit/s".
func parseRate(rate string) int {
	value, _, _ := strings.Cut(strings.TrimSpace(rate), " ")
	mbps, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return mbps
}
