// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package info

import "time"

type WifiNetwork struct {
	SSID     string `json:"ssid"`
	BSSID    string `json:"bssid"`
	Mode     string `json:"mode"`
	Channel  int    `json:"channel"`
	RateMbps int    `json:"rateMbps"`
	Signal   int    `json:"signal"`
	InUse    bool   `json:"inUse"`
	Security string `json:"security"`
}

// WifiScan wraps the networks together with the scan timestamp, since
// nmcli serves cached results unless a rescan is forced.
type WifiScan struct {
	ScannedAt time.Time     `json:"scannedAt"`
	Networks  []WifiNetwork `json:"networks"`
}
