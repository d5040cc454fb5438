// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

// Package info holds the JSON payload types served by the dashboard
// API. Collectors fill them in, the server and the CLI client consume
// them.
package info

import "time"

// Snapshot is the full dashboard document served by /api/v1/snapshot.
// Sections are independent: a failing collector leaves its section
// zero-valued and records the failure in Errors instead of failing the
// whole snapshot.
type Snapshot struct {
	TakenAt      time.Time          `json:"takenAt"`
	Board        Board              `json:"board"`
	Host         Host               `json:"host"`
	CPU          CPU                `json:"cpu"`
	Memory       Memory             `json:"memory"`
	Disks        []DiskUsage        `json:"disks,omitempty"`
	BlockDevices []BlockDevice      `json:"blockDevices,omitempty"`
	Processes    []Process          `json:"processes,omitempty"`
	Interfaces   []NetworkInterface `json:"interfaces,omitempty"`
	Wifi         *WifiScan          `json:"wifi,omitempty"`
	Errors       []string           `json:"errors,omitempty"`
}
