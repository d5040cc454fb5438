// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package info

import "time"

type Host struct {
	Hostname      string    `json:"hostname"`
	OSName        string    `json:"osName"`
	KernelVersion string    `json:"kernelVersion"`
	Architecture  string    `json:"architecture"`
	UptimeSeconds uint64    `json:"uptimeSeconds"`
	BootTime      time.Time `json:"bootTime"`
	CurrentTime   time.Time `json:"currentTime"`
}
