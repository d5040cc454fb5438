// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package info

import "time"

type Process struct {
	User       string    `json:"user"`
	PID        int32     `json:"pid"`
	CPUPercent float64   `json:"cpuPercent"`
	MemPercent float32   `json:"memPercent"`
	Command    string    `json:"command"`
	StartedAt  time.Time `json:"startedAt"`
}
