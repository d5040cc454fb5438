// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package info

type CPU struct {
	Model        string    `json:"model"`
	Vendor       string    `json:"vendor"`
	Cores        uint32    `json:"cores"`
	Threads      uint32    `json:"threads"`
	UsagePercent float64   `json:"usagePercent"`
	CoreUsage    []float64 `json:"coreUsage,omitempty"`
	Load1        float64   `json:"load1"`
	Load5        float64   `json:"load5"`
	Load15       float64   `json:"load15"`
	FrequencyMHz Frequency `json:"frequencyMHz"`
	TemperatureC float64   `json:"temperatureC"`
	CoreVoltage  float64   `json:"coreVoltage"`
	Throttle     *Throttle `json:"throttle,omitempty"`
}

// Frequency holds the current cpufreq scaling values in MHz.
type Frequency struct {
	Current float64 `json:"current"`
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
}

// Throttle mirrors the bit flags reported by `vcgencmd get_throttled`.
type Throttle struct {
	UnderVoltage          bool `json:"underVoltage"`
	FrequencyCapped       bool `json:"frequencyCapped"`
	Throttled             bool `json:"throttled"`
	SoftTempLimit         bool `json:"softTempLimit"`
	UnderVoltageOccurred  bool `json:"underVoltageOccurred"`
	FrequencyCapOccurred  bool `json:"frequencyCapOccurred"`
	ThrottlingOccurred    bool `json:"throttlingOccurred"`
	SoftTempLimitOccurred bool `json:"softTempLimitOccurred"`
}
