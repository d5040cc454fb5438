// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pideck/pideck/internal/api/info"
)

// Parsers for vcgencmd output. The firmware prints key=value tokens,
// e.g. `temp=48.3'C`, `volt=0.8500V`, `frequency(48)=1500398464`,
// `throttled=0x50005`.

func parseVcgenValue(output string) (string, error) {
	_, value, ok := strings.Cut(strings.TrimSpace(output), "=")
	if !ok {
		return "", fmt.Errorf("unexpected vcgencmd output %q", output)
	}
	return value, nil
}

func parseVcgenTemp(output string) (float64, error) {
	value, err := parseVcgenValue(output)
	if err != nil {
		return 0, err
	}
	value = strings.TrimSuffix(value, "'C")
	temp, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected temperature value %q: %w", value, err)
	}
	return temp, nil
}

func parseVcgenVolts(output string) (float64, error) {
	value, err := parseVcgenValue(output)
	if err != nil {
		return 0, err
	}
	value = strings.TrimSuffix(value, "V")
	volts, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected voltage value %q: %w", value, err)
	}
	return volts, nil
}

func parseVcgenClock(output string) (uint64, error) {
	value, err := parseVcgenValue(output)
	if err != nil {
		return 0, err
	}
	hz, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected clock value %q: %w", value, err)
	}
	return hz, nil
}

// Bit positions of `vcgencmd get_throttled`.
const (
	throttleUnderVoltage          = 1 << 0
	throttleFrequencyCapped       = 1 << 1
	throttleThrottled             = 1 << 2
	throttleSoftTempLimit         = 1 << 3
	throttleUnderVoltageOccurred  = 1 << 16
	throttleFrequencyCapOccurred  = 1 << 17
	throttleThrottlingOccurred    = 1 << 18
	throttleSoftTempLimitOccurred = 1 << 19
)

func parseVcgenThrottled(output string) (info.Throttle, error) {
	value, err := parseVcgenValue(output)
	if err != nil {
		return info.Throttle{}, err
	}
	mask, err := strconv.ParseUint(strings.TrimPrefix(value, "0x"), 16, 32)
	if err != nil {
		return info.Throttle{}, fmt.Errorf("unexpected throttle value %q: %w", value, err)
	}
	return info.Throttle{
		UnderVoltage:          mask&throttleUnderVoltage != 0,
		FrequencyCapped:       mask&throttleFrequencyCapped != 0,
		Throttled:             mask&throttleThrottled != 0,
		SoftTempLimit:         mask&throttleSoftTempLimit != 0,
		UnderVoltageOccurred:  mask&throttleUnderVoltageOccurred != 0,
		FrequencyCapOccurred:  mask&throttleFrequencyCapOccurred != 0,
		ThrottlingOccurred:    mask&throttleThrottlingOccurred != 0,
		SoftTempLimitOccurred: mask&throttleSoftTempLimitOccurred != 0,
	}, nil
}
