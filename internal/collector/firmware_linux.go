// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package collector

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pideck/pideck/internal/api/info"
)

var pathThermalZone = "/sys/class/thermal/thermal_zone0/temp"

// vcgencmd runs the Raspberry Pi firmware query tool. Hosts without it
// fall back to the generic sysfs sources where one exists.
func vcgencmd(ctx context.Context, args ...string) (string, error) {
	tool, err := exec.LookPath("vcgencmd")
	if err != nil {
		return "", fmt.Errorf("vcgencmd is not present: %w", err)
	}
	out, err := exec.CommandContext(ctx, tool, args...).Output()
	if err != nil {
		return "", fmt.Errorf("running vcgencmd %s encountered a problem: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}

func readTemperature(ctx context.Context) float64 {
	if out, err := vcgencmd(ctx, "measure_temp"); err == nil {
		if temp, err := parseVcgenTemp(out); err == nil {
			return temp
		}
	}
	// Thermal zone fallback, reported in millidegrees.
	if milli, err := toInt(pathThermalZone); err == nil {
		return float64(milli) / 1000
	}
	return 0
}

func readCoreVoltage(ctx context.Context) float64 {
	out, err := vcgencmd(ctx, "measure_volts")
	if err != nil {
		return 0
	}
	volts, err := parseVcgenVolts(out)
	if err != nil {
		return 0
	}
	return volts
}

func readThrottle(ctx context.Context) *info.Throttle {
	out, err := vcgencmd(ctx, "get_throttled")
	if err != nil {
		return nil
	}
	throttle, err := parseVcgenThrottled(out)
	if err != nil {
		return nil
	}
	return &throttle
}

// readARMClock returns the current ARM core clock in Hz, 0 when the
// firmware tool is unavailable.
func readARMClock(ctx context.Context) uint64 {
	out, err := vcgencmd(ctx, "measure_clock", "arm")
	if err != nil {
		return 0
	}
	hz, err := parseVcgenClock(out)
	if err != nil {
		return 0
	}
	return hz
}
