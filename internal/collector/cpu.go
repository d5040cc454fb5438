// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"

	"github.com/pideck/pideck/internal/api/info"
)

// cpuSampleInterval is how long the usage sampler measures. It bounds
// the latency of an uncached /api/v1/cpu request.
const cpuSampleInterval = 500 * time.Millisecond

var pathCPUFreq = "/sys/devices/system/cpu/cpu0/cpufreq"

// CPU collects static topology, usage, load, frequency and the
// firmware sensor readings. Sensor sources that are absent on the host
// leave their fields zero instead of failing the section.
func (c *Collector) CPU(ctx context.Context) (info.CPU, error) {
	out := info.CPU{}

	if cpuInfo, err := ghw.CPU(); err == nil && len(cpuInfo.Processors) > 0 {
		processor := cpuInfo.Processors[0]
		out.Model = processor.Model
		out.Vendor = processor.Vendor
		out.Cores = processor.TotalCores
		out.Threads = processor.TotalHardwareThreads
	}

	total, err := cpu.PercentWithContext(ctx, cpuSampleInterval, false)
	if err != nil {
		return out, fmt.Errorf("failed to sample CPU usage: %w", err)
	}
	if len(total) > 0 {
		out.UsagePercent = total[0]
	}
	if perCore, err := cpu.PercentWithContext(ctx, cpuSampleInterval, true); err == nil {
		out.CoreUsage = perCore
	}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		out.Load1 = avg.Load1
		out.Load5 = avg.Load5
		out.Load15 = avg.Load15
	}

	out.FrequencyMHz = readFrequencies()
	if out.FrequencyMHz.Current == 0 {
		// cpufreq can be absent; the firmware reports the ARM clock in Hz.
		if hz := readARMClock(ctx); hz > 0 {
			out.FrequencyMHz.Current = float64(hz) / 1e6
		}
	}
	out.TemperatureC = readTemperature(ctx)
	out.CoreVoltage = readCoreVoltage(ctx)
	out.Throttle = readThrottle(ctx)
	return out, nil
}

// readFrequencies reads the cpufreq scaling values, reported in kHz.
func readFrequencies() info.Frequency {
	freq := info.Frequency{}
	if cur, err := toInt(pathCPUFreq + "/scaling_cur_freq"); err == nil {
		freq.Current = float64(cur) / 1000
	}
	if min, err := toInt(pathCPUFreq + "/scaling_min_freq"); err == nil {
		freq.Minimum = float64(min) / 1000
	}
	if max, err := toInt(pathCPUFreq + "/scaling_max_freq"); err == nil {
		freq.Maximum = float64(max) / 1000
	}
	return freq
}
