// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// systemCollector exports the cached snapshot as Prometheus metrics.
// Scrapes share the snapshot cache with the JSON API, so a tight
// scrape interval never hammers vcgencmd or the process table.
type systemCollector struct {
	cache *snapshotCache

	cpuUsage       *prometheus.Desc
	cpuTemperature *prometheus.Desc
	cpuFrequency   *prometheus.Desc
	coreVoltage    *prometheus.Desc
	throttled      *prometheus.Desc
	memoryBytes    *prometheus.Desc
	swapBytes      *prometheus.Desc
	diskBytes      *prometheus.Desc
	loadAverage    *prometheus.Desc
	uptimeSeconds  *prometheus.Desc
	boardInfo      *prometheus.Desc
}

func newSystemCollector(cache *snapshotCache) *systemCollector {
	return &systemCollector{
		cache: cache,
		cpuUsage: prometheus.NewDesc(
			"pideck_cpu_usage_percent",
			"CPU usage in percent, total and per core.",
			[]string{"core"}, nil,
		),
		cpuTemperature: prometheus.NewDesc(
			"pideck_cpu_temperature_celsius",
			"SoC temperature in degrees Celsius.",
			nil, nil,
		),
		cpuFrequency: prometheus.NewDesc(
			"pideck_cpu_frequency_mhz",
			"Current ARM core frequency in MHz.",
			nil, nil,
		),
		coreVoltage: prometheus.NewDesc(
			"pideck_core_voltage_volts",
			"Core voltage reported by the firmware.",
			nil, nil,
		),
		throttled: prometheus.NewDesc(
			"pideck_throttled",
			"Firmware throttle state flags, 1 when the condition is active.",
			[]string{"condition"}, nil,
		),
		memoryBytes: prometheus.NewDesc(
			"pideck_memory_bytes",
			"Memory sizes in bytes by kind.",
			[]string{"kind"}, nil,
		),
		swapBytes: prometheus.NewDesc(
			"pideck_swap_bytes",
			"Swap sizes in bytes by kind.",
			[]string{"kind"}, nil,
		),
		diskBytes: prometheus.NewDesc(
			"pideck_disk_bytes",
			"Filesystem sizes in bytes by mountpoint and kind.",
			[]string{"mountpoint", "kind"}, nil,
		),
		loadAverage: prometheus.NewDesc(
			"pideck_load_average",
			"System load average over the given period.",
			[]string{"period"}, nil,
		),
		uptimeSeconds: prometheus.NewDesc(
			"pideck_uptime_seconds",
			"Host uptime in seconds.",
			nil, nil,
		),
		boardInfo: prometheus.NewDesc(
			"pideck_board_info",
			"Board identity, constant 1 with identifying labels.",
			[]string{"model", "revision", "serial", "manufacturer"}, nil,
		),
	}
}

func (c *systemCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.cpuUsage
	ch <- c.cpuTemperature
	ch <- c.cpuFrequency
	ch <- c.coreVoltage
	ch <- c.throttled
	ch <- c.memoryBytes
	ch <- c.swapBytes
	ch <- c.diskBytes
	ch <- c.loadAverage
	ch <- c.uptimeSeconds
	ch <- c.boardInfo
}

func (c *systemCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	snap := c.cache.Get(ctx)

	cpu := snap.CPU
	ch <- prometheus.MustNewConstMetric(c.cpuUsage, prometheus.GaugeValue, cpu.UsagePercent, "total")
	for i, usage := range cpu.CoreUsage {
		ch <- prometheus.MustNewConstMetric(c.cpuUsage, prometheus.GaugeValue, usage, coreLabel(i))
	}
	if cpu.TemperatureC > 0 {
		ch <- prometheus.MustNewConstMetric(c.cpuTemperature, prometheus.GaugeValue, cpu.TemperatureC)
	}
	if cpu.FrequencyMHz.Current > 0 {
		ch <- prometheus.MustNewConstMetric(c.cpuFrequency, prometheus.GaugeValue, cpu.FrequencyMHz.Current)
	}
	if cpu.CoreVoltage > 0 {
		ch <- prometheus.MustNewConstMetric(c.coreVoltage, prometheus.GaugeValue, cpu.CoreVoltage)
	}
	if throttle := cpu.Throttle; throttle != nil {
		for condition, active := range map[string]bool{
			"undervoltage":              throttle.UnderVoltage,
			"frequency_capped":          throttle.FrequencyCapped,
			"throttled":                 throttle.Throttled,
			"soft_temp_limit":           throttle.SoftTempLimit,
			"undervoltage_occurred":     throttle.UnderVoltageOccurred,
			"frequency_capped_occurred": throttle.FrequencyCapOccurred,
			"throttled_occurred":        throttle.ThrottlingOccurred,
			"soft_temp_limit_occurred":  throttle.SoftTempLimitOccurred,
		} {
			ch <- prometheus.MustNewConstMetric(c.throttled, prometheus.GaugeValue, boolValue(active), condition)
		}
	}

	memory := snap.Memory
	ch <- prometheus.MustNewConstMetric(c.memoryBytes, prometheus.GaugeValue, float64(memory.TotalBytes), "total")
	ch <- prometheus.MustNewConstMetric(c.memoryBytes, prometheus.GaugeValue, float64(memory.UsedBytes), "used")
	ch <- prometheus.MustNewConstMetric(c.memoryBytes, prometheus.GaugeValue, float64(memory.AvailableBytes), "available")
	ch <- prometheus.MustNewConstMetric(c.memoryBytes, prometheus.GaugeValue, float64(memory.CachedBytes), "cached")
	if memory.SwapTotalBytes > 0 {
		ch <- prometheus.MustNewConstMetric(c.swapBytes, prometheus.GaugeValue, float64(memory.SwapTotalBytes), "total")
		ch <- prometheus.MustNewConstMetric(c.swapBytes, prometheus.GaugeValue, float64(memory.SwapUsedBytes), "used")
	}

	for _, disk := range snap.Disks {
		ch <- prometheus.MustNewConstMetric(c.diskBytes, prometheus.GaugeValue, float64(disk.TotalBytes), disk.Mountpoint, "total")
		ch <- prometheus.MustNewConstMetric(c.diskBytes, prometheus.GaugeValue, float64(disk.UsedBytes), disk.Mountpoint, "used")
		ch <- prometheus.MustNewConstMetric(c.diskBytes, prometheus.GaugeValue, float64(disk.AvailableBytes), disk.Mountpoint, "free")
	}

	ch <- prometheus.MustNewConstMetric(c.loadAverage, prometheus.GaugeValue, cpu.Load1, "1m")
	ch <- prometheus.MustNewConstMetric(c.loadAverage, prometheus.GaugeValue, cpu.Load5, "5m")
	ch <- prometheus.MustNewConstMetric(c.loadAverage, prometheus.GaugeValue, cpu.Load15, "15m")
	ch <- prometheus.MustNewConstMetric(c.uptimeSeconds, prometheus.GaugeValue, float64(snap.Host.UptimeSeconds))

	board := snap.Board
	ch <- prometheus.MustNewConstMetric(c.boardInfo, prometheus.GaugeValue, 1,
		board.ModelName, board.Revision, board.Serial, board.Manufacturer)
}

func coreLabel(i int) string {
	return "cpu" + strconv.Itoa(i)
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
