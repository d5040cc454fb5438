// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/pideck/pideck/internal/api/info"
)

// Processes returns the running process table sorted by CPU usage,
// highest first, capped at the configured length. Processes that
// vanish mid-walk are skipped.
func (c *Collector) Processes(ctx context.Context) ([]info.Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	processes := make([]info.Process, 0, len(procs))
	for _, proc := range procs {
		command, err := proc.NameWithContext(ctx)
		if err != nil {
			continue
		}
		entry := info.Process{
			PID:     proc.Pid,
			Command: command,
		}
		if user, err := proc.UsernameWithContext(ctx); err == nil {
			entry.User = user
		}
		if cpuPercent, err := proc.CPUPercentWithContext(ctx); err == nil {
			entry.CPUPercent = cpuPercent
		}
		if memPercent, err := proc.MemoryPercentWithContext(ctx); err == nil {
			entry.MemPercent = memPercent
		}
		if createTime, err := proc.CreateTimeWithContext(ctx); err == nil {
			entry.StartedAt = time.UnixMilli(createTime)
		}
		processes = append(processes, entry)
	}

	sort.Slice(processes, func(i, j int) bool {
		return processes[i].CPUPercent > processes[j].CPUPercent
	})
	if c.cfg.TopProcesses > 0 && len(processes) > c.cfg.TopProcesses {
		processes = processes[:c.cfg.TopProcesses]
	}
	return processes, nil
}
