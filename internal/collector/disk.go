// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"context"
	"fmt"
	"sort"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/pideck/pideck/internal/api/info"
)

// Disks returns the mounted-filesystem usage table, sorted by
// mountpoint the way the original dashboard sorted its df output.
func (c *Collector) Disks(ctx context.Context) ([]info.DiskUsage, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}

	disks := make([]info.DiskUsage, 0, len(partitions))
	for _, partition := range partitions {
		usage, err := disk.UsageWithContext(ctx, partition.Mountpoint)
		if err != nil {
			c.log.Error(err, "skipping unreadable mountpoint", "mountpoint", partition.Mountpoint)
			continue
		}
		disks = append(disks, info.DiskUsage{
			Device:         partition.Device,
			Mountpoint:     partition.Mountpoint,
			Filesystem:     partition.Fstype,
			TotalBytes:     usage.Total,
			UsedBytes:      usage.Used,
			AvailableBytes: usage.Free,
			UsedPercent:    usage.UsedPercent,
		})
	}

	sort.Slice(disks, func(i, j int) bool {
		return disks[i].Mountpoint < disks[j].Mountpoint
	})
	return disks, nil
}
