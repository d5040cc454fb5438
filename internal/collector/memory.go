// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/pideck/pideck/internal/api/info"
)

func (c *Collector) Memory(ctx context.Context) (info.Memory, error) {
	vmem, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return info.Memory{}, fmt.Errorf("failed to get memory info: %w", err)
	}

	out := info.Memory{
		TotalBytes:     vmem.Total,
		UsedBytes:      vmem.Used,
		FreeBytes:      vmem.Free,
		CachedBytes:    vmem.Cached,
		AvailableBytes: vmem.Available,
		UsedPercent:    vmem.UsedPercent,
	}

	if swap, err := mem.SwapMemoryWithContext(ctx); err == nil {
		out.SwapTotalBytes = swap.Total
		out.SwapUsedBytes = swap.Used
		out.SwapPercent = swap.UsedPercent
	}
	return out, nil
}
