// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package collector

import (
	"fmt"

	"github.com/jaypipes/ghw"

	"github.com/pideck/pideck/internal/api/info"
)

// BlockDevices inventories the physical disks behind the mounts.
func (c *Collector) BlockDevices() ([]info.BlockDevice, error) {
	blockStorage, err := ghw.Block()
	if err != nil {
		return nil, fmt.Errorf("failed to get block devices: %w", err)
	}

	blockDevices := make([]info.BlockDevice, 0, len(blockStorage.Disks))
	for _, b := range blockStorage.Disks {
		rotational, err := toBool(fmt.Sprintf("/sys/class/block/%s/queue/rotational", b.Name))
		if err != nil {
			c.log.Error(err, "failed to read rotational state", "device", b.Name)
		}
		readOnly, err := toBool(fmt.Sprintf("/sys/class/block/%s/ro", b.Name))
		if err != nil {
			c.log.Error(err, "failed to read readonly state", "device", b.Name)
		}
		blockDevices = append(blockDevices, info.BlockDevice{
			Name:       b.Name,
			Vendor:     b.Vendor,
			Model:      b.Model,
			Serial:     b.SerialNumber,
			SizeBytes:  b.SizeBytes,
			Rotational: rotational,
			Removable:  b.IsRemovable,
			ReadOnly:   readOnly,
		})
	}
	return blockDevices, nil
}
