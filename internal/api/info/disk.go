// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package info

// DiskUsage is one mounted filesystem row, the `df` view of the world.
type DiskUsage struct {
	Device         string  `json:"device"`
	Mountpoint     string  `json:"mountpoint"`
	Filesystem     string  `json:"filesystem"`
	TotalBytes     uint64  `json:"totalBytes"`
	UsedBytes      uint64  `json:"usedBytes"`
	AvailableBytes uint64  `json:"availableBytes"`
	UsedPercent    float64 `json:"usedPercent"`
}

// BlockDevice is the physical device inventory entry behind the mounts.
type BlockDevice struct {
	Name       string `json:"name"`
	Vendor     string `json:"vendor"`
	Model      string `json:"model"`
	Serial     string `json:"serial"`
	SizeBytes  uint64 `json:"sizeBytes"`
	Rotational bool   `json:"rotational"`
	Removable  bool   `json:"removable"`
	ReadOnly   bool   `json:"readOnly"`
}
