// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin

package collector

import (
	"github.com/pideck/pideck/internal/api/info"
)

func (c *Collector) BlockDevices() ([]info.BlockDevice, error) {
	return []info.BlockDevice{}, nil
}
