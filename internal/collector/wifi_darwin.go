// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin

package collector

import (
	"context"
	"time"

	"github.com/pideck/pideck/internal/api/info"
)

func (c *Collector) Wifi(_ context.Context, _ bool) (info.WifiScan, error) {
	return info.WifiScan{ScannedAt: time.Now(), Networks: []info.WifiNetwork{}}, nil
}
