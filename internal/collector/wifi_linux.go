// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package collector

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/pideck/pideck/internal/api/info"
)

// Wifi scans for networks on the configured wireless interface via
// NetworkManager. nmcli serves cached scan results by default;
// forceRescan trades a multi-second blocking scan for fresh data.
func (c *Collector) Wifi(ctx context.Context, forceRescan bool) (info.WifiScan, error) {
	if c.cfg.WifiInterface == "" {
		return info.WifiScan{ScannedAt: time.Now(), Networks: []info.WifiNetwork{}}, nil
	}

	tool, err := exec.LookPath("nmcli")
	if err != nil {
		return info.WifiScan{}, fmt.Errorf("nmcli is not present: %w", err)
	}

	rescan := "auto"
	if forceRescan {
		rescan = "yes"
	}
	out, err := exec.CommandContext(ctx, tool,
		"-t", "-f", wifiListFields,
		"dev", "wifi", "list",
		"ifname", c.cfg.WifiInterface,
		"--rescan", rescan,
	).Output()
	if err != nil {
		return info.WifiScan{}, fmt.Errorf("running nmcli encountered a problem: %w", err)
	}

	return info.WifiScan{
		ScannedAt: time.Now(),
		Networks:  parseWifiList(string(out)),
	}, nil
}
