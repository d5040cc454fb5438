// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/pideck/pideck/internal/api/info"
)

var pathOSRelease = "/etc/os-release"

func (c *Collector) Host(ctx context.Context) (info.Host, error) {
	hostInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		return info.Host{}, fmt.Errorf("failed to get host info: %w", err)
	}

	osName := osPrettyName()
	if osName == "" {
		osName = strings.TrimSpace(hostInfo.Platform + " " + hostInfo.PlatformVersion)
	}

	return info.Host{
		Hostname:      hostInfo.Hostname,
		OSName:        osName,
		KernelVersion: hostInfo.KernelVersion,
		Architecture:  hostInfo.KernelArch,
		UptimeSeconds: hostInfo.Uptime,
		BootTime:      time.Unix(int64(hostInfo.BootTime), 0),
		CurrentTime:   time.Now(),
	}, nil
}

// osPrettyName reads PRETTY_NAME from os-release, the same field the
// login banner shows.
func osPrettyName() string {
	contents, err := toString(pathOSRelease)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(contents, "\n") {
		if value, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(value, `"`)
		}
	}
	return ""
}
