// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package collector

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/safchain/ethtool"
)

var pathSysClassNet = "/sys/class/net"

// ethtoolLinkData enriches interfaces with driver and firmware
// information from the kernel's ethtool interface and the link speed
// from sysfs.
type ethtoolLinkData struct {
	handle *ethtool.Ethtool
}

// newLinkData opens an ethtool handle. When that fails (missing
// capability, exotic kernel) the collector degrades to the noop
// implementation instead of failing the section.
func newLinkData(log logr.Logger) (LinkData, func()) {
	handle, err := ethtool.NewEthtool()
	if err != nil {
		log.Error(err, "ethtool unavailable, interface link data degraded")
		return noopLinkData{}, func() {}
	}
	return &ethtoolLinkData{handle: handle}, handle.Close
}

func (e *ethtoolLinkData) Speed(device string) string {
	speed, err := os.ReadFile(filepath.Join(pathSysClassNet, device, "speed"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(speed))
}

func (e *ethtoolLinkData) DriverInfo(device string) (string, string, string) {
	drvInfo, err := e.handle.DriverInfo(device)
	if err != nil {
		return "", "", ""
	}
	return drvInfo.Driver, drvInfo.Version, drvInfo.FwVersion
}
