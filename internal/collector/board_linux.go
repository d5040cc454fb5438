// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package collector

import (
	"context"
	"fmt"
	"os"

	"github.com/siderolabs/go-smbios/smbios"

	"github.com/pideck/pideck/internal/api/info"
)

var (
	pathCPUInfo         = "/proc/cpuinfo"
	pathDevicetreeModel = "/sys/firmware/devicetree/base/model"
)

func collectBoard(_ context.Context) (info.Board, error) {
	devicetreeModel, err := toString(pathDevicetreeModel)
	if err != nil {
		devicetreeModel = "" // Non-devicetree host, the DMI fallback covers it.
	}

	f, err := os.Open(pathCPUInfo)
	if err != nil {
		return info.Board{}, fmt.Errorf("unable to open %s: %w", pathCPUInfo, err)
	}
	defer func() {
		_ = f.Close()
	}()

	fields, err := parseCPUInfo(f)
	if err != nil {
		return info.Board{}, err
	}

	if fields.revision == "" {
		// No firmware revision code: this is not a Raspberry Pi.
		// Identify the board through SMBIOS instead.
		board := info.Board{Model: devicetreeModel}
		board.DMI = collectDMI()
		if board.Model == "" && board.DMI != nil {
			board.Model = board.DMI.ProductName
		}
		return board, nil
	}

	return buildBoard(fields, devicetreeModel)
}

func collectDMI() *info.DMI {
	sm, err := smbios.New()
	if err != nil {
		return nil
	}
	return &info.DMI{
		Manufacturer: sm.SystemInformation.Manufacturer,
		ProductName:  sm.SystemInformation.ProductName,
		Version:      sm.SystemInformation.Version,
		SerialNumber: sm.SystemInformation.SerialNumber,
	}
}
