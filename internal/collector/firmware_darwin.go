// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin

package collector

import (
	"context"

	"github.com/pideck/pideck/internal/api/info"
)

// No firmware query tool on Darwin, sensor fields stay zero.

func readTemperature(_ context.Context) float64 { return 0 }

func readCoreVoltage(_ context.Context) float64 { return 0 }

func readThrottle(_ context.Context) *info.Throttle { return nil }

func readARMClock(_ context.Context) uint64 { return 0 }
