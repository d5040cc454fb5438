// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin

package collector

import (
	"context"
	"errors"
)

var errPowerControlUnsupported = errors.New("power control is not supported on this platform")

func (c *Collector) Reboot(_ context.Context) error {
	return errPowerControlUnsupported
}

func (c *Collector) Shutdown(_ context.Context) error {
	return errPowerControlUnsupported
}
