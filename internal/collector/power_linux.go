// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package collector

import (
	"context"
	"fmt"
	"os/exec"
)

// Reboot asks systemd to reboot the host. The call returns once the
// request is accepted, not when the reboot happens.
func (c *Collector) Reboot(ctx context.Context) error {
	return systemctl(ctx, "reboot")
}

// Shutdown asks systemd to power the host off.
func (c *Collector) Shutdown(ctx context.Context) error {
	return systemctl(ctx, "poweroff")
}

func systemctl(ctx context.Context, verb string) error {
	tool, err := exec.LookPath("systemctl")
	if err != nil {
		return fmt.Errorf("systemctl is not present: %w", err)
	}
	if out, err := exec.CommandContext(ctx, tool, verb).CombinedOutput(); err != nil {
		return fmt.Errorf("systemctl %s failed: %s: %w", verb, string(out), err)
	}
	return nil
}
