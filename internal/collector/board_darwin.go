// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin

package collector

import (
	"context"
	"os"

	"github.com/pideck/pideck/internal/api/info"
)

// collectBoard on Darwin returns a minimal identity so the dashboard
// can run for local development.
func collectBoard(_ context.Context) (info.Board, error) {
	hostname, _ := os.Hostname()
	return info.Board{Model: "Darwin development host", Serial: hostname}, nil
}
