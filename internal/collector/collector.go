// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

// Package collector gathers the system state served by the dashboard:
// board identity, CPU, memory, disks, processes, network interfaces
// and Wi-Fi scan results. Every source degrades independently, a
// snapshot never fails as a whole because one collector did.
package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"

	"github.com/pideck/pideck/internal/api/info"
	"github.com/pideck/pideck/internal/config"
)

// Collector owns the metric sources. It is safe for concurrent use;
// the board identity is collected once and reused for the process
// lifetime since the revision code cannot change within a boot.
type Collector struct {
	log logr.Logger
	cfg config.Config

	boardOnce sync.Once
	board     info.Board
	boardErr  error
}

func New(log logr.Logger, cfg config.Config) *Collector {
	return &Collector{log: log, cfg: cfg}
}

// Board returns the decoded board identity. The underlying read and
// decode run exactly once per process.
func (c *Collector) Board(ctx context.Context) (info.Board, error) {
	c.boardOnce.Do(func() {
		c.board, c.boardErr = collectBoard(ctx)
	})
	return c.board, c.boardErr
}

// Snapshot collects every section, recording per-section failures in
// Errors instead of aborting.
func (c *Collector) Snapshot(ctx context.Context) info.Snapshot {
	snap := info.Snapshot{TakenAt: time.Now()}

	record := func(section string, err error) {
		if err == nil {
			return
		}
		c.log.Error(err, "collector failed", "section", section)
		snap.Errors = append(snap.Errors, fmt.Sprintf("%s: %v", section, err))
	}

	var err error
	snap.Board, err = c.Board(ctx)
	record("board", err)
	snap.Host, err = c.Host(ctx)
	record("host", err)
	snap.CPU, err = c.CPU(ctx)
	record("cpu", err)
	snap.Memory, err = c.Memory(ctx)
	record("memory", err)
	snap.Disks, err = c.Disks(ctx)
	record("disks", err)
	snap.BlockDevices, err = c.BlockDevices()
	record("blockDevices", err)
	snap.Processes, err = c.Processes(ctx)
	record("processes", err)
	snap.Interfaces, err = c.Network()
	record("network", err)

	if c.cfg.WifiInterface != "" {
		scan, err := c.Wifi(ctx, false)
		record("wifi", err)
		if err == nil {
			snap.Wifi = &scan
		}
	}
	return snap
}
