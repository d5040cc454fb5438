// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"sync"
	"time"

	"github.com/pideck/pideck/internal/api/info"
)

// snapshotCache serves one cached snapshot until its TTL expires, so a
// burst of dashboard requests runs the collectors once. A TTL of zero
// disables caching.
type snapshotCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	fetch   func(ctx context.Context) info.Snapshot
	snap    info.Snapshot
	expires time.Time
}

func newSnapshotCache(ttl time.Duration, fetch func(ctx context.Context) info.Snapshot) *snapshotCache {
	return &snapshotCache{ttl: ttl, fetch: fetch}
}

func (c *snapshotCache) Get(ctx context.Context) info.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ttl > 0 && time.Now().Before(c.expires) {
		return c.snap
	}
	c.snap = c.fetch(ctx)
	c.expires = time.Now().Add(c.ttl)
	return c.snap
}

// Invalidate drops the cached snapshot so the next Get refreshes.
func (c *snapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expires = time.Time{}
}
