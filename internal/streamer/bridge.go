// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

package streamer

import (
	"context"
	"encoding/json"

	"github.com/giraycoskun/automated-reasoning/internal/clog"
	"github.com/giraycoskun/automated-reasoning/internal/kv"
)

// Bridge subscribes to a problem's Redis pub/sub channel and republishes
// every message into a local Streamer, so an API instance without a local
// publisher for that problem_id (the coordinator's RunResultListener runs
// on a different instance) can still serve subscribers watching it.
type Bridge struct {
	local *Streamer
	kv    *kv.Adapter
	log   *clog.CLogger
}

// NewBridge ties a local Streamer to the shared KV adapter's pub/sub.
func NewBridge(local *Streamer, adapter *kv.Adapter, log *clog.CLogger) *Bridge {
	return &Bridge{local: local, kv: adapter, log: log}
}

// Watch subscribes to problemID's Redis channel and republishes every
// payload into the local Streamer until ctx is cancelled.
func (b *Bridge) Watch(ctx context.Context, problemID string) {
	sub := b.kv.Subscribe(ctx, kv.ProblemChannel(problemID))
	go func() {
		defer sub.Close()
		payloads := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case payload, ok := <-payloads:
				if !ok {
					return
				}
				var data any
				if err := json.Unmarshal(payload, &data); err != nil {
					b.log.Errorf("bridge: malformed payload for %s: %v", problemID, err)
					continue
				}
				b.local.Publish(problemID, data)
			}
		}
	}()
}
