// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package coordinator implements problem submission, result-queue
// consumption, and crash recovery, owning a request end-to-end. The
// broker's prefetch=1 fair dispatch removes any need to track how many
// workers are alive or estimate free capacity.
package coordinator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/giraycoskun/automated-reasoning/internal/clog"
	"github.com/giraycoskun/automated-reasoning/internal/codec"
	"github.com/giraycoskun/automated-reasoning/internal/kv"
	"github.com/giraycoskun/automated-reasoning/internal/problem"
	"github.com/giraycoskun/automated-reasoning/internal/queue"
	"github.com/giraycoskun/automated-reasoning/internal/streamer"
	"github.com/google/uuid"
)

// ProblemInput is the submission payload accepted by Submit.
type ProblemInput struct {
	ProblemType problem.ProblemType
	ProblemName problem.ProblemName
	ProblemData map[string]any
}

// Coordinator owns problem submission, result consumption, and the
// reconciliation sweep.
type Coordinator struct {
	*clog.CLogger
	kv       *kv.Adapter
	q        *queue.Adapter
	streamer *streamer.Streamer
}

// New builds a Coordinator wired to the given KV adapter, queue adapter,
// and in-process result streamer.
func New(kvClient *kv.Adapter, q *queue.Adapter, s *streamer.Streamer) *Coordinator {
	return &Coordinator{
		CLogger:  clog.New("coordinator", "main"),
		kv:       kvClient,
		q:        q,
		streamer: s,
	}
}

// Submit generates a fresh problem_id, persists the problem as CREATED, then
// moves it to IN_QUEUE and publishes it to the work queue.
func (c *Coordinator) Submit(ctx context.Context, in ProblemInput) (string, error) {
	var id string
	for attempt := 0; attempt < 5; attempt++ {
		candidate := uuid.NewString()
		exists, err := c.kv.Exists(ctx, problem.Key(candidate))
		if err != nil {
			return "", fmt.Errorf("%w: checking problem_id collision: %v", problem.ErrStorage, err)
		}
		if !exists {
			id = candidate
			break
		}
	}
	if id == "" {
		return "", fmt.Errorf("%w: exhausted attempts generating a unique problem_id", problem.ErrStorage)
	}

	p := problem.Problem{
		ProblemID:   id,
		Kind:        codec.KindForProblemType(in.ProblemType),
		ProblemType: in.ProblemType,
		ProblemName: in.ProblemName,
		ProblemData: in.ProblemData,
		CreatedAt:   time.Now().UTC(),
		Status:      problem.StatusCreated,
	}

	// Persisted as a hash throughout — never a blob Set followed by a
	// field-level HSET, which would hit Redis's WRONGTYPE on the same key.
	if err := c.kv.UpsertFields(ctx, problem.Key(id), p.Fields()); err != nil {
		return "", err
	}

	p.Status = problem.StatusInQueue
	if err := c.kv.UpsertFields(ctx, problem.Key(id), map[string]any{"status": string(p.Status)}); err != nil {
		return "", err
	}

	encoded, err := codec.EncodeProblem(p)
	if err != nil {
		return "", err
	}
	if err := c.q.PublishWork(encoded); err != nil {
		return "", err
	}

	c.Printf("submitted problem %s (%s/%s)", id, p.ProblemType, p.ProblemName)
	return id, nil
}

// RunResultListener consumes the result queue until ctx is cancelled. For
// each message it updates the problem's KV record and fans the result out
// to the local streamer and the Redis bridge channel. It acks once the KV
// update has succeeded; a failed bridge publish is logged and the message
// is still acked.
func (c *Coordinator) RunResultListener(ctx context.Context) error {
	consumer, err := c.q.ConsumeResult("coordinator-result-listener")
	if err != nil {
		return err
	}
	defer consumer.Close()

	deliveries := consumer.Deliveries()
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			var msg problem.ResultMessage
			if err := json.Unmarshal(d.Body, &msg); err != nil {
				c.Errorf("malformed result message, dropping: %v", err)
				consumer.Ack(d)
				continue
			}

			fields := map[string]any{"status": string(msg.Status)}
			if msg.Output != "" {
				fields["solution"] = msg.Output
			}
			if err := c.kv.UpsertFields(ctx, problem.Key(msg.ProblemID), fields); err != nil {
				c.Errorf("persist result for %s failed, requeueing: %v", msg.ProblemID, err)
				consumer.Nack(d, true)
				continue
			}

			payload := map[string]any{"problem_id": msg.ProblemID, "status": string(msg.Status)}
			c.streamer.Publish(msg.ProblemID, payload)
			if encoded, err := json.Marshal(payload); err == nil {
				if err := c.kv.Publish(ctx, kv.ProblemChannel(msg.ProblemID), encoded); err != nil {
					c.Errorf("bridging publish for %s failed (local delivery already happened): %v", msg.ProblemID, err)
				}
			}

			consumer.Ack(d)
		}
	}
}

// Reconcile scans KV for problems in CREATED or IN_QUEUE status and
// republishes them to the work queue — the recovery path for a crash
// between Submit's persist and publish steps. IN_PROGRESS and terminal
// records are skipped. It does not check whether a broker delivery is still
// outstanding, so a record still waiting in the queue is published again.
func (c *Coordinator) Reconcile(ctx context.Context) error {
	keys, err := c.kv.Keys(ctx, problem.KeyPattern)
	if err != nil {
		return err
	}

	for _, key := range keys {
		fields, err := c.kv.GetFields(ctx, key)
		if err != nil || len(fields) == 0 {
			continue
		}
		p, err := problem.FromFields(fields)
		if err != nil {
			c.Errorf("reconcile: skipping malformed record %s: %v", key, err)
			continue
		}
		if p.Status.Terminal() || p.Status == problem.StatusInProgress {
			continue
		}

		c.Printf("reconcile: republishing stuck problem %s (status=%s)", p.ProblemID, p.Status)
		p.Status = problem.StatusInQueue
		if err := c.kv.UpsertFields(ctx, problem.Key(p.ProblemID), map[string]any{"status": string(p.Status)}); err != nil {
			c.Errorf("reconcile: failed updating status for %s: %v", p.ProblemID, err)
			continue
		}
		body, err := codec.EncodeProblem(p)
		if err != nil {
			c.Errorf("reconcile: failed re-encoding %s: %v", p.ProblemID, err)
			continue
		}
		if err := c.q.PublishWork(body); err != nil {
			c.Errorf("reconcile: failed republishing %s: %v", p.ProblemID, err)
		}
	}
	return nil
}
