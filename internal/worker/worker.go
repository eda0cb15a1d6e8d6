// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package worker implements the single-threaded solve pipeline that runs in
// every worker OS process spawned by the supervisor: consume one message,
// dispatch to a registered domain model and solver adapter, publish the
// result, ack or nack.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/giraycoskun/automated-reasoning/internal/clog"
	"github.com/giraycoskun/automated-reasoning/internal/codec"
	"github.com/giraycoskun/automated-reasoning/internal/kv"
	"github.com/giraycoskun/automated-reasoning/internal/problem"
	"github.com/giraycoskun/automated-reasoning/internal/queue"
	"github.com/giraycoskun/automated-reasoning/internal/registry"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Worker consumes the work queue and runs one problem at a time through
// decode -> lookup -> encode -> solve -> decode -> persist -> publish.
type Worker struct {
	*clog.CLogger
	id       string
	reg      *registry.Registry
	kvClient *kv.Adapter
	q        *queue.Adapter
	solveCap time.Duration
}

// New creates a Worker ready for Run.
func New(reg *registry.Registry, kvClient *kv.Adapter, q *queue.Adapter, solveCap time.Duration) *Worker {
	id := uuid.NewString()
	return &Worker{
		CLogger:  clog.New("worker", id),
		id:       id,
		reg:      reg,
		kvClient: kvClient,
		q:        q,
		solveCap: solveCap,
	}
}

// Run consumes the work queue until ctx is cancelled, processing one
// message at a time (prefetch=1, manual ack/nack).
func (w *Worker) Run(ctx context.Context) error {
	consumer, err := w.q.ConsumeWork("worker-" + w.id)
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
			w.handleDelivery(ctx, consumer, d)
		}
	}
}

func (w *Worker) handleDelivery(ctx context.Context, consumer *queue.Consumer, d amqp.Delivery) {
	p, err := codec.DecodeProblem(d.Body)
	if err != nil {
		// Poison-message policy: log, ack, drop. Never requeued.
		w.Errorf("decode failed, dropping message: %v", err)
		consumer.Ack(d)
		return
	}

	log := w.CLogger.With("problem_id", p.ProblemID)

	claimed := map[string]any{"status": string(problem.StatusInProgress)}
	if err := w.kvClient.UpsertFields(ctx, problem.Key(p.ProblemID), claimed); err != nil {
		log.Errorf("marking problem in progress failed, requeueing: %v", err)
		consumer.Nack(d, true)
		return
	}

	model, adapter, found := w.reg.Lookup(p.ProblemType, p.ProblemName)
	if !found {
		log.Printf("no registered model for (%s, %s): UNSUPPORTED", p.ProblemType, p.ProblemName)
		w.finish(ctx, consumer, d, p, problem.Solution{
			ProblemID: p.ProblemID,
			Status:    problem.StatusUnsupported,
		})
		return
	}

	ir, err := model.Encode(p)
	if err != nil {
		log.Errorf("encode failed: %v", err)
		w.finish(ctx, consumer, d, p, w.failure(p, err))
		return
	}

	solveCtx := ctx
	var cancel context.CancelFunc
	if w.solveCap > 0 {
		solveCtx, cancel = context.WithTimeout(ctx, w.solveCap)
		defer cancel()
	}

	raw, err := adapter.Solve(solveCtx, ir)
	if err != nil {
		log.Errorf("solve failed: %v", err)
		w.finish(ctx, consumer, d, p, w.failure(p, err))
		return
	}

	sol, err := model.Decode(p, raw)
	if err != nil {
		log.Errorf("decode failed: %v", err)
		w.finish(ctx, consumer, d, p, w.failure(p, err))
		return
	}

	w.finish(ctx, consumer, d, p, sol)
}

func (w *Worker) failure(p problem.Problem, err error) problem.Solution {
	status := problem.StatusFailed
	if errors.Is(err, problem.ErrInfeasible) {
		status = problem.StatusUnsolvable
	}
	msg := err.Error()
	return problem.Solution{
		ProblemID:    p.ProblemID,
		Status:       status,
		SolutionData: map[string]any{"error_message": msg},
	}
}

// finish persists the solution and publishes the result message; it acks on
// success and nacks with requeue on a retryable (storage/queue) failure.
func (w *Worker) finish(ctx context.Context, consumer *queue.Consumer, d amqp.Delivery, p problem.Problem, sol problem.Solution) {
	fields := map[string]any{"status": string(sol.Status)}
	if sol.SolutionData != nil {
		if encoded, err := json.Marshal(sol.SolutionData); err == nil {
			fields["solution"] = string(encoded)
		}
	}

	if err := w.kvClient.UpsertFields(ctx, problem.Key(p.ProblemID), fields); err != nil {
		w.Errorf("persist result for %s failed, requeueing: %v", p.ProblemID, err)
		consumer.Nack(d, true)
		return
	}

	output, _ := fields["solution"].(string)
	body, err := json.Marshal(problem.ResultMessage{
		ProblemID: p.ProblemID,
		Status:    sol.Status,
		Output:    output,
	})
	if err != nil {
		w.Errorf("marshal result message for %s failed: %v", p.ProblemID, err)
		consumer.Nack(d, true)
		return
	}

	if err := w.q.PublishResult(body); err != nil {
		w.Errorf("publish result for %s failed, requeueing: %v", p.ProblemID, err)
		consumer.Nack(d, true)
		return
	}

	consumer.Ack(d)
}
