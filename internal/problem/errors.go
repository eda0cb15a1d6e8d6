// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

package problem

import "errors"

// Error taxonomy. Each sentinel identifies a policy, not a
// single call site; wrap with fmt.Errorf("...: %w", ErrX) for context and
// recover the kind with errors.Is.
var (
	// ErrValidation marks a malformed submission. Rejected at the HTTP layer
	// with 400; never reaches the coordinator.
	ErrValidation = errors.New("validation error")

	// ErrStorage marks a KV read/write failure. Surfaced as 500 on the
	// submission path; triggers requeue in the worker and listener.
	ErrStorage = errors.New("storage error")

	// ErrQueue marks a broker connection/channel failure. Surfaced as 503 on
	// the submission path. The queue adapter does not retry or reconnect; a
	// pooled connection that has failed stays in the pool.
	ErrQueue = errors.New("queue error")

	// ErrCodec marks a msgpack decode failure on consume. Poison-message
	// policy: logged, acked, dropped — never requeued.
	ErrCodec = errors.New("codec error")

	// ErrRegistryMiss marks a (problem_type, problem_name) pair with no
	// registered domain model / solver adapter. Not an error at the registry
	// level; surfaced by the worker as UNSUPPORTED.
	ErrRegistryMiss = errors.New("no domain model registered")

	// ErrEncoder marks a domain model rejecting its input while building the
	// back-end IR. Persisted as FAILED with an error_message.
	ErrEncoder = errors.New("encoder error")

	// ErrSolver marks a back-end solver failure or timeout. Persisted as
	// FAILED.
	ErrSolver = errors.New("solver error")

	// ErrInfeasible marks a solver-reported infeasible/unbounded problem.
	// Persisted as UNSOLVABLE.
	ErrInfeasible = errors.New("problem is infeasible or unbounded")
)
