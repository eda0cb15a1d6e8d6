// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package solveradapter wraps external solver binaries as black-box
// collaborators reachable on $PATH. Neither SCIP nor
// Glucose's solving kernels are reimplemented here; each Adapter only
// renders the back-end IR to the binary's input format, runs it under a
// wall-clock timeout, and parses its result back into domain.RawResult.
package solveradapter

import (
	"context"

	"github.com/giraycoskun/automated-reasoning/internal/domain"
)

// Adapter solves one back-end IR (an *problem.IPModel or *problem.SATModel,
// matching whichever ir the caller passes) and returns a back-end-agnostic
// RawResult.
type Adapter interface {
	Solve(ctx context.Context, ir any) (domain.RawResult, error)
}
