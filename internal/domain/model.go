// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package domain defines the common interface realized by every named
// problem's encoder/decoder pair: a Model turns a Problem into a back-end
// IR once, hands it to a SolverAdapter, then turns the raw solver result
// back into a Solution.
package domain

import (
	"github.com/giraycoskun/automated-reasoning/internal/problem"
)

// Model encodes one named problem into a back-end IR and decodes a solver's
// raw result back into the domain answer. Implementations live one per
// subpackage (internal/domain/sudoku, internal/domain/nqueens, ...).
type Model interface {
	// Encode builds the back-end IR (an *problem.IPModel or *problem.SATModel,
	// depending on which SolverAdapter this Model is registered with) from the
	// given Problem's ProblemData. Encoder errors are deterministic and
	// reported as problem.ErrEncoder.
	Encode(p problem.Problem) (any, error)

	// Decode turns a solver adapter's raw result (itself the decoded form of
	// the back-end IR's solution, e.g. a variable assignment) back into the
	// domain-specific solution payload and terminal status. Decode must
	// preserve every clue/fixed input whenever the solver reports success.
	Decode(p problem.Problem, raw RawResult) (problem.Solution, error)
}

// RawResult is the back-end-agnostic shape a SolverAdapter hands to a
// Model's Decode step.
type RawResult struct {
	Status         string // optimal | feasible | unsolvable | satisfiable | unsatisfiable | error
	Variables      map[string]float64
	Assignment     []int // satisfied literals, DIMACS sign convention
	ObjectiveValue *float64
	Statistics     map[string]any
	IsSolved       bool
}
