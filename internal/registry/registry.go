// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package registry maps a (ProblemType, ProblemName) pair to the domain
// model and solver adapter that can solve it.
package registry

import (
	"time"

	"github.com/giraycoskun/automated-reasoning/internal/domain"
	"github.com/giraycoskun/automated-reasoning/internal/domain/graphcoloring"
	"github.com/giraycoskun/automated-reasoning/internal/domain/nqueens"
	"github.com/giraycoskun/automated-reasoning/internal/domain/sudoku"
	"github.com/giraycoskun/automated-reasoning/internal/problem"
	"github.com/giraycoskun/automated-reasoning/internal/solveradapter"
)

// key is the registry's lookup key: a problem's IR type paired with its
// domain name.
type key struct {
	Type problem.ProblemType
	Name problem.ProblemName
}

// entry bundles the constructors a Lookup hit hands back to the worker.
type entry struct {
	newModel   func() domain.Model
	newAdapter func() solveradapter.Adapter
}

// Registry is the read-only map populated once at startup in New().
type Registry struct {
	entries map[key]entry
}

// New builds a Registry with every (ProblemType, ProblemName) pair this
// deployment can solve. SolverTimeLimit bounds every adapter's wall-clock
// solve time.
func New(solverTimeLimit time.Duration) *Registry {
	r := &Registry{entries: make(map[key]entry)}

	r.register(problem.TypeIP, problem.NameSudoku,
		func() domain.Model { return sudoku.NewIPModel() },
		func() solveradapter.Adapter { return solveradapter.NewSCIPAdapter(solverTimeLimit) })

	r.register(problem.TypeSAT, problem.NameSudoku,
		func() domain.Model { return sudoku.NewSATModel() },
		func() solveradapter.Adapter { return solveradapter.NewGlucoseAdapter(solverTimeLimit) })

	r.register(problem.TypeSAT, problem.NameNQueens,
		func() domain.Model { return nqueens.New() },
		func() solveradapter.Adapter { return solveradapter.NewGlucoseAdapter(solverTimeLimit) })

	r.register(problem.TypeSAT, problem.NameGraphColoring,
		func() domain.Model { return graphcoloring.New() },
		func() solveradapter.Adapter { return solveradapter.NewGlucoseAdapter(solverTimeLimit) })

	// NameKnapsack is deliberately left unregistered for every IR: it
	// exercises the UNSUPPORTED path for a problem name that is valid but
	// has no registered encoder/decoder pair.

	return r
}

func (r *Registry) register(t problem.ProblemType, n problem.ProblemName, newModel func() domain.Model, newAdapter func() solveradapter.Adapter) {
	r.entries[key{Type: t, Name: n}] = entry{newModel: newModel, newAdapter: newAdapter}
}

// Lookup returns the domain model and solver adapter registered for
// (problemType, problemName). A miss returns (nil, nil, false), never an
// error; the worker maps a miss to UNSUPPORTED.
func (r *Registry) Lookup(t problem.ProblemType, n problem.ProblemName) (domain.Model, solveradapter.Adapter, bool) {
	e, ok := r.entries[key{Type: t, Name: n}]
	if !ok {
		return nil, nil, false
	}
	return e.newModel(), e.newAdapter(), true
}
