// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package nqueens implements the N-Queens domain model, a CSP problem name
// encoded onto the SAT back end: place N queens on an
// N×N board so that no two share a row, column, or diagonal.
package nqueens

import (
	"fmt"

	"github.com/giraycoskun/automated-reasoning/internal/domain"
	"github.com/giraycoskun/automated-reasoning/internal/problem"
)

// var_ numbers the Boolean variable meaning "queen placed at (row, col)" as
// row*n + col + 1, 1-based DIMACS convention.
func var_(n, row, col int) int {
	return row*n + col + 1
}

// Model implements domain.Model for (SAT, N_QUEENS).
type Model struct{}

// New is the constructor registered for (SAT, N_QUEENS).
func New() domain.Model { return Model{} }

func boardSize(p problem.Problem) (int, error) {
	raw, ok := p.ProblemData["n"]
	if !ok {
		return 0, fmt.Errorf("%w: problem_data missing 'n'", problem.ErrEncoder)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: 'n' must be a number, got %T", problem.ErrEncoder, raw)
	}
}

// Encode builds one clause per row requiring at least one queen, pairwise
// at-most-one clauses per row and per column, and pairwise at-most-one
// clauses along every diagonal. There is exactly one queen per row and
// column; diagonals are constrained but not required to be covered.
func (Model) Encode(p problem.Problem) (any, error) {
	n, err := boardSize(p)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: 'n' must be positive, got %d", problem.ErrEncoder, n)
	}

	var clauses [][]int

	atMostOne := func(lits []int) {
		for a := 0; a < len(lits); a++ {
			for b := a + 1; b < len(lits); b++ {
				clauses = append(clauses, []int{-lits[a], -lits[b]})
			}
		}
	}

	// Exactly one queen per row.
	for row := 0; row < n; row++ {
		lits := make([]int, n)
		for col := 0; col < n; col++ {
			lits[col] = var_(n, row, col)
		}
		clauses = append(clauses, append([]int{}, lits...))
		atMostOne(lits)
	}

	// At most one queen per column (exactly-one follows from the row
	// constraint plus pigeonhole once N clauses are satisfied).
	for col := 0; col < n; col++ {
		lits := make([]int, n)
		for row := 0; row < n; row++ {
			lits[row] = var_(n, row, col)
		}
		atMostOne(lits)
	}

	// At most one queen per diagonal (both directions).
	diagDown := make(map[int][]int)
	diagUp := make(map[int][]int)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			diagDown[row-col] = append(diagDown[row-col], var_(n, row, col))
			diagUp[row+col] = append(diagUp[row+col], var_(n, row, col))
		}
	}
	for _, lits := range diagDown {
		atMostOne(lits)
	}
	for _, lits := range diagUp {
		atMostOne(lits)
	}

	return &problem.SATModel{
		NumVars: n * n,
		Clauses: clauses,
	}, nil
}

// Decode reconstructs the board as a list of column indices, one per row.
func (Model) Decode(p problem.Problem, raw domain.RawResult) (problem.Solution, error) {
	if !raw.IsSolved {
		status := problem.StatusUnsolvable
		if raw.Status == "error" {
			status = problem.StatusFailed
		}
		return problem.Solution{
			ProblemID:    p.ProblemID,
			Status:       status,
			SolutionData: map[string]any{"status": raw.Status, "statistics": raw.Statistics},
		}, nil
	}

	n, err := boardSize(p)
	if err != nil {
		return problem.Solution{}, err
	}

	columns := make([]int, n)
	for i := range columns {
		columns[i] = -1
	}
	for _, lit := range raw.Assignment {
		if lit <= 0 {
			continue
		}
		idx := lit - 1
		row, col := idx/n, idx%n
		if row < n {
			columns[row] = col
		}
	}

	return problem.Solution{
		ProblemID: p.ProblemID,
		Status:    problem.StatusSolved,
		SolutionData: map[string]any{
			"columns":    columns,
			"statistics": raw.Statistics,
			"status":     raw.Status,
		},
	}, nil
}
