// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

package sudoku

import (
	"fmt"
	"math"

	"github.com/giraycoskun/automated-reasoning/internal/domain"
	"github.com/giraycoskun/automated-reasoning/internal/problem"
)

// varName returns the name of the binary assignment variable x_i_j_k.
func varName(i, j, k int) string {
	return fmt.Sprintf("x_%d_%d_%d", i, j, k)
}

// IPModel implements domain.Model for the Sudoku/IP registry entry.
type IPModel struct{}

// NewIPModel is the constructor registered for (IP, SUDOKU).
func NewIPModel() domain.Model { return IPModel{} }

// Encode builds the 729-binary-variable IP formulation: one-value,
// row/column/box uniqueness, and clue-fixing constraints, plus a
// zero-coefficient placeholder objective (this is a feasibility problem).
func (IPModel) Encode(p problem.Problem) (any, error) {
	rawGrid, ok := p.ProblemData["grid"]
	if !ok {
		return nil, fmt.Errorf("%w: problem_data missing 'grid'", problem.ErrEncoder)
	}
	grid, err := ParseAnySlice(rawGrid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", problem.ErrEncoder, err)
	}

	variables := make(map[string]problem.Variable, Size*Size*Size)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			for k := 1; k <= Size; k++ {
				variables[varName(i, j, k)] = problem.Variable{Type: problem.Binary, LB: 0, UB: 1}
			}
		}
	}

	var constraints []problem.Constraint

	// One value per cell.
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			coeffs := make(map[string]float64, Size)
			for k := 1; k <= Size; k++ {
				coeffs[varName(i, j, k)] = 1
			}
			constraints = append(constraints, problem.Constraint{
				Coefficients: coeffs, Sense: problem.EQ, RHS: 1,
				Name: fmt.Sprintf("cell_%d_%d_one_value", i, j),
			})
		}
	}

	// Row uniqueness.
	for i := 0; i < Size; i++ {
		for k := 1; k <= Size; k++ {
			coeffs := make(map[string]float64, Size)
			for j := 0; j < Size; j++ {
				coeffs[varName(i, j, k)] = 1
			}
			constraints = append(constraints, problem.Constraint{
				Coefficients: coeffs, Sense: problem.EQ, RHS: 1,
				Name: fmt.Sprintf("row_%d_digit_%d", i, k),
			})
		}
	}

	// Column uniqueness.
	for j := 0; j < Size; j++ {
		for k := 1; k <= Size; k++ {
			coeffs := make(map[string]float64, Size)
			for i := 0; i < Size; i++ {
				coeffs[varName(i, j, k)] = 1
			}
			constraints = append(constraints, problem.Constraint{
				Coefficients: coeffs, Sense: problem.EQ, RHS: 1,
				Name: fmt.Sprintf("col_%d_digit_%d", j, k),
			})
		}
	}

	// Box uniqueness.
	for bi := 0; bi < 3; bi++ {
		for bj := 0; bj < 3; bj++ {
			for k := 1; k <= Size; k++ {
				coeffs := make(map[string]float64, Size)
				for di := 0; di < 3; di++ {
					for dj := 0; dj < 3; dj++ {
						coeffs[varName(bi*3+di, bj*3+dj, k)] = 1
					}
				}
				constraints = append(constraints, problem.Constraint{
					Coefficients: coeffs, Sense: problem.EQ, RHS: 1,
					Name: fmt.Sprintf("box_%d_%d_digit_%d", bi, bj, k),
				})
			}
		}
	}

	// Clue fixing.
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if clue := grid[i][j]; clue != 0 {
				constraints = append(constraints, problem.Constraint{
					Coefficients: map[string]float64{varName(i, j, clue): 1},
					Sense:        problem.EQ, RHS: 1,
					Name: fmt.Sprintf("clue_%d_%d", i, j),
				})
			}
		}
	}

	return &problem.IPModel{
		Objective:   problem.Objective{Coefficients: map[string]float64{}, Sense: problem.Minimize},
		Constraints: constraints,
		Variables:   variables,
	}, nil
}

// Decode rounds each x_i_j_k to the nearest integer and reconstructs the
// grid from the variables assigned 1, preserving every clue cell whenever
// the solver reports a success status.
func (IPModel) Decode(p problem.Problem, raw domain.RawResult) (problem.Solution, error) {
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

	var grid Grid
	for name, val := range raw.Variables {
		var i, j, k int
		if _, err := fmt.Sscanf(name, "x_%d_%d_%d", &i, &j, &k); err != nil {
			continue
		}
		if math.Round(val) == 1 {
			grid[i][j] = k
		}
	}

	return problem.Solution{
		ProblemID: p.ProblemID,
		Status:    problem.StatusSolved,
		SolutionData: map[string]any{
			"grid":       grid.ToAnySlice(),
			"statistics": raw.Statistics,
			"status":     raw.Status,
		},
	}, nil
}
