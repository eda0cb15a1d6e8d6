// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

package sudoku

import (
	"fmt"

	"github.com/giraycoskun/automated-reasoning/internal/domain"
	"github.com/giraycoskun/automated-reasoning/internal/problem"
)

// satVar numbers the Boolean variable meaning "cell (r,c) holds digit v" as
// 81r + 9c + v + 1, 1-based DIMACS convention.
func satVar(r, c, v int) int {
	return 81*r + 9*c + v + 1
}

// SATModel implements domain.Model for the Sudoku/SAT registry entry.
type SATModel struct{}

// NewSATModel is the constructor registered for (SAT, SUDOKU).
func NewSATModel() domain.Model { return SATModel{} }

// Encode builds the CNF: at-least-one and pairwise at-most-one clauses per
// cell/row/column/box, plus unit clauses fixing the clues.
func (SATModel) Encode(p problem.Problem) (any, error) {
	rawGrid, ok := p.ProblemData["grid"]
	if !ok {
		return nil, fmt.Errorf("%w: problem_data missing 'grid'", problem.ErrEncoder)
	}
	grid, err := ParseAnySlice(rawGrid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", problem.ErrEncoder, err)
	}

	var clauses [][]int

	digits := make([]int, Size)
	for v := 0; v < Size; v++ {
		digits[v] = v
	}

	addAtLeastOne := func(lits []int) {
		clause := make([]int, len(lits))
		copy(clause, lits)
		clauses = append(clauses, clause)
	}
	addAtMostOnePairwise := func(lits []int) {
		for a := 0; a < len(lits); a++ {
			for b := a + 1; b < len(lits); b++ {
				clauses = append(clauses, []int{-lits[a], -lits[b]})
			}
		}
	}

	// Cell: each cell holds at least one, at most one digit.
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			lits := make([]int, Size)
			for v := 0; v < Size; v++ {
				lits[v] = satVar(r, c, v)
			}
			addAtLeastOne(lits)
			addAtMostOnePairwise(lits)
		}
	}

	// Row: each digit appears at least once, at most once per row.
	for r := 0; r < Size; r++ {
		for _, v := range digits {
			lits := make([]int, Size)
			for c := 0; c < Size; c++ {
				lits[c] = satVar(r, c, v)
			}
			addAtLeastOne(lits)
			addAtMostOnePairwise(lits)
		}
	}

	// Column.
	for c := 0; c < Size; c++ {
		for _, v := range digits {
			lits := make([]int, Size)
			for r := 0; r < Size; r++ {
				lits[r] = satVar(r, c, v)
			}
			addAtLeastOne(lits)
			addAtMostOnePairwise(lits)
		}
	}

	// Box.
	for bi := 0; bi < 3; bi++ {
		for bj := 0; bj < 3; bj++ {
			for _, v := range digits {
				lits := make([]int, 0, Size)
				for di := 0; di < 3; di++ {
					for dj := 0; dj < 3; dj++ {
						lits = append(lits, satVar(bi*3+di, bj*3+dj, v))
					}
				}
				addAtLeastOne(lits)
				addAtMostOnePairwise(lits)
			}
		}
	}

	// Clue fixing: unit clause for the clue's digit (zero-based v = clue-1).
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if clue := grid[r][c]; clue != 0 {
				clauses = append(clauses, []int{satVar(r, c, clue-1)})
			}
		}
	}

	return &problem.SATModel{
		NumVars: Size * Size * Size,
		Clauses: clauses,
	}, nil
}

// Decode reconstructs the grid from the satisfying assignment's positive
// literals, setting grid[r][c] = v+1 for every true var(r,c,v).
func (SATModel) Decode(p problem.Problem, raw domain.RawResult) (problem.Solution, error) {
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
	for _, lit := range raw.Assignment {
		if lit <= 0 {
			continue
		}
		n := lit - 1
		v := n % 9
		n /= 9
		c := n % 9
		r := n / 9
		grid[r][c] = v + 1
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
