// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package graphcoloring implements the Graph Coloring domain model, a CSP
// problem name encoded onto the SAT back end: assign
// one of K colors to every vertex so that no edge joins two equal colors.
package graphcoloring

import (
	"fmt"

	"github.com/giraycoskun/automated-reasoning/internal/domain"
	"github.com/giraycoskun/automated-reasoning/internal/problem"
)

type edge struct{ u, v int }

// Model implements domain.Model for (SAT, GRAPH_COLORING).
type Model struct{}

// New is the constructor registered for (SAT, GRAPH_COLORING).
func New() domain.Model { return Model{} }

// var_ numbers the Boolean variable meaning "vertex v has color c" as
// v*k + c + 1, 1-based DIMACS convention.
func var_(k, vertex, color int) int {
	return vertex*k + color + 1
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func parseGraph(p problem.Problem) (numVertices, numColors int, edges []edge, err error) {
	rawVertices, ok := p.ProblemData["num_vertices"]
	if !ok {
		return 0, 0, nil, fmt.Errorf("%w: problem_data missing 'num_vertices'", problem.ErrEncoder)
	}
	numVertices, ok = toInt(rawVertices)
	if !ok || numVertices <= 0 {
		return 0, 0, nil, fmt.Errorf("%w: 'num_vertices' must be a positive number", problem.ErrEncoder)
	}

	rawColors, ok := p.ProblemData["num_colors"]
	if !ok {
		return 0, 0, nil, fmt.Errorf("%w: problem_data missing 'num_colors'", problem.ErrEncoder)
	}
	numColors, ok = toInt(rawColors)
	if !ok || numColors <= 0 {
		return 0, 0, nil, fmt.Errorf("%w: 'num_colors' must be a positive number", problem.ErrEncoder)
	}

	rawEdges, ok := p.ProblemData["edges"]
	if !ok {
		return 0, 0, nil, fmt.Errorf("%w: problem_data missing 'edges'", problem.ErrEncoder)
	}
	items, ok := rawEdges.([]any)
	if !ok {
		return 0, 0, nil, fmt.Errorf("%w: 'edges' must be an array", problem.ErrEncoder)
	}
	for i, item := range items {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			return 0, 0, nil, fmt.Errorf("%w: edge %d must be a 2-element array", problem.ErrEncoder, i)
		}
		u, uok := toInt(pair[0])
		v, vok := toInt(pair[1])
		if !uok || !vok {
			return 0, 0, nil, fmt.Errorf("%w: edge %d endpoints must be numbers", problem.ErrEncoder, i)
		}
		edges = append(edges, edge{u: u, v: v})
	}
	return numVertices, numColors, edges, nil
}

// Encode requires every vertex to have at least one color, at most one
// color, and forbids equal colors across each edge's two endpoints.
func (Model) Encode(p problem.Problem) (any, error) {
	n, k, edges, err := parseGraph(p)
	if err != nil {
		return nil, err
	}

	var clauses [][]int

	for vertex := 0; vertex < n; vertex++ {
		lits := make([]int, k)
		for c := 0; c < k; c++ {
			lits[c] = var_(k, vertex, c)
		}
		clauses = append(clauses, append([]int{}, lits...))
		for a := 0; a < k; a++ {
			for b := a + 1; b < k; b++ {
				clauses = append(clauses, []int{-lits[a], -lits[b]})
			}
		}
	}

	for _, e := range edges {
		for c := 0; c < k; c++ {
			clauses = append(clauses, []int{-var_(k, e.u, c), -var_(k, e.v, c)})
		}
	}

	return &problem.SATModel{
		NumVars: n * k,
		Clauses: clauses,
	}, nil
}

// Decode reconstructs the color assignment as a list of color indices, one
// per vertex.
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

	n, k, _, err := parseGraph(p)
	if err != nil {
		return problem.Solution{}, err
	}

	colors := make([]int, n)
	for i := range colors {
		colors[i] = -1
	}
	for _, lit := range raw.Assignment {
		if lit <= 0 {
			continue
		}
		idx := lit - 1
		vertex, color := idx/k, idx%k
		if vertex < n {
			colors[vertex] = color
		}
	}

	return problem.Solution{
		ProblemID: p.ProblemID,
		Status:    problem.StatusSolved,
		SolutionData: map[string]any{
			"colors":     colors,
			"statistics": raw.Statistics,
			"status":     raw.Status,
		},
	}, nil
}
