package graphcoloring

import (
	"testing"

	"github.com/giraycoskun/automated-reasoning/internal/domain"
	"github.com/giraycoskun/automated-reasoning/internal/problem"
)

func triangleProblem() problem.Problem {
	return problem.Problem{
		ProblemID: "g1",
		ProblemData: map[string]any{
			"num_vertices": 3,
			"num_colors":   3,
			"edges":        []any{[]any{0, 1}, []any{1, 2}, []any{0, 2}},
		},
	}
}

func TestEncodeForbidsEqualColorsAcrossEdges(t *testing.T) {
	p := triangleProblem()
	raw, err := Model{}.Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	model := raw.(*problem.SATModel)
	if model.NumVars != 9 {
		t.Errorf("NumVars = %d, want 9", model.NumVars)
	}
	if len(model.Clauses) == 0 {
		t.Fatal("expected non-empty clause set")
	}
	has := func(a, b int) bool {
		for _, clause := range model.Clauses {
			if len(clause) == 2 && clause[0] == a && clause[1] == b {
				return true
			}
		}
		return false
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		for c := 0; c < 3; c++ {
			if !has(-var_(3, e[0], c), -var_(3, e[1], c)) {
				t.Errorf("missing clause forbidding color %d on edge %v", c, e)
			}
		}
	}
}

func TestDecodeReconstructsColorsPerVertex(t *testing.T) {
	p := triangleProblem()
	assignment := []int{var_(3, 0, 0), var_(3, 1, 1), var_(3, 2, 2)}
	sol, err := Model{}.Decode(p, domain.RawResult{IsSolved: true, Status: "satisfiable", Assignment: assignment})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	colors, ok := sol.SolutionData["colors"].([]int)
	if !ok {
		t.Fatalf("colors field has wrong type: %T", sol.SolutionData["colors"])
	}
	want := []int{0, 1, 2}
	for i, c := range want {
		if colors[i] != c {
			t.Errorf("colors[%d] = %d, want %d", i, colors[i], c)
		}
	}
}

func TestEncodeRejectsMissingFields(t *testing.T) {
	p := problem.Problem{ProblemID: "bad", ProblemData: map[string]any{}}
	if _, err := (Model{}).Encode(p); err == nil {
		t.Fatal("expected error for missing graph fields")
	}
}
