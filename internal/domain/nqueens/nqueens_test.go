package nqueens

import (
	"testing"

	"github.com/giraycoskun/automated-reasoning/internal/domain"
	"github.com/giraycoskun/automated-reasoning/internal/problem"
)

func TestEncodeProducesOneRowClausePerRow(t *testing.T) {
	p := problem.Problem{ProblemID: "q1", ProblemData: map[string]any{"n": 8}}
	raw, err := Model{}.Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	model := raw.(*problem.SATModel)
	if model.NumVars != 64 {
		t.Errorf("NumVars = %d, want 64", model.NumVars)
	}
	if len(model.Clauses) == 0 {
		t.Fatal("expected non-empty clause set")
	}
	// Only the per-row at-least-one clauses have length n; every other
	// clause is a pairwise at-most-one clause of length 2.
	rowClauses := 0
	for _, clause := range model.Clauses {
		if len(clause) == 8 {
			rowClauses++
		}
	}
	if rowClauses != 8 {
		t.Errorf("row clauses = %d, want 8", rowClauses)
	}
}

func TestDecodeReconstructsColumnsPerRow(t *testing.T) {
	p := problem.Problem{ProblemID: "q1", ProblemData: map[string]any{"n": 4}}
	// A known 4-queens solution: rows -> columns [1, 3, 0, 2].
	assignment := []int{var_(4, 0, 1), var_(4, 1, 3), var_(4, 2, 0), var_(4, 3, 2)}
	sol, err := Model{}.Decode(p, domain.RawResult{IsSolved: true, Status: "satisfiable", Assignment: assignment})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	cols, ok := sol.SolutionData["columns"].([]int)
	if !ok {
		t.Fatalf("columns field has wrong type: %T", sol.SolutionData["columns"])
	}
	want := []int{1, 3, 0, 2}
	for i, c := range want {
		if cols[i] != c {
			t.Errorf("columns[%d] = %d, want %d", i, cols[i], c)
		}
	}
}

func TestEncodeRejectsMissingN(t *testing.T) {
	p := problem.Problem{ProblemID: "bad", ProblemData: map[string]any{}}
	if _, err := (Model{}).Encode(p); err == nil {
		t.Fatal("expected error for missing n")
	}
}
