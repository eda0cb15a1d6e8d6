package sudoku

import (
	"testing"

	"github.com/giraycoskun/automated-reasoning/internal/domain"
	"github.com/giraycoskun/automated-reasoning/internal/problem"
)

func easyPuzzleRows() []string {
	return []string{
		"53__7____",
		"6__195___",
		"_98____6_",
		"8___6___3",
		"4__8_3__1",
		"7___2___6",
		"_6____28_",
		"___419__5",
		"____8__79",
	}
}

func solvedRows() []string {
	return []string{
		"534678912",
		"672195348",
		"198342567",
		"859761423",
		"426853791",
		"713924856",
		"961537284",
		"287419635",
		"345286179",
	}
}

func newProblem(t *testing.T, pt problem.ProblemType) problem.Problem {
	t.Helper()
	return problem.Problem{
		ProblemID:   "test-problem",
		ProblemType: pt,
		ProblemName: problem.NameSudoku,
		ProblemData: map[string]any{"grid": sliceFromRows(easyPuzzleRows())},
	}
}

func sliceFromRows(rows []string) []any {
	out := make([]any, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

func TestGridParseRoundTrip(t *testing.T) {
	g, err := ParseRows(easyPuzzleRows())
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	if got := g.Rows(); len(got) != Size {
		t.Fatalf("Rows() length = %d, want %d", len(got), Size)
	}
	for i, row := range g.Rows() {
		if row != easyPuzzleRows()[i] {
			t.Errorf("row %d round-trip mismatch: got %q want %q", i, row, easyPuzzleRows()[i])
		}
	}
}

func TestIPEncodeProducesExpectedVariableAndConstraintCounts(t *testing.T) {
	p := newProblem(t, problem.TypeIP)
	raw, err := IPModel{}.Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	model, ok := raw.(*problem.IPModel)
	if !ok {
		t.Fatalf("Encode returned %T, want *problem.IPModel", raw)
	}
	if len(model.Variables) != Size*Size*Size {
		t.Errorf("len(Variables) = %d, want %d", len(model.Variables), Size*Size*Size)
	}
	// 4 families of 81 equality constraints, plus up to 81 clue constraints.
	minConstraints := 4 * Size * Size
	if len(model.Constraints) < minConstraints {
		t.Errorf("len(Constraints) = %d, want at least %d", len(model.Constraints), minConstraints)
	}
	if len(model.Constraints) > minConstraints+Size*Size {
		t.Errorf("len(Constraints) = %d, want at most %d", len(model.Constraints), minConstraints+Size*Size)
	}
}

func TestIPDecodePreservesClues(t *testing.T) {
	p := newProblem(t, problem.TypeIP)
	clueGrid, _ := ParseRows(easyPuzzleRows())
	solved, _ := ParseRows(solvedRows())

	vars := make(map[string]float64)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			vars[varName(i, j, solved[i][j])] = 1
		}
	}

	sol, err := IPModel{}.Decode(p, domain.RawResult{IsSolved: true, Status: "optimal", Variables: vars})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sol.Status != problem.StatusSolved {
		t.Fatalf("Status = %v, want SOLVED", sol.Status)
	}
	gotGrid, err := ParseAnySlice(sol.SolutionData["grid"])
	if err != nil {
		t.Fatalf("ParseAnySlice(solution grid): %v", err)
	}
	if !gotGrid.Valid() {
		t.Errorf("decoded grid is not a valid sudoku solution")
	}
	if !gotGrid.PreservesClues(clueGrid) {
		t.Errorf("decoded grid does not preserve clues:\n%s", gotGrid.String())
	}
}

func TestIPDecodeUnsolvedReportsUnsolvable(t *testing.T) {
	p := newProblem(t, problem.TypeIP)
	sol, err := IPModel{}.Decode(p, domain.RawResult{IsSolved: false, Status: "infeasible"})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sol.Status != problem.StatusUnsolvable {
		t.Errorf("Status = %v, want UNSOLVABLE", sol.Status)
	}
}

func TestSATEncodeProducesExpectedClauseShape(t *testing.T) {
	p := newProblem(t, problem.TypeSAT)
	raw, err := SATModel{}.Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	model, ok := raw.(*problem.SATModel)
	if !ok {
		t.Fatalf("Encode returned %T, want *problem.SATModel", raw)
	}
	if model.NumVars != Size*Size*Size {
		t.Errorf("NumVars = %d, want %d", model.NumVars, Size*Size*Size)
	}
	if len(model.Clauses) == 0 {
		t.Fatal("expected non-empty clause set")
	}
	for _, clause := range model.Clauses {
		if len(clause) == 0 {
			t.Fatal("empty clause produced")
		}
	}
}

func TestSATDecodePreservesClues(t *testing.T) {
	p := newProblem(t, problem.TypeSAT)
	clueGrid, _ := ParseRows(easyPuzzleRows())
	solved, _ := ParseRows(solvedRows())

	var assignment []int
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			assignment = append(assignment, satVar(r, c, solved[r][c]-1))
		}
	}

	sol, err := SATModel{}.Decode(p, domain.RawResult{IsSolved: true, Status: "satisfiable", Assignment: assignment})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	gotGrid, err := ParseAnySlice(sol.SolutionData["grid"])
	if err != nil {
		t.Fatalf("ParseAnySlice(solution grid): %v", err)
	}
	if !gotGrid.Valid() {
		t.Errorf("decoded grid is not a valid sudoku solution")
	}
	if !gotGrid.PreservesClues(clueGrid) {
		t.Errorf("decoded grid does not preserve clues:\n%s", gotGrid.String())
	}
}

func TestSATDecodeUnsolvedReportsUnsolvable(t *testing.T) {
	p := newProblem(t, problem.TypeSAT)
	sol, err := SATModel{}.Decode(p, domain.RawResult{IsSolved: false, Status: "unsatisfiable"})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sol.Status != problem.StatusUnsolvable {
		t.Errorf("Status = %v, want UNSOLVABLE", sol.Status)
	}
}

func TestEncodeRejectsMissingGrid(t *testing.T) {
	p := problem.Problem{ProblemID: "bad", ProblemData: map[string]any{}}
	if _, err := (IPModel{}).Encode(p); err == nil {
		t.Fatal("expected error for missing grid")
	}
	if _, err := (SATModel{}).Encode(p); err == nil {
		t.Fatal("expected error for missing grid")
	}
}
