package solveradapter

import (
	"os"
	"strings"
	"testing"

	"github.com/giraycoskun/automated-reasoning/internal/problem"
)

// TestLPOperatorsAreDistinct pins the regression this package must never
// reintroduce: collapsing EQ onto LE (or vice versa) silently relaxes every
// equality constraint emitted to the LP file.
func TestLPOperatorsAreDistinct(t *testing.T) {
	model := &problem.IPModel{
		Objective: problem.Objective{Coefficients: map[string]float64{}, Sense: problem.Minimize},
		Variables: map[string]problem.Variable{
			"x": {Type: problem.Binary, LB: 0, UB: 1},
		},
		Constraints: []problem.Constraint{
			{Name: "eq_c", Coefficients: map[string]float64{"x": 1}, Sense: problem.EQ, RHS: 1},
			{Name: "le_c", Coefficients: map[string]float64{"x": 1}, Sense: problem.LE, RHS: 1},
			{Name: "ge_c", Coefficients: map[string]float64{"x": 1}, Sense: problem.GE, RHS: 0},
		},
	}

	lp := renderLP(model)

	cases := []struct {
		name string
		op   string
	}{
		{"eq_c", "="},
		{"le_c", "<="},
		{"ge_c", ">="},
	}
	for _, c := range cases {
		line := findLine(t, lp, c.name)
		if !strings.Contains(line, " "+c.op+" ") {
			t.Errorf("constraint %s: line %q does not contain operator %q", c.name, line, c.op)
		}
	}

	// The GE line must not also satisfy a naive LE substring check, and
	// vice versa — guards against a regex/substring mix-up between "<="
	// and ">=" at render time.
	geLine := findLine(t, lp, "ge_c")
	if strings.Contains(geLine, "<=") {
		t.Errorf("ge_c line incorrectly contains <=: %q", geLine)
	}
	leLine := findLine(t, lp, "le_c")
	if strings.Contains(leLine, ">=") {
		t.Errorf("le_c line incorrectly contains >=: %q", leLine)
	}
	eqLine := findLine(t, lp, "eq_c")
	if strings.Contains(eqLine, "<=") || strings.Contains(eqLine, ">=") {
		t.Errorf("eq_c line incorrectly contains an inequality operator: %q", eqLine)
	}
}

func findLine(t *testing.T, text, containing string) string {
	t.Helper()
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, containing+":") {
			return line
		}
	}
	t.Fatalf("no line containing %q in:\n%s", containing, text)
	return ""
}

func TestParseSCIPSolutionAndGlucoseOutputHandleIndependentPaths(t *testing.T) {
	// Smoke-test that the unexported parsers don't panic on a
	// representative fixture; full process invocation is out of scope
	// without a real scip/glucose binary on $PATH.
	dir := t.TempDir()
	solPath := dir + "/sample.sol"
	writeFile(t, solPath, "solution status: optimal solution found\nobjective value:                               0\nx_0_0_1                                            1   (obj:0)\nx_0_0_2                                            0   (obj:0)\n")

	result, err := parseSCIPSolution(solPath)
	if err != nil {
		t.Fatalf("parseSCIPSolution: %v", err)
	}
	if !result.IsSolved {
		t.Fatal("expected IsSolved = true for optimal solution")
	}
	if result.Variables["x_0_0_1"] != 1 {
		t.Errorf("x_0_0_1 = %v, want 1", result.Variables["x_0_0_1"])
	}

	outPath := dir + "/sample.out"
	writeFile(t, outPath, "SAT\n1 -2 3 0\n")

	satResult, err := parseGlucoseOutput(outPath)
	if err != nil {
		t.Fatalf("parseGlucoseOutput: %v", err)
	}
	if !satResult.IsSolved || satResult.Status != "satisfiable" {
		t.Fatalf("glucose result = (%v, %q), want (true, satisfiable)", satResult.IsSolved, satResult.Status)
	}
	wantLits := []int{1, -2, 3}
	if len(satResult.Assignment) != len(wantLits) {
		t.Fatalf("Assignment = %v, want %v", satResult.Assignment, wantLits)
	}
	for i, lit := range wantLits {
		if satResult.Assignment[i] != lit {
			t.Errorf("Assignment[%d] = %d, want %d", i, satResult.Assignment[i], lit)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
}
