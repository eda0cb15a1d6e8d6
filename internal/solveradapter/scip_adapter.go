// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

package solveradapter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/giraycoskun/automated-reasoning/internal/domain"
	"github.com/giraycoskun/automated-reasoning/internal/problem"
)

// SCIPAdapter solves *problem.IPModel instances by shelling out to the scip
// binary on $PATH. The solver kernel itself is out of scope; this type only
// handles the LP-format rendering, process invocation, and .sol parsing.
type SCIPAdapter struct {
	// BinaryPath overrides the default "scip" lookup, mainly for tests.
	BinaryPath string
	// TimeLimit bounds solving wall-clock time; zero disables the bound.
	TimeLimit time.Duration
}

// NewSCIPAdapter is the constructor registered for (IP, SUDOKU).
func NewSCIPAdapter(timeLimit time.Duration) Adapter {
	return &SCIPAdapter{BinaryPath: "scip", TimeLimit: timeLimit}
}

// Solve renders ir to a temporary LP file, invokes scip under a wall-clock
// timeout, and parses the resulting .sol file.
func (a *SCIPAdapter) Solve(ctx context.Context, ir any) (domain.RawResult, error) {
	model, ok := ir.(*problem.IPModel)
	if !ok {
		return domain.RawResult{}, fmt.Errorf("%w: SCIPAdapter requires *problem.IPModel, got %T", problem.ErrSolver, ir)
	}

	if a.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.TimeLimit)
		defer cancel()
	}

	lpFile, err := os.CreateTemp("", "sudoku-*.lp")
	if err != nil {
		return domain.RawResult{}, fmt.Errorf("%w: create lp temp file: %v", problem.ErrSolver, err)
	}
	defer os.Remove(lpFile.Name())

	if _, err := lpFile.WriteString(renderLP(model)); err != nil {
		lpFile.Close()
		return domain.RawResult{}, fmt.Errorf("%w: write lp file: %v", problem.ErrSolver, err)
	}
	lpFile.Close()

	solFile := lpFile.Name() + ".sol"
	defer os.Remove(solFile)

	binary := a.BinaryPath
	if binary == "" {
		binary = "scip"
	}
	cmd := exec.CommandContext(ctx, binary, "-c",
		fmt.Sprintf("read %s optimize write solution %s quit", lpFile.Name(), solFile))

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return domain.RawResult{}, fmt.Errorf("%w: scip timed out: %v", problem.ErrSolver, ctx.Err())
		}
		return domain.RawResult{}, fmt.Errorf("%w: scip invocation failed: %v", problem.ErrSolver, err)
	}

	return parseSCIPSolution(solFile)
}

func parseSCIPSolution(path string) (domain.RawResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.RawResult{}, fmt.Errorf("%w: open scip solution: %v", problem.ErrSolver, err)
	}
	defer f.Close()

	result := domain.RawResult{
		Variables:  make(map[string]float64),
		Statistics: make(map[string]any),
	}

	scanner := bufio.NewScanner(f)
	var infeasible bool
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "solution status:"):
			status := strings.TrimSpace(strings.TrimPrefix(line, "solution status:"))
			result.Statistics["solution_status"] = status
			if strings.Contains(lower, "infeasible") {
				infeasible = true
			}
		case strings.HasPrefix(lower, "objective value:"):
			value := strings.TrimSpace(strings.TrimPrefix(line, "objective value:"))
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				result.ObjectiveValue = &f
			}
		default:
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			val, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				continue
			}
			result.Variables[fields[0]] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.RawResult{}, fmt.Errorf("%w: scan scip solution: %v", problem.ErrSolver, err)
	}

	if infeasible {
		result.Status = "unsolvable"
		result.IsSolved = false
		return result, nil
	}

	result.Status = "optimal"
	result.IsSolved = len(result.Variables) > 0
	if !result.IsSolved {
		result.Status = "unsolvable"
	}
	return result, nil
}
