// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

package solveradapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/giraycoskun/automated-reasoning/internal/problem"
)

// renderDIMACS writes model in DIMACS CNF format, the input Glucose expects.
func renderDIMACS(model *problem.SATModel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d\n", model.NumVars, len(model.Clauses))
	for _, clause := range model.Clauses {
		parts := make([]string, len(clause)+1)
		for i, lit := range clause {
			parts[i] = strconv.Itoa(lit)
		}
		parts[len(clause)] = "0"
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}
	return b.String()
}
