// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

package solveradapter

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/giraycoskun/automated-reasoning/internal/problem"
)

// renderLP writes model in CPLEX-LP format, the input SCIP's "read" command
// expects. Variable order is sorted for deterministic output (useful for
// tests and for diffing solver input across runs).
func renderLP(model *problem.IPModel) string {
	var b strings.Builder

	names := make([]string, 0, len(model.Variables))
	for name := range model.Variables {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString(objectiveKeyword(model.Objective.Sense))
	b.WriteString("\n obj: ")
	b.WriteString(renderTerms(model.Objective.Coefficients, names))
	b.WriteString("\n\nSubject To\n")

	for i, c := range model.Constraints {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("c%d", i)
		}
		for v := range c.Coefficients {
			if _, ok := model.Variables[v]; !ok {
				log.Printf("warning: constraint %s references undeclared variable %s; term skipped", name, v)
			}
		}
		fmt.Fprintf(&b, " %s: %s %s %s\n", name, renderTerms(c.Coefficients, names), lpOperator(c.Sense), formatNumber(c.RHS))
	}

	b.WriteString("\nBounds\n")
	var binaries, integers []string
	for _, name := range names {
		v := model.Variables[name]
		switch v.Type {
		case problem.Binary:
			binaries = append(binaries, name)
		default:
			fmt.Fprintf(&b, " %s <= %s <= %s\n", formatNumber(v.LB), name, formatNumber(v.UB))
			if v.Type == problem.Integer {
				integers = append(integers, name)
			}
		}
	}

	if len(binaries) > 0 {
		b.WriteString("\nBinary\n ")
		b.WriteString(strings.Join(binaries, " "))
		b.WriteString("\n")
	}
	if len(integers) > 0 {
		b.WriteString("\nGeneral\n ")
		b.WriteString(strings.Join(integers, " "))
		b.WriteString("\n")
	}

	b.WriteString("\nEnd\n")
	return b.String()
}

func objectiveKeyword(sense problem.Sense) string {
	if sense == problem.Maximize {
		return "Maximize"
	}
	return "Minimize"
}

// lpOperator maps an IPModel ConstraintSense onto the distinct LP-format
// relational operator. Equality and both one-sided inequalities must render
// to distinct operators; collapsing EQ onto LE (or vice versa) silently
// relaxes every equality constraint in the model.
func lpOperator(sense problem.ConstraintSense) string {
	switch sense {
	case problem.LE:
		return "<="
	case problem.GE:
		return ">="
	case problem.EQ:
		return "="
	default:
		return "="
	}
}

func renderTerms(coeffs map[string]float64, names []string) string {
	var parts []string
	for _, name := range names {
		coeff, ok := coeffs[name]
		if !ok || coeff == 0 {
			continue
		}
		sign := "+"
		if coeff < 0 {
			sign = "-"
			coeff = -coeff
		}
		parts = append(parts, fmt.Sprintf("%s %s %s", sign, formatNumber(coeff), name))
	}
	if len(parts) == 0 {
		return "0"
	}
	joined := strings.Join(parts, " ")
	return strings.TrimPrefix(joined, "+ ")
}

func formatNumber(f float64) string {
	return fmt.Sprintf("%g", f)
}
