// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package sudoku implements the canonical Sudoku domain model: IP and SAT
// encoders/decoders for a 9x9 grid with clue cells.
package sudoku

import (
	"fmt"
	"strings"
)

const Size = 9

// Grid is a 9x9 Sudoku board; 0 marks an empty cell.
type Grid [Size][Size]int

// ParseRows converts the HTTP submission format — nine strings of length 9,
// characters [0-9_] with '_' meaning empty — into a Grid.
func ParseRows(rows []string) (Grid, error) {
	var g Grid
	if len(rows) != Size {
		return g, fmt.Errorf("grid must have %d rows, got %d", Size, len(rows))
	}
	for i, row := range rows {
		if len(row) != Size {
			return g, fmt.Errorf("row %d must have length %d, got %d", i, Size, len(row))
		}
		for j := 0; j < Size; j++ {
			c := row[j]
			switch {
			case c == '_':
				g[i][j] = 0
			case c >= '0' && c <= '9':
				g[i][j] = int(c - '0')
			default:
				return g, fmt.Errorf("row %d has invalid character %q at position %d", i, c, j)
			}
		}
	}
	return g, nil
}

// ParseAnySlice accepts the loosely-typed `[]any` shape that comes back out
// of a msgpack/JSON-decoded ProblemData map and parses it as rows.
func ParseAnySlice(raw any) (Grid, error) {
	var g Grid
	items, ok := raw.([]any)
	if !ok {
		return g, fmt.Errorf("grid field must be an array of strings")
	}
	rows := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return g, fmt.Errorf("grid row must be a string")
		}
		rows = append(rows, s)
	}
	return ParseRows(rows)
}

// Rows renders the grid back into the wire format (digits, '_' for empty).
func (g Grid) Rows() []string {
	rows := make([]string, Size)
	for i := 0; i < Size; i++ {
		var b strings.Builder
		for j := 0; j < Size; j++ {
			if g[i][j] == 0 {
				b.WriteByte('_')
			} else {
				b.WriteByte(byte('0' + g[i][j]))
			}
		}
		rows[i] = b.String()
	}
	return rows
}

// String pretty-prints the grid for the text/plain print endpoint.
func (g Grid) String() string {
	var b strings.Builder
	for i := 0; i < Size; i++ {
		if i > 0 && i%3 == 0 {
			b.WriteString("------+-------+------\n")
		}
		for j := 0; j < Size; j++ {
			if j > 0 && j%3 == 0 {
				b.WriteString("| ")
			}
			if g[i][j] == 0 {
				b.WriteString(". ")
			} else {
				fmt.Fprintf(&b, "%d ", g[i][j])
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ToAnySlice converts the grid to the []any shape used in Problem/Solution
// data maps so it round-trips through msgpack/JSON identically to how it
// arrived.
func (g Grid) ToAnySlice() []any {
	rows := g.Rows()
	out := make([]any, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

// Valid reports whether the grid satisfies Sudoku's row/column/box
// uniqueness constraints for all filled cells (used by tests).
func (g Grid) Valid() bool {
	for i := 0; i < Size; i++ {
		var rowSeen, colSeen [Size + 1]bool
		for j := 0; j < Size; j++ {
			if v := g[i][j]; v != 0 {
				if rowSeen[v] {
					return false
				}
				rowSeen[v] = true
			}
			if v := g[j][i]; v != 0 {
				if colSeen[v] {
					return false
				}
				colSeen[v] = true
			}
		}
	}
	for bi := 0; bi < 3; bi++ {
		for bj := 0; bj < 3; bj++ {
			var seen [Size + 1]bool
			for di := 0; di < 3; di++ {
				for dj := 0; dj < 3; dj++ {
					v := g[bi*3+di][bj*3+dj]
					if v != 0 {
						if seen[v] {
							return false
						}
						seen[v] = true
					}
				}
			}
		}
	}
	return true
}

// PreservesClues reports whether every nonzero cell in clue equals the
// corresponding cell in g.
func (g Grid) PreservesClues(clue Grid) bool {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if clue[i][j] != 0 && g[i][j] != clue[i][j] {
				return false
			}
		}
	}
	return true
}

// BoxIndex returns the top-left coordinates of the 3x3 box containing (i,j).
func BoxIndex(i, j int) (int, int) {
	return (i / 3) * 3, (j / 3) * 3
}
