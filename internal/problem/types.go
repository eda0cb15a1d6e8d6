// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package problem defines the entities shared across the coordinator, the
// worker pipeline, and the HTTP surface: Problem, Solution, their status
// lattice, and the intermediate representations produced by domain models.
package problem

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const keyPrefix = "problem:"

// Key returns the Redis key a Problem with the given id is stored under.
// Shared by the coordinator, worker, and HTTP layer so a record written by
// one is always found by the others.
func Key(id string) string { return keyPrefix + id }

// KeyPattern is the SCAN pattern matching every stored Problem key.
const KeyPattern = keyPrefix + "*"

// ProblemType selects the back-end intermediate representation used to solve
// a problem.
type ProblemType string

const (
	TypeSearch ProblemType = "SEARCH"
	TypeCSP    ProblemType = "CSP"
	TypeSAT    ProblemType = "SAT"
	TypeIP     ProblemType = "IP"
)

// ProblemName selects the domain encoder/decoder pair for a problem.
type ProblemName string

const (
	NameSudoku        ProblemName = "SUDOKU"
	NameNQueens       ProblemName = "N_QUEENS"
	NameGraphColoring ProblemName = "GRAPH_COLORING"
	NameKnapsack      ProblemName = "KNAPSACK"
)

// Status is a Problem's position in the lifecycle lattice. Terminal
// statuses never transition again.
type Status string

const (
	StatusCreated     Status = "CREATED"
	StatusInQueue     Status = "IN_QUEUE"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusSolved      Status = "SOLVED"
	StatusUnsolvable  Status = "UNSOLVABLE"
	StatusUnsupported Status = "UNSUPPORTED"
	StatusFailed      Status = "FAILED"
)

// Terminal reports whether s is one of the four terminal statuses, after
// which a Problem record is immutable.
func (s Status) Terminal() bool {
	switch s {
	case StatusSolved, StatusUnsolvable, StatusUnsupported, StatusFailed:
		return true
	default:
		return false
	}
}

// Problem is the persisted entity tracked from submission through to a
// terminal result. ProblemClass carries the legacy polymorphic-decode
// discriminator; Kind is the canonical tagged-variant discriminator used by
// the codec (see internal/codec).
type Problem struct {
	ProblemID    string         `msgpack:"problem_id" json:"problem_id"`
	Kind         string         `msgpack:"kind" json:"kind"`
	ProblemClass string         `msgpack:"problem_class,omitempty" json:"problem_class,omitempty"`
	ProblemType  ProblemType    `msgpack:"problem_type" json:"problem_type"`
	ProblemName  ProblemName    `msgpack:"problem_name" json:"problem_name"`
	ProblemData  map[string]any `msgpack:"problem_data" json:"problem_data"`
	CreatedAt    time.Time      `msgpack:"created_at" json:"created_at"`
	Status       Status         `msgpack:"status" json:"status"`
	Solution     map[string]any `msgpack:"solution,omitempty" json:"solution,omitempty"`
	SolutionTime *float64       `msgpack:"solution_time,omitempty" json:"solution_time,omitempty"`
	ErrorMessage *string        `msgpack:"error_message,omitempty" json:"error_message,omitempty"`
}

// Clone returns a deep-enough copy of p safe to mutate independently; the
// ProblemData/Solution maps are shallow-copied, which is sufficient since
// domain models never mutate values already stored under existing keys.
func (p Problem) Clone() Problem {
	c := p
	if p.ProblemData != nil {
		c.ProblemData = make(map[string]any, len(p.ProblemData))
		for k, v := range p.ProblemData {
			c.ProblemData[k] = v
		}
	}
	if p.Solution != nil {
		c.Solution = make(map[string]any, len(p.Solution))
		for k, v := range p.Solution {
			c.Solution[k] = v
		}
	}
	return c
}

// Fields flattens p into a map suitable for persisting as a Redis hash via
// a KV adapter's UpsertFields, the same field-level-hash shape used for
// every later partial update, so a record is never written as one Redis
// type and updated as another. Nested values are JSON-encoded since hash
// fields are flat strings.
func (p Problem) Fields() map[string]any {
	fields := map[string]any{
		"problem_id":   p.ProblemID,
		"kind":         p.Kind,
		"problem_type": string(p.ProblemType),
		"problem_name": string(p.ProblemName),
		"status":       string(p.Status),
		"created_at":   p.CreatedAt.Format(time.RFC3339Nano),
	}
	if p.ProblemClass != "" {
		fields["problem_class"] = p.ProblemClass
	}
	if p.ProblemData != nil {
		if encoded, err := json.Marshal(p.ProblemData); err == nil {
			fields["problem_data"] = string(encoded)
		}
	}
	if p.Solution != nil {
		if encoded, err := json.Marshal(p.Solution); err == nil {
			fields["solution"] = string(encoded)
		}
	}
	if p.SolutionTime != nil {
		fields["solution_time"] = strconv.FormatFloat(*p.SolutionTime, 'f', -1, 64)
	}
	if p.ErrorMessage != nil {
		fields["error_message"] = *p.ErrorMessage
	}
	return fields
}

// FromFields reconstructs a Problem from a Redis hash's field map, as
// returned by a KV adapter's GetFields. Fields absent from the map (never
// written, or written by an older partial update) are left zero-valued.
func FromFields(fields map[string]string) (Problem, error) {
	p := Problem{
		ProblemID:    fields["problem_id"],
		Kind:         fields["kind"],
		ProblemClass: fields["problem_class"],
		ProblemType:  ProblemType(fields["problem_type"]),
		ProblemName:  ProblemName(fields["problem_name"]),
		Status:       Status(fields["status"]),
	}

	if v := fields["created_at"]; v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return Problem{}, fmt.Errorf("%w: parsing created_at: %v", ErrCodec, err)
		}
		p.CreatedAt = t
	}
	if v := fields["problem_data"]; v != "" {
		if err := json.Unmarshal([]byte(v), &p.ProblemData); err != nil {
			return Problem{}, fmt.Errorf("%w: decoding problem_data: %v", ErrCodec, err)
		}
	}
	if v := fields["solution"]; v != "" {
		if err := json.Unmarshal([]byte(v), &p.Solution); err != nil {
			return Problem{}, fmt.Errorf("%w: decoding solution: %v", ErrCodec, err)
		}
	}
	if v := fields["solution_time"]; v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Problem{}, fmt.Errorf("%w: parsing solution_time: %v", ErrCodec, err)
		}
		p.SolutionTime = &f
	}
	if v, ok := fields["error_message"]; ok && v != "" {
		p.ErrorMessage = &v
	}

	return p, nil
}

// Solution is the outcome of solving a Problem, written back as an update
// onto its record.
type Solution struct {
	ProblemID    string         `json:"problem_id"`
	SolutionData map[string]any `json:"solution_data"`
	Status       Status         `json:"status"`
}

// ResultMessage is the body published to the result queue. It accepts either
// the canonical "problem_id" field or the legacy "puzzle_id" field on
// decode and always encodes "problem_id".
type ResultMessage struct {
	ProblemID string `json:"problem_id"`
	Status    Status `json:"status"`
	Output    string `json:"output,omitempty"`
}

// UnmarshalJSON accepts either "problem_id" or the legacy "puzzle_id" key,
// preferring "problem_id" when both are present.
func (m *ResultMessage) UnmarshalJSON(data []byte) error {
	var raw struct {
		ProblemID string `json:"problem_id"`
		PuzzleID  string `json:"puzzle_id"`
		Status    Status `json:"status"`
		Output    string `json:"output,omitempty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.ProblemID = raw.ProblemID
	if m.ProblemID == "" {
		m.ProblemID = raw.PuzzleID
	}
	m.Status = raw.Status
	m.Output = raw.Output
	return nil
}
