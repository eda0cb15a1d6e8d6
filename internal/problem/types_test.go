package problem

import (
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	if got := Key("abc-123"); got != "problem:abc-123" {
		t.Errorf("Key(%q) = %q, want %q", "abc-123", got, "problem:abc-123")
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	solutionTime := 1.5
	errMsg := "boom"
	p := Problem{
		ProblemID:    "abc-123",
		Kind:         "ip_problem",
		ProblemType:  TypeIP,
		ProblemName:  NameSudoku,
		ProblemData:  map[string]any{"grid": []any{"53__7____"}},
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Status:       StatusSolved,
		Solution:     map[string]any{"grid": []any{"534678912"}},
		SolutionTime: &solutionTime,
		ErrorMessage: &errMsg,
	}

	fields := p.Fields()
	got, err := FromFields(toStringFields(fields))
	if err != nil {
		t.Fatalf("FromFields: %v", err)
	}

	if got.ProblemID != p.ProblemID || got.Kind != p.Kind || got.ProblemType != p.ProblemType ||
		got.ProblemName != p.ProblemName || got.Status != p.Status {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, p)
	}
	if !got.CreatedAt.Equal(p.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, p.CreatedAt)
	}
	if got.SolutionTime == nil || *got.SolutionTime != *p.SolutionTime {
		t.Errorf("SolutionTime = %v, want %v", got.SolutionTime, p.SolutionTime)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage != *p.ErrorMessage {
		t.Errorf("ErrorMessage = %v, want %v", got.ErrorMessage, p.ErrorMessage)
	}
}

// Fields returns map[string]any (what UpsertFields accepts); a real Redis
// HGETALL always comes back as map[string]string, so tests convert through
// the same string representation FromFields actually reads.
func toStringFields(fields map[string]any) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = v.(string)
	}
	return out
}

func TestFromFieldsLeavesAbsentFieldsZeroed(t *testing.T) {
	p, err := FromFields(map[string]string{"problem_id": "abc-123", "status": string(StatusCreated)})
	if err != nil {
		t.Fatalf("FromFields: %v", err)
	}
	if p.ProblemID != "abc-123" || p.Status != StatusCreated {
		t.Fatalf("unexpected problem: %+v", p)
	}
	if p.SolutionTime != nil || p.ErrorMessage != nil || p.ProblemData != nil {
		t.Fatalf("expected absent fields to stay zero-valued, got %+v", p)
	}
}
