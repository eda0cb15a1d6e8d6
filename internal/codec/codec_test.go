package codec_test

import (
	"testing"
	"time"

	"github.com/giraycoskun/automated-reasoning/internal/codec"
	"github.com/giraycoskun/automated-reasoning/internal/problem"
	"github.com/google/uuid"
)

func sampleProblem(t problem.ProblemType) problem.Problem {
	return problem.Problem{
		ProblemID:   uuid.NewString(),
		ProblemType: t,
		ProblemName: problem.NameSudoku,
		ProblemData: map[string]any{
			"grid": []any{"530070000", "600195000"},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Status:    problem.StatusCreated,
	}
}

func TestRoundTripIP(t *testing.T) {
	in := sampleProblem(problem.TypeIP)

	wire, err := codec.EncodeProblem(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	out, err := codec.DecodeProblem(wire)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if out.ProblemID != in.ProblemID {
		t.Errorf("problem_id mismatch: got %q want %q", out.ProblemID, in.ProblemID)
	}
	if out.Kind != codec.KindIPProblem {
		t.Errorf("kind = %q, want %q", out.Kind, codec.KindIPProblem)
	}
	if out.Status != in.Status {
		t.Errorf("status mismatch: got %q want %q", out.Status, in.Status)
	}
}

func TestRoundTripSAT(t *testing.T) {
	in := sampleProblem(problem.TypeSAT)

	wire, err := codec.EncodeProblem(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	out, err := codec.DecodeProblem(wire)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Kind != codec.KindSATProblem {
		t.Errorf("kind = %q, want %q", out.Kind, codec.KindSATProblem)
	}
}

func TestDecodeMalformedEnvelopeIsPoison(t *testing.T) {
	wire, err := codec.EncodeProblem(sampleProblem(problem.TypeIP))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// Corrupt the envelope by feeding garbage bytes entirely.
	_, err = codec.DecodeProblem(append([]byte{0xff, 0xff, 0xff}, wire...))
	if err == nil {
		t.Fatal("expected decode error for malformed envelope")
	}
}
