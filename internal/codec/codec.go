// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package codec implements bidirectional serialization between Problem
// values and wire bytes for the work queue.
//
// The wire envelope carries a "kind" tag; Decode dispatches on it into a
// fixed registry of constructors rather than switching on the source's
// ad hoc "problem_class" string. An unknown kind fails with ErrCodec so the
// worker can apply its poison-message policy.
package codec

import (
	"fmt"

	"github.com/giraycoskun/automated-reasoning/internal/problem"
	"github.com/vmihailenco/msgpack/v5"
)

// KindIPProblem and KindSATProblem are the only tagged variants this version
// of the codec understands; both decode into problem.Problem, distinguished
// purely for forward-compatibility with variants that need a different wire
// shape.
const (
	KindIPProblem  = "ip_problem"
	KindSATProblem = "sat_problem"
)

var constructors = map[string]func() any{
	KindIPProblem:  func() any { return &problem.Problem{} },
	KindSATProblem: func() any { return &problem.Problem{} },
}

// envelope is the wire shape: a kind tag plus the msgpack-encoded payload for
// that kind, encoded as a raw sub-message so unknown kinds can still be
// rejected without needing to understand their payload shape.
type envelope struct {
	Kind    string          `msgpack:"kind"`
	Payload msgpack.RawMessage `msgpack:"payload"`
}

// KindForProblemType maps a ProblemType onto its wire kind tag.
func KindForProblemType(t problem.ProblemType) string {
	if t == problem.TypeSAT {
		return KindSATProblem
	}
	return KindIPProblem
}

// EncodeProblem serializes p into the tagged-variant wire envelope.
func EncodeProblem(p problem.Problem) ([]byte, error) {
	if p.Kind == "" {
		p.Kind = KindForProblemType(p.ProblemType)
	}
	payload, err := msgpack.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding problem payload: %v", problem.ErrCodec, err)
	}
	env := envelope{Kind: p.Kind, Payload: payload}
	out, err := msgpack.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding envelope: %v", problem.ErrCodec, err)
	}
	return out, nil
}

// DecodeProblem dispatches on the envelope's kind tag and decodes the
// payload into a Problem. An unrecognized kind, or a payload that does not
// decode as a Problem, is reported as problem.ErrCodec (poison message).
func DecodeProblem(data []byte) (problem.Problem, error) {
	var env envelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return problem.Problem{}, fmt.Errorf("%w: decoding envelope: %v", problem.ErrCodec, err)
	}

	ctor, ok := constructors[env.Kind]
	if !ok {
		return problem.Problem{}, fmt.Errorf("%w: unknown kind %q", problem.ErrCodec, env.Kind)
	}

	target := ctor().(*problem.Problem)
	if err := msgpack.Unmarshal(env.Payload, target); err != nil {
		return problem.Problem{}, fmt.Errorf("%w: decoding payload for kind %q: %v", problem.ErrCodec, env.Kind, err)
	}

	return *target, nil
}
