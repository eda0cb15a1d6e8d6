// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package clog provides conditional, structured logging for application
// components, keyed by component role and a short instance id.
package clog

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var verbose atomic.Bool

// EnableVerbose turns on debug-level output across all CLoggers.
func EnableVerbose() {
	verbose.Store(true)
}

// base is the process-wide zap logger. It defaults to a production-mode
// logger; Init can replace it, and components created before that call keep
// the logger they were built with.
var base = mustBuild()

func mustBuild() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}

// Init replaces the process-wide base logger, e.g. with a development
// encoder config for local runs.
func Init(l *zap.Logger) {
	base = l
}

// A CLogger is a logger scoped to one component instance (a worker, a
// coordinator, a supervisor). It logs unconditionally at Info/Error level and
// conditionally at Debug level, gated by EnableVerbose.
type CLogger struct {
	log *zap.Logger
}

// New creates a CLogger tagged with role and id as structured fields.
func New(role, id string) *CLogger {
	return &CLogger{log: base.With(zap.String("role", role), zap.String("id", UUIDShort(id)))}
}

// Debugf logs conditionally (gated by EnableVerbose) in printf style.
func (c *CLogger) Debugf(format string, a ...any) {
	if !verbose.Load() {
		return
	}
	c.log.Sugar().Debugf(format, a...)
}

// Printf logs unconditionally at info level in printf style.
func (c *CLogger) Printf(format string, a ...any) {
	c.log.Sugar().Infof(format, a...)
}

// Errorf logs unconditionally at error level in printf style.
func (c *CLogger) Errorf(format string, a ...any) {
	c.log.Sugar().Errorf(format, a...)
}

// With returns a child CLogger carrying the given structured fields in
// addition to role/id, e.g. clog.New(...).With("problem_id", id).
func (c *CLogger) With(keysAndValues ...any) *CLogger {
	return &CLogger{log: c.log.Sugar().With(keysAndValues...).Desugar()}
}

// UUIDShort returns the first hyphen-delimited segment of a UUID-formatted
// string, for compact log lines; otherwise the string unchanged.
func UUIDShort(id string) string {
	for i := 0; i < len(id); i++ {
		if id[i] == '-' {
			return id[:i]
		}
	}
	return id
}
