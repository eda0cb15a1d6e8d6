// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package supervisor spawns and supervises a fixed-size pool of worker OS
// subprocesses, forwarding shutdown signals and enforcing a grace period
// before escalating to SIGKILL, using real child processes managed through
// internal/reexec rather than in-process goroutines.
package supervisor

import (
	"context"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/giraycoskun/automated-reasoning/internal/clog"
	"github.com/giraycoskun/automated-reasoning/internal/reexec"
)

// Supervisor owns a fixed-size pool of worker subprocesses.
type Supervisor struct {
	*clog.CLogger
	workerPath string
	workerArgs []string
	count      int
	grace      time.Duration
}

// New returns a Supervisor ready to spawn count worker subprocesses,
// re-executing the binary at workerPath with workerArgs.
func New(workerPath string, workerArgs []string, count int, grace time.Duration) *Supervisor {
	return &Supervisor{
		CLogger:    clog.New("supervisor", "pool"),
		workerPath: workerPath,
		workerArgs: workerArgs,
		count:      count,
		grace:      grace,
	}
}

// Run starts count worker subprocesses and blocks until ctx is cancelled,
// then forwards a graceful-then-forceful shutdown to each. It returns once
// every child has exited.
func (s *Supervisor) Run(ctx context.Context) {
	cmds := make([]*exec.Cmd, 0, s.count)
	var wg sync.WaitGroup

	for i := 0; i < s.count; i++ {
		cmd := reexec.Command(s.workerPath, s.workerArgs...)
		if err := cmd.Start(); err != nil {
			s.Errorf("failed to start worker %d: %v", i, err)
			continue
		}
		s.Printf("started worker %d (pid %d)", i, cmd.Process.Pid)
		cmds = append(cmds, cmd)

		wg.Add(1)
		go func(idx int, c *exec.Cmd) {
			defer wg.Done()
			err := c.Wait()
			if err != nil {
				s.Errorf("worker %d exited with error: %v (not auto-restarted)", idx, err)
			} else {
				s.Printf("worker %d exited cleanly", idx)
			}
		}(i, cmd)
	}

	<-ctx.Done()
	s.Printf("shutdown signal received, stopping %d worker(s)", len(cmds))

	for i, cmd := range cmds {
		if err := reexec.Terminate(cmd, syscall.SIGTERM); err != nil {
			s.Errorf("failed to signal worker %d: %v", i, err)
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.Printf("all workers exited within grace period")
	case <-time.After(s.grace):
		s.Printf("grace period elapsed, force-killing remaining workers")
		for i, cmd := range cmds {
			if err := reexec.Terminate(cmd, syscall.SIGKILL); err != nil {
				s.Errorf("failed to kill worker %d: %v", i, err)
			}
		}
		<-done
	}
}
