// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package reexec helps the Worker Supervisor spawn worker OS subprocesses.
// cmd/supervisor and cmd/worker build to distinct binaries placed side by
// side in the same deployment image; WorkerBinaryPath locates the sibling
// worker binary next to the running supervisor so Command can exec it. This
// is the Go analogue of Python multiprocessing's "spawn" start method: a
// fresh address space, no inherited sockets or goroutines, reachable only
// through the arguments and environment handed to exec.Command.
package reexec

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// WorkerBinaryPath resolves the worker binary to spawn. An explicit
// override (e.g. from configuration or a flag) always wins; otherwise it
// looks for a "worker" binary next to the running supervisor's own
// executable, falling back to a $PATH lookup.
func WorkerBinaryPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	self, err := os.Executable()
	if err == nil {
		sibling := filepath.Join(filepath.Dir(self), "worker")
		if _, statErr := os.Stat(sibling); statErr == nil {
			return sibling, nil
		}
	}

	path, err := exec.LookPath("worker")
	if err != nil {
		return "", fmt.Errorf("could not locate worker binary: %w", err)
	}
	return path, nil
}

// Command builds an *exec.Cmd for the worker binary at path, inheriting the
// parent's environment and placing the child in its own process group so
// the supervisor can signal it (and only it) independently of its own
// process group.
func Command(path string, args ...string) *exec.Cmd {
	cmd := exec.Command(path, args...)
	cmd.Env = os.Environ()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	setProcessGroup(cmd)
	return cmd
}
