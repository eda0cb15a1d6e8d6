// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

//go:build !unix

package reexec

import (
	"os/exec"
	"syscall"
)

func setProcessGroup(cmd *exec.Cmd) {}

// Terminate kills the process directly; process-group signaling is a
// unix-only refinement.
func Terminate(cmd *exec.Cmd, _ syscall.Signal) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
