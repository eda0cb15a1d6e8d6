// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

/*
Starts the worker pool supervisor, which spawns the worker binary as N
subprocesses (internal/reexec) and forwards termination signals to them,
escalating to SIGKILL after a grace period.

For usage details, run supervisor with the command line flag -h or --help.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/giraycoskun/automated-reasoning/internal/clog"
	"github.com/giraycoskun/automated-reasoning/internal/config"
	"github.com/giraycoskun/automated-reasoning/internal/reexec"
	"github.com/giraycoskun/automated-reasoning/internal/supervisor"
)

func main() {
	var help, verbose bool
	var workerBinary string
	flag.Usage = usage
	flag.BoolVar(&help, "h", false, "Show usage information")
	flag.BoolVar(&verbose, "v", false, "Show verbose logging output")
	flag.StringVar(&workerBinary, "worker-binary", "", "Path to the worker binary (default: sibling \"worker\" binary, else $PATH)")
	flag.Parse()

	if help {
		usage()
		os.Exit(0)
	}
	if verbose {
		clog.EnableVerbose()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed loading configuration: %v\n", err)
		os.Exit(1)
	}

	workerPath, err := reexec.WorkerBinaryPath(workerBinary)
	if err != nil {
		fmt.Printf("failed resolving worker binary: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("supervisor received termination signal, shutting down worker pool...")
		cancel()
	}()

	fmt.Printf("starting %d workers...\n", cfg.SolverNumWorkers)

	sup := supervisor.New(workerPath, nil, cfg.SolverNumWorkers, cfg.WorkerShutdownGrace)
	sup.Run(ctx)
}

func usage() {
	fmt.Printf(`usage: supervisor [-h|--help] [-v] [-worker-binary path]

Spawns and supervises the configured number of worker subprocesses
(SOLVER_WORKER_SIZE / SOLVER_NUM_WORKERS).

Flags:
`)
	flag.PrintDefaults()
}
