// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

/*
Starts a single worker process that consumes the work queue, solves one
problem at a time through its registered domain model and solver adapter,
and publishes the result. Re-exec'd by cmd/supervisor, one OS process per
worker slot.

For usage details, run worker with the command line flag -h or --help.
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
	"github.com/giraycoskun/automated-reasoning/internal/kv"
	"github.com/giraycoskun/automated-reasoning/internal/queue"
	"github.com/giraycoskun/automated-reasoning/internal/registry"
	"github.com/giraycoskun/automated-reasoning/internal/worker"
)

func main() {
	var help, verbose bool
	flag.Usage = usage
	flag.BoolVar(&help, "h", false, "Show usage information")
	flag.BoolVar(&verbose, "v", false, "Show verbose logging output")
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("worker received termination signal, shutting down...")
		cancel()
	}()

	kvAdapter, err := kv.Dial(ctx, kv.Config{
		Host: cfg.RedisHost, Port: cfg.RedisPort, DB: cfg.RedisDB, MaxConnPool: cfg.RedisMaxConnections,
	})
	if err != nil {
		fmt.Printf("failed connecting to redis: %v\n", err)
		os.Exit(1)
	}
	defer kvAdapter.Close()

	queueAdapter, err := queue.Dial(queue.Config{
		Host: cfg.RabbitMQHost, Port: cfg.RabbitMQPort, User: cfg.RabbitMQUser, Password: cfg.RabbitMQPassword,
		PoolSize: cfg.RabbitMQPoolSize, ProblemsQueue: cfg.RabbitMQProblemsQueueName, ResultQueue: cfg.RabbitMQResultQueueName,
	})
	if err != nil {
		fmt.Printf("failed connecting to rabbitmq: %v\n", err)
		os.Exit(1)
	}
	defer queueAdapter.Close()

	reg := registry.New(cfg.SolverTimeLimit)
	w := worker.New(reg, kvAdapter, queueAdapter, cfg.SolverTimeLimit)

	if err := w.Run(ctx); err != nil {
		fmt.Printf("worker exited with error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf(`usage: worker [-h|--help] [-v]

Consumes the work queue and solves problems one at a time.

Flags:
`)
	flag.PrintDefaults()
}
