// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

/*
Starts the HTTP API server: the submission/lookup/print/subscribe surface,
the result-queue listener, and the periodic reconciliation sweep.

For usage details, run api with the command line flag -h or --help.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/giraycoskun/automated-reasoning/internal/clog"
	"github.com/giraycoskun/automated-reasoning/internal/config"
	"github.com/giraycoskun/automated-reasoning/internal/coordinator"
	"github.com/giraycoskun/automated-reasoning/internal/httpapi"
	"github.com/giraycoskun/automated-reasoning/internal/kv"
	"github.com/giraycoskun/automated-reasoning/internal/queue"
	"github.com/giraycoskun/automated-reasoning/internal/streamer"
)

const reconcileInterval = 30 * time.Second

func main() {
	var help, verbose bool
	var addr string
	flag.Usage = usage
	flag.BoolVar(&help, "h", false, "Show usage information")
	flag.BoolVar(&verbose, "v", false, "Show verbose logging output")
	flag.StringVar(&addr, "addr", ":8080", "HTTP listen address")
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
		fmt.Println("api received termination signal, shutting down...")
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

	localStreamer := streamer.New()
	coord := coordinator.New(kvAdapter, queueAdapter, localStreamer)
	bridge := streamer.NewBridge(localStreamer, kvAdapter, clog.New("streamer-bridge", "main"))

	go func() {
		if err := coord.RunResultListener(ctx); err != nil {
			fmt.Printf("result listener exited with error: %v\n", err)
		}
	}()

	go runReconcileLoop(ctx, coord)

	server := httpapi.New(coord, kvAdapter, localStreamer, bridge)

	httpServer := &http.Server{Addr: addr, Handler: server.Router()}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	fmt.Printf("listening on %s...\n", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Printf("http server exited with error: %v\n", err)
		os.Exit(1)
	}
}

func runReconcileLoop(ctx context.Context, coord *coordinator.Coordinator) {
	ticker := time.NewTicker(reconcileInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := coord.Reconcile(ctx); err != nil {
				coord.Errorf("reconcile sweep failed: %v", err)
			}
		}
	}
}

func usage() {
	fmt.Printf(`usage: api [-h|--help] [-v] [-addr addr]

Starts the HTTP API server, result-queue listener, and reconciliation sweep.

Flags:
`)
	flag.PrintDefaults()
}
