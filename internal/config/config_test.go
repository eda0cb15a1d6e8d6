package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RabbitMQHost != "localhost" {
		t.Errorf("RabbitMQHost = %q, want localhost", cfg.RabbitMQHost)
	}
	if cfg.SolverNumWorkers != 4 {
		t.Errorf("SolverNumWorkers = %d, want 4", cfg.SolverNumWorkers)
	}
	if cfg.RabbitMQProblemsQueueName != "problems" {
		t.Errorf("RabbitMQProblemsQueueName = %q, want problems", cfg.RabbitMQProblemsQueueName)
	}
	if cfg.WorkerShutdownGrace.Seconds() != 10 {
		t.Errorf("WorkerShutdownGrace = %v, want 10s", cfg.WorkerShutdownGrace)
	}
	if cfg.SolverTimeLimit.Seconds() != 300 {
		t.Errorf("SolverTimeLimit = %v, want 300s", cfg.SolverTimeLimit)
	}
}

func TestSolverNumWorkersAliasOverride(t *testing.T) {
	os.Setenv("SOLVER_NUM_WORKERS", "7")
	defer os.Unsetenv("SOLVER_NUM_WORKERS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SolverNumWorkers != 7 {
		t.Errorf("SolverNumWorkers = %d, want 7 (alias override)", cfg.SolverNumWorkers)
	}
}

func TestLegacyPuzzleQueueNameFallback(t *testing.T) {
	os.Setenv("RABBITMQ_PROBLEMS_QUEUE_NAME", "")
	os.Setenv("RABBITMQ_PUZZLE_QUEUE_NAME", "legacy-puzzles")
	defer os.Unsetenv("RABBITMQ_PUZZLE_QUEUE_NAME")
	defer os.Unsetenv("RABBITMQ_PROBLEMS_QUEUE_NAME")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RabbitMQProblemsQueueName != "legacy-puzzles" {
		t.Errorf("RabbitMQProblemsQueueName = %q, want legacy-puzzles (fallback)", cfg.RabbitMQProblemsQueueName)
	}
}
