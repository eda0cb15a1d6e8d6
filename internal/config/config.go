// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package config loads the environment-driven configuration recognized by
// the core using koanf's confmap (defaults) and env
// providers, in that precedence order.
package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds every recognized environment key with its resolved value.
// Unknown environment keys are ignored; missing ones fall back to the
// defaults below.
type Config struct {
	Environment string

	SolverNumWorkers int

	RabbitMQHost     string
	RabbitMQPort     int
	RabbitMQUser     string
	RabbitMQPassword string
	RabbitMQPoolSize int

	RabbitMQProblemsQueueName string
	RabbitMQResultQueueName   string

	RedisHost           string
	RedisPort           int
	RedisDB             int
	RedisMaxConnections int

	Timezone string

	LogLevel    string
	LogFile     string
	LogRotation string
	LogRetention string

	WorkerShutdownGrace time.Duration
	SolverTimeLimit     time.Duration
}

func defaults() map[string]any {
	return map[string]any{
		"environment": "development",

		"solver_worker_size": 4,

		"rabbitmq_host":      "localhost",
		"rabbitmq_port":      5672,
		"rabbitmq_user":      "guest",
		"rabbitmq_password":  "guest",
		"rabbitmq_pool_size": 5,

		"rabbitmq_problems_queue_name": "problems",
		"rabbitmq_result_queue_name":   "results",

		"redis_host":            "localhost",
		"redis_port":            6379,
		"redis_db":              0,
		"redis_max_connections": 10,

		"timezone": "UTC",

		"log_level":     "info",
		"log_file":      "",
		"log_rotation":  "",
		"log_retention": "",

		"worker_shutdown_grace_seconds": 10,
		"solver_time_limit_seconds":     300,
	}
}

// Load reads defaults, then overlays every recognized environment variable.
// SOLVER_WORKER_SIZE and its alias SOLVER_NUM_WORKERS both map onto
// SolverNumWorkers, with SOLVER_NUM_WORKERS taking precedence if both are
// set, matching the source's historical naming.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: k.String("environment"),

		SolverNumWorkers: k.Int("solver_worker_size"),

		RabbitMQHost:     k.String("rabbitmq_host"),
		RabbitMQPort:     k.Int("rabbitmq_port"),
		RabbitMQUser:     k.String("rabbitmq_user"),
		RabbitMQPassword: k.String("rabbitmq_password"),
		RabbitMQPoolSize: k.Int("rabbitmq_pool_size"),

		RabbitMQProblemsQueueName: firstNonEmpty(k.String("rabbitmq_problems_queue_name"), k.String("rabbitmq_puzzle_queue_name")),
		RabbitMQResultQueueName:   k.String("rabbitmq_result_queue_name"),

		RedisHost:           k.String("redis_host"),
		RedisPort:           k.Int("redis_port"),
		RedisDB:             k.Int("redis_db"),
		RedisMaxConnections: k.Int("redis_max_connections"),

		Timezone: k.String("timezone"),

		LogLevel:     k.String("log_level"),
		LogFile:      k.String("log_file"),
		LogRotation:  k.String("log_rotation"),
		LogRetention: k.String("log_retention"),

		WorkerShutdownGrace: time.Duration(k.Int("worker_shutdown_grace_seconds")) * time.Second,
		SolverTimeLimit:     time.Duration(k.Int("solver_time_limit_seconds")) * time.Second,
	}

	if n := k.String("solver_num_workers"); n != "" {
		if v, err := strconv.Atoi(n); err == nil {
			cfg.SolverNumWorkers = v
		}
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
