// SPDX-FileCopyrightText: © 2026 The automated-reasoning Authors
// SPDX-License-Identifier: MIT

// Package queue wraps the AMQP-0.9.1-compatible broker used as the work and
// result queue transport. It declares both queues
// durable, maintains a fixed-size pool of blocking connections, and exposes
// publish/consume with manual acknowledgement.
package queue

import (
	"fmt"

	"github.com/giraycoskun/automated-reasoning/internal/problem"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Config is the subset of connection parameters the adapter needs.
type Config struct {
	Host          string
	Port          int
	User          string
	Password      string
	PoolSize      int
	ProblemsQueue string
	ResultQueue   string
}

// Adapter owns a fixed-size pool of AMQP connections and the names of the
// two durable queues it operates on.
type Adapter struct {
	cfg  Config
	pool chan *amqp.Connection
}

// Dial opens PoolSize connections, declares both queues durable on a
// throwaway channel, and returns an Adapter ready for Publish/Consume.
func Dial(cfg Config) (*Adapter, error) {
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 1
	}

	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)

	a := &Adapter{cfg: cfg, pool: make(chan *amqp.Connection, cfg.PoolSize)}

	for i := 0; i < cfg.PoolSize; i++ {
		conn, err := amqp.Dial(url)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("%w: dial amqp connection %d/%d: %v", problem.ErrQueue, i+1, cfg.PoolSize, err)
		}
		a.pool <- conn
	}

	if err := a.declareQueues(); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *Adapter) declareQueues() error {
	conn := a.acquire()
	defer a.release(conn)

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open declare channel: %v", problem.ErrQueue, err)
	}
	defer ch.Close()

	for _, name := range []string{a.cfg.ProblemsQueue, a.cfg.ResultQueue} {
		if _, err := ch.QueueDeclare(name, true /*durable*/, false, false, false, nil); err != nil {
			return fmt.Errorf("%w: declare queue %s: %v", problem.ErrQueue, name, err)
		}
	}
	return nil
}

// acquire blocks until a pooled connection is available. Pool exhaustion
// blocks the caller; it never errors.
func (a *Adapter) acquire() *amqp.Connection {
	return <-a.pool
}

func (a *Adapter) release(conn *amqp.Connection) {
	a.pool <- conn
}

// Close closes every pooled connection. Safe to call once after Dial
// succeeds or to unwind a partially constructed Adapter.
func (a *Adapter) Close() error {
	close(a.pool)
	var firstErr error
	for conn := range a.pool {
		if conn == nil {
			continue
		}
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishWork enqueues a msgpack-encoded Problem with persistent delivery.
func (a *Adapter) PublishWork(body []byte) error {
	return a.publish(a.cfg.ProblemsQueue, body)
}

// PublishResult enqueues a JSON-encoded result message with persistent
// delivery.
func (a *Adapter) PublishResult(body []byte) error {
	return a.publish(a.cfg.ResultQueue, body)
}

func (a *Adapter) publish(queueName string, body []byte) error {
	conn := a.acquire()
	defer a.release(conn)

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open publish channel: %v", problem.ErrQueue, err)
	}
	defer ch.Close()

	err = ch.Publish(
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/octet-stream",
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: publish to %s: %v", problem.ErrQueue, queueName, err)
	}
	return nil
}

// Consumer is a live, manually-acknowledged consumption of one queue. Each
// Consumer owns one pooled connection for its lifetime; call Close to
// return the connection to the pool.
type Consumer struct {
	adapter *Adapter
	conn    *amqp.Connection
	channel *amqp.Channel
	deliver <-chan amqp.Delivery
}

// ConsumeWork starts consuming the work queue with prefetch=1 for fair
// dispatch across workers.
func (a *Adapter) ConsumeWork(consumerTag string) (*Consumer, error) {
	return a.consume(a.cfg.ProblemsQueue, consumerTag)
}

// ConsumeResult starts consuming the result queue with prefetch=1.
func (a *Adapter) ConsumeResult(consumerTag string) (*Consumer, error) {
	return a.consume(a.cfg.ResultQueue, consumerTag)
}

func (a *Adapter) consume(queueName, consumerTag string) (*Consumer, error) {
	conn := a.acquire()

	ch, err := conn.Channel()
	if err != nil {
		a.release(conn)
		return nil, fmt.Errorf("%w: open consume channel: %v", problem.ErrQueue, err)
	}

	if err := ch.Qos(1, 0, false); err != nil { // prefetch = 1
		ch.Close()
		a.release(conn)
		return nil, fmt.Errorf("%w: set qos: %v", problem.ErrQueue, err)
	}

	deliveries, err := ch.Consume(queueName, consumerTag, false /*auto_ack*/, false, false, false, nil)
	if err != nil {
		ch.Close()
		a.release(conn)
		return nil, fmt.Errorf("%w: consume %s: %v", problem.ErrQueue, queueName, err)
	}

	return &Consumer{adapter: a, conn: conn, channel: ch, deliver: deliveries}, nil
}

// Deliveries returns the channel of incoming messages.
func (c *Consumer) Deliveries() <-chan amqp.Delivery {
	return c.deliver
}

// Ack acknowledges one delivery.
func (c *Consumer) Ack(d amqp.Delivery) error {
	return d.Ack(false)
}

// Nack negatively acknowledges one delivery. requeue controls whether the
// broker redelivers it (retryable I/O errors) or drops it (poison
// messages, per the worker's policy).
func (c *Consumer) Nack(d amqp.Delivery, requeue bool) error {
	return d.Nack(false, requeue)
}

// Close stops consuming, closes the channel, and returns the connection to
// the pool.
func (c *Consumer) Close() error {
	err := c.channel.Close()
	c.adapter.release(c.conn)
	return err
}
