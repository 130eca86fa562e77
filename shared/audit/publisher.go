// Package audit publishes user-action events to Kafka. Auditing is strictly
// best-effort: a nil Publisher drops everything, a full queue drops the
// event, and no caller ever blocks on Kafka.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Event records one user-visible action.
type Event struct {
	ID       string    `json:"id"`
	ActorID  string    `json:"actor_id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	TenantID string    `json:"tenant_id,omitempty"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity,omitempty"`
	EntityID string    `json:"entity_id,omitempty"`
	At       time.Time `json:"at"`
}

// Publisher writes audit events to Kafka through a small worker pool.
type Publisher struct {
	writer   *kafka.Writer
	topic    string
	events   chan Event
	shutdown chan struct{}
	wg       sync.WaitGroup
}

const (
	workerCount = 4
	queueSize   = 1000
)

// NewPublisher creates a publisher for the given broker and topic and starts
// its workers.
func NewPublisher(broker, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    100,
	}

	p := &Publisher{
		writer:   writer,
		topic:    topic,
		events:   make(chan Event, queueSize),
		shutdown: make(chan struct{}),
	}

	for i := 0; i < workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	return p
}

// Publish queues an event without blocking. Safe to call on a nil Publisher.
func (p *Publisher) Publish(e Event) {
	if p == nil {
		return
	}
	select {
	case p.events <- e:
	default:
		logrus.WithField("action", e.Action).Warn("audit queue full, event dropped")
	}
}

func (p *Publisher) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case e := <-p.events:
			if err := p.send(e); err != nil {
				logrus.WithError(err).WithField("worker", id).Warn("failed to publish audit event")
			}
		case <-p.shutdown:
			return
		}
	}
}

func (p *Publisher) send(e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(e.TenantID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(e.Action)},
			{Key: "actor_id", Value: []byte(e.ActorID)},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write audit event: %w", err)
	}
	return nil
}

// Close stops the workers and flushes the Kafka writer. Safe on nil.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	close(p.shutdown)
	p.wg.Wait()
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close audit writer: %w", err)
	}
	return nil
}
