package queue

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/unclebandit/campaign-copy-backend/internal/logger"
	"github.com/unclebandit/campaign-copy-backend/internal/model"
)

const TopicGenerationEvents = "generation_events"

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue delivers to in-process subscribers with bounded retries.
type InMemoryQueue struct {
	mu         sync.Mutex
	handlers   map[string][]func(payload any) error
	maxRetries int
	backoff    time.Duration
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers:   make(map[string][]func(payload any) error),
		maxRetries: 3,
		backoff:    500 * time.Millisecond,
	}
}

// WithRetry overrides the retry budget and the base backoff step.
func (q *InMemoryQueue) WithRetry(maxRetries int, backoff time.Duration) *InMemoryQueue {
	q.maxRetries = maxRetries
	q.backoff = backoff
	return q
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		go q.processJob(handler, JobPayload{Payload: payload, MaxRetries: q.maxRetries})
	}

	return nil
}

// processJob handles retries with linear backoff.
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for {
		err := handler(job.Payload)
		if err == nil {
			return
		}

		job.RetryCount++
		if job.RetryCount > job.MaxRetries {
			logger.LogEf("job permanently failed after %d attempts: %v", job.RetryCount, err)
			return
		}
		logger.LogWf("job failed (attempt %d/%d): %v", job.RetryCount, job.MaxRetries, err)

		time.Sleep(time.Duration(job.RetryCount) * q.backoff)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// DecodeEvent accepts the payload shapes both queues deliver.
func DecodeEvent(payload any) (*model.GenerationEvent, error) {
	switch p := payload.(type) {
	case *model.GenerationEvent:
		return p, nil
	case model.GenerationEvent:
		return &p, nil
	case []byte:
		var event model.GenerationEvent
		if err := json.Unmarshal(p, &event); err != nil {
			return nil, fmt.Errorf("decode generation event: %w", err)
		}
		return &event, nil
	default:
		return nil, fmt.Errorf("unexpected payload type %T", payload)
	}
}
