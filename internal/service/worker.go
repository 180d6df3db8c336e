package service

import (
	"context"
	"time"

	"github.com/unclebandit/campaign-copy-backend/internal/logger"
	"github.com/unclebandit/campaign-copy-backend/internal/queue"
	"github.com/unclebandit/campaign-copy-backend/internal/repository"
)

// Worker persists generation events received from a broker.
type Worker struct {
	Store   repository.GenerationEventStore
	Timeout time.Duration
}

func NewWorker(store repository.GenerationEventStore) *Worker {
	return &Worker{
		Store:   store,
		Timeout: 5 * time.Second,
	}
}

// Handle stores one delivered event. It matches queue.Queue handlers, so a
// returned error asks the broker to redeliver.
func (w *Worker) Handle(payload any) error {
	event, err := queue.DecodeEvent(payload)
	if err != nil {
		// malformed bodies are acknowledged; retrying cannot fix them
		logger.LogWf("invalid generation event: %v", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.Timeout)
	defer cancel()
	if err := w.Store.Create(ctx, event); err != nil {
		logger.LogWf("failed to store generation event %s: %v", event.ID, err)
		return err
	}
	return nil
}

// Start consumes topic on q until the process exits.
func (w *Worker) Start(q queue.Queue, topic string) error {
	return q.Subscribe(topic, w.Handle)
}
