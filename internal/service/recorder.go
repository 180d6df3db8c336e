package service

import (
	"context"

	"go.uber.org/zap/zapcore"

	"github.com/unclebandit/campaign-copy-backend/internal/logger"
	"github.com/unclebandit/campaign-copy-backend/internal/model"
	"github.com/unclebandit/campaign-copy-backend/internal/queue"
)

// EventRecorder receives one event per generation. Implementations must not
// block the caller and must swallow their own failures.
type EventRecorder interface {
	Record(ctx context.Context, event *model.GenerationEvent)
}

// LogRecorder writes events to the structured log.
type LogRecorder struct{}

func (LogRecorder) Record(_ context.Context, event *model.GenerationEvent) {
	level := zapcore.InfoLevel
	if event.FailureKind != "" && event.Source == model.SourceFallback {
		level = zapcore.WarnLevel
	}
	logger.LogWithFields(level, "campaign content generated",
		"event_id", event.ID.String(),
		"niche", event.Niche,
		"source", event.Source,
		"template", event.Template,
		"failure_kind", event.FailureKind,
		"cause", event.Cause,
		"duration_ms", event.DurationMs,
	)
}

// QueueRecorder publishes events for asynchronous persistence.
type QueueRecorder struct {
	Queue queue.Queue
	Topic string
}

func (r *QueueRecorder) Record(_ context.Context, event *model.GenerationEvent) {
	topic := r.Topic
	if topic == "" {
		topic = queue.TopicGenerationEvents
	}
	go func() {
		if err := r.Queue.Publish(topic, event); err != nil {
			logger.LogWf("failed to publish generation event %s: %v", event.ID, err)
		}
	}()
}

// MultiRecorder fans an event out to every recorder.
type MultiRecorder []EventRecorder

func (m MultiRecorder) Record(ctx context.Context, event *model.GenerationEvent) {
	for _, r := range m {
		if r != nil {
			r.Record(ctx, event)
		}
	}
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, *model.GenerationEvent) {}
