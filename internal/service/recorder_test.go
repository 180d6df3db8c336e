package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaign-copy-backend/internal/logger"
	"github.com/unclebandit/campaign-copy-backend/internal/model"
	"github.com/unclebandit/campaign-copy-backend/internal/queue"
	"github.com/unclebandit/campaign-copy-backend/internal/service"
)

// MockQueue hands every published payload to a channel
type MockQueue struct {
	published chan any
	err       error
}

func (m *MockQueue) Publish(topic string, payload any) error {
	if m.err != nil {
		return m.err
	}
	m.published <- payload
	return nil
}

func (m *MockQueue) Subscribe(topic string, handler func(payload any) error) error { return nil }

func TestQueueRecorderPublishes(t *testing.T) {
	q := &MockQueue{published: make(chan any, 1)}
	rec := &service.QueueRecorder{Queue: q}

	event := model.NewGenerationEvent("Yoga Retreats")
	rec.Record(context.Background(), event)

	select {
	case payload := <-q.published:
		assert.Same(t, event, payload)
	case <-time.After(time.Second):
		t.Fatal("event was not published")
	}
}

func TestMultiRecorderFansOut(t *testing.T) {
	a, b := &MockRecorder{}, &MockRecorder{}
	multi := service.MultiRecorder{a, nil, b}

	multi.Record(context.Background(), model.NewGenerationEvent("x"))

	assert.Len(t, a.Events(), 1)
	assert.Len(t, b.Events(), 1)
}

func TestLogRecorderWritesFallbackAsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger.InitZap(logger.SetWriters(&buf))
	defer logger.InitZap(logger.SetWriters(&bytes.Buffer{}))

	event := model.NewGenerationEvent("Yoga Retreats")
	event.Source = model.SourceFallback
	event.Template = service.TemplateGeneric
	event.FailureKind = "timeout_exceeded"

	service.LogRecorder{}.Record(context.Background(), event)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "fallback", entry["source"])
	assert.Equal(t, "timeout_exceeded", entry["failure_kind"])
}

func TestGeneratorEventsReachInMemoryQueue(t *testing.T) {
	q := queue.NewInMemoryQueue()
	received := make(chan *model.GenerationEvent, 1)
	require.NoError(t, q.Subscribe(queue.TopicGenerationEvents, func(payload any) error {
		event, err := queue.DecodeEvent(payload)
		if err != nil {
			return err
		}
		received <- event
		return nil
	}))

	gen := service.NewContentGenerator(noKey, noDelay, nil, &service.QueueRecorder{Queue: q})
	gen.Generate(context.Background(), "Organic Skincare")

	select {
	case event := <-received:
		assert.Equal(t, "Organic Skincare", event.Niche)
		assert.Equal(t, model.SourceFallback, event.Source)
		assert.Equal(t, "configuration_absent", event.FailureKind)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}
