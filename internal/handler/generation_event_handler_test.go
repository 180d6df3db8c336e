package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/unclebandit/campaign-copy-backend/internal/handler"
	"github.com/unclebandit/campaign-copy-backend/internal/model"
)

type MockEventRepo struct {
	events    []*model.GenerationEvent
	lastLimit int
	err       error
}

func (m *MockEventRepo) Create(_ context.Context, e *model.GenerationEvent) error {
	m.events = append(m.events, e)
	return nil
}

func (m *MockEventRepo) ListRecent(_ context.Context, limit int) ([]*model.GenerationEvent, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if limit > len(m.events) {
		limit = len(m.events)
	}
	return m.events[:limit], nil
}

func (m *MockEventRepo) GetStats(_ context.Context) (*model.GenerationStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	stats := &model.GenerationStats{BySource: map[string]int{}, ByFailure: map[string]int{}}
	for _, e := range m.events {
		stats.Total++
		stats.BySource[e.Source]++
		if e.FailureKind != "" {
			stats.ByFailure[e.FailureKind]++
		}
	}
	return stats, nil
}

func seededRepo() *MockEventRepo {
	repo := &MockEventRepo{}
	for i, kind := range []string{"", "timeout_exceeded", "schema_violation", "timeout_exceeded"} {
		e := model.NewGenerationEvent("niche")
		e.Source = model.SourceFallback
		if i == 0 {
			e.Source = model.SourceProvider
		}
		e.FailureKind = kind
		repo.events = append(repo.events, e)
	}
	return repo
}

func TestGetStats(t *testing.T) {
	h := handler.NewGenerationEventHandler(seededRepo())

	w := httptest.NewRecorder()
	h.GetStats(w, httptest.NewRequest("GET", "/generation-events/stats", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var stats model.GenerationStats
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if stats.Total != 4 {
		t.Errorf("expected total 4, got %d", stats.Total)
	}
	if stats.BySource[model.SourceFallback] != 3 || stats.BySource[model.SourceProvider] != 1 {
		t.Errorf("unexpected by_source %v", stats.BySource)
	}
	if stats.ByFailure["timeout_exceeded"] != 2 {
		t.Errorf("unexpected by_failure %v", stats.ByFailure)
	}
}

func TestListEventsLimit(t *testing.T) {
	testCase := map[string]struct {
		query     string
		wantCode  int
		wantLimit int
	}{
		"default limit": {query: "", wantCode: http.StatusOK, wantLimit: 20},
		"explicit":      {query: "?limit=2", wantCode: http.StatusOK, wantLimit: 2},
		"clamped":       {query: "?limit=1000", wantCode: http.StatusOK, wantLimit: 100},
		"invalid":       {query: "?limit=abc", wantCode: http.StatusBadRequest},
		"zero":          {query: "?limit=0", wantCode: http.StatusBadRequest},
	}

	for name, test := range testCase {
		t.Run(name, func(t *testing.T) {
			repo := seededRepo()
			h := handler.NewGenerationEventHandler(repo)

			w := httptest.NewRecorder()
			h.ListEvents(w, httptest.NewRequest("GET", "/generation-events"+test.query, nil))

			if w.Code != test.wantCode {
				t.Fatalf("expected %d, got %d", test.wantCode, w.Code)
			}
			if test.wantCode == http.StatusOK && repo.lastLimit != test.wantLimit {
				t.Errorf("expected limit %d, got %d", test.wantLimit, repo.lastLimit)
			}
		})
	}
}

func TestListEventsRepoError(t *testing.T) {
	h := handler.NewGenerationEventHandler(&MockEventRepo{err: errors.New("db down")})

	w := httptest.NewRecorder()
	h.ListEvents(w, httptest.NewRequest("GET", "/generation-events", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
