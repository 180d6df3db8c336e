// internal/handler/generation_event_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/unclebandit/campaign-copy-backend/internal/logger"
	"github.com/unclebandit/campaign-copy-backend/internal/repository"
)

const (
	defaultEventLimit = 20
	maxEventLimit     = 100
)

// GenerationEventHandler exposes recorded generation events.
type GenerationEventHandler struct {
	Repo repository.GenerationEventRepositoryInterface
}

func NewGenerationEventHandler(repo repository.GenerationEventRepositoryInterface) *GenerationEventHandler {
	return &GenerationEventHandler{Repo: repo}
}

// ListEvents returns the most recent events, newest first.
func (h *GenerationEventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit := defaultEventLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		l, err := strconv.Atoi(s)
		if err != nil || l < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = l
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}

	events, err := h.Repo.ListRecent(r.Context(), limit)
	if err != nil {
		logger.LogEf("failed to list generation events: %v", err)
		http.Error(w, "failed to fetch generation events", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  events,
		"limit": limit,
	})
}

func (h *GenerationEventHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Repo.GetStats(r.Context())
	if err != nil {
		logger.LogEf("failed to fetch generation stats: %v", err)
		http.Error(w, "failed to fetch generation stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
