// internal/model/generation_event.go
package model

import (
    "time"

    "github.com/google/uuid"
)

const (
    SourceProvider = "provider"
    SourceFallback = "fallback"
)

type GenerationEvent struct {
    ID          uuid.UUID `db:"id" json:"id"`
    Niche       string    `db:"niche" json:"niche"`
    Source      string    `db:"source" json:"source"`     // provider, fallback
    Template    string    `db:"template" json:"template"` // advertising, generic, empty for provider
    FailureKind string    `db:"failure_kind" json:"failure_kind,omitempty"`
    Cause       string    `db:"cause" json:"cause,omitempty"`
    RawPayload  string    `db:"raw_payload" json:"raw_payload,omitempty"`
    DurationMs  int64     `db:"duration_ms" json:"duration_ms"`
    CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

func NewGenerationEvent(niche string) *GenerationEvent {
    return &GenerationEvent{
        ID:        uuid.New(),
        Niche:     niche,
        CreatedAt: time.Now().UTC(),
    }
}

// GenerationStats aggregates recorded events.
type GenerationStats struct {
    Total     int            `json:"total"`
    BySource  map[string]int `json:"by_source"`
    ByFailure map[string]int `json:"by_failure"`
}
