package repository

import (
    "context"
    "database/sql"

    "github.com/unclebandit/campaign-copy-backend/internal/model"
)

// GenerationEventStore is the write side used by queue subscribers and workers.
type GenerationEventStore interface {
    Create(ctx context.Context, e *model.GenerationEvent) error
}

type GenerationEventRepositoryInterface interface {
    GenerationEventStore
    ListRecent(ctx context.Context, limit int) ([]*model.GenerationEvent, error)
    GetStats(ctx context.Context) (*model.GenerationStats, error)
}

type GenerationEventRepository struct {
    DB *sql.DB
}

// Create is idempotent on the event ID so redelivered messages are harmless.
func (r *GenerationEventRepository) Create(ctx context.Context, e *model.GenerationEvent) error {
    query := `
        INSERT INTO generation_events
        (id, niche, source, template, failure_kind, cause, raw_payload, duration_ms, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (id) DO NOTHING
    `
    _, err := r.DB.ExecContext(ctx, query,
        e.ID,
        e.Niche,
        e.Source,
        e.Template,
        e.FailureKind,
        e.Cause,
        e.RawPayload,
        e.DurationMs,
        e.CreatedAt,
    )
    return err
}

func (r *GenerationEventRepository) ListRecent(ctx context.Context, limit int) ([]*model.GenerationEvent, error) {
    query := `
        SELECT id, niche, source, template, failure_kind, cause, raw_payload, duration_ms, created_at
        FROM generation_events
        ORDER BY created_at DESC
        LIMIT $1
    `
    rows, err := r.DB.QueryContext(ctx, query, limit)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    events := []*model.GenerationEvent{}
    for rows.Next() {
        e := &model.GenerationEvent{}
        if err := rows.Scan(&e.ID, &e.Niche, &e.Source, &e.Template, &e.FailureKind, &e.Cause, &e.RawPayload, &e.DurationMs, &e.CreatedAt); err != nil {
            return nil, err
        }
        events = append(events, e)
    }
    return events, rows.Err()
}

// GetStats counts events per source and per failure kind.
func (r *GenerationEventRepository) GetStats(ctx context.Context) (*model.GenerationStats, error) {
    stats := &model.GenerationStats{
        BySource:  map[string]int{model.SourceProvider: 0, model.SourceFallback: 0},
        ByFailure: map[string]int{},
    }

    rows, err := r.DB.QueryContext(ctx, `SELECT source, failure_kind, COUNT(*) FROM generation_events GROUP BY source, failure_kind`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    for rows.Next() {
        var source, kind string
        var count int
        if err := rows.Scan(&source, &kind, &count); err != nil {
            return nil, err
        }
        stats.Total += count
        stats.BySource[source] += count
        if kind != "" {
            stats.ByFailure[kind] += count
        }
    }
    return stats, rows.Err()
}

var _ GenerationEventRepositoryInterface = (*GenerationEventRepository)(nil)
