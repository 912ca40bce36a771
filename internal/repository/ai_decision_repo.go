package repository

import (
	"context"
	"time"

	"email-inbox-api/internal/db"
	"email-inbox-api/internal/metrics"
)

type AIDecisionRepository struct {
	db *db.Provider
}

func NewAIDecisionRepository(db *db.Provider) *AIDecisionRepository {
	return &AIDecisionRepository{db: db}
}

// List returns AI decisions most-recent-first.
func (r *AIDecisionRepository) List(ctx context.Context, limit, offset int) ([]Row, error) {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	start := time.Now()
	defer func() {
		metrics.RecordDBQueryDuration("select", "ai_decisions", time.Since(start))
	}()

	query := `
        SELECT *
        FROM ai_decisions
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := conn.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}
