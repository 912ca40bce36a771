package repository

import (
	"context"
	"time"

	"email-inbox-api/internal/db"
	"email-inbox-api/internal/metrics"
)

type RiskEventRepository struct {
	db *db.Provider
}

func NewRiskEventRepository(db *db.Provider) *RiskEventRepository {
	return &RiskEventRepository{db: db}
}

// List returns risk events most-recent-first.
func (r *RiskEventRepository) List(ctx context.Context, limit, offset int) ([]Row, error) {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	start := time.Now()
	defer func() {
		metrics.RecordDBQueryDuration("select", "risk_events", time.Since(start))
	}()

	query := `
        SELECT *
        FROM risk_events
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := conn.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}
