package repository

import (
	"context"
	"time"

	"email-inbox-api/internal/db"
	"email-inbox-api/internal/metrics"
)

type CaseRepository struct {
	db *db.Provider
}

func NewCaseRepository(db *db.Provider) *CaseRepository {
	return &CaseRepository{db: db}
}

// List returns cases most-recent-first.
func (r *CaseRepository) List(ctx context.Context, limit, offset int) ([]Row, error) {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	start := time.Now()
	defer func() {
		metrics.RecordDBQueryDuration("select", "cases", time.Since(start))
	}()

	query := `
        SELECT *
        FROM cases
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := conn.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}
