package repository

import (
	"context"
	"time"

	"email-inbox-api/internal/db"
	"email-inbox-api/internal/metrics"
	"email-inbox-api/internal/model"
)

type EmailRepository struct {
	db *db.Provider
}

func NewEmailRepository(db *db.Provider) *EmailRepository {
	return &EmailRepository{db: db}
}

// Insert persists one inbox record and returns the stored row, including
// server-assigned columns.
func (r *EmailRepository) Insert(ctx context.Context, e *model.EmailInboxRecord) (Row, error) {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	start := time.Now()
	defer func() {
		metrics.RecordDBQueryDuration("insert", "email_inbox", time.Since(start))
	}()

	query := `
        INSERT INTO email_inbox (
            message_id,
            internet_message_id,
            from_name,
            from_email,
            to_email,
            subject,
            body_preview,
            body_html,
            received_at,
            channel,
            processing_status,
            linked_case_id,
            raw_payload
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING *
    `
	rows, err := conn.Query(ctx, query,
		e.MessageID,
		e.InternetMessageID,
		e.FromName,
		e.FromEmail,
		e.ToEmail,
		e.Subject,
		e.BodyPreview,
		e.BodyHTML,
		e.ReceivedAt,
		e.Channel,
		e.ProcessingStatus,
		e.LinkedCaseID,
		e.RawPayloadText(),
	)
	if err != nil {
		return nil, err
	}
	return collectOneRow(rows)
}

// FindByID returns one row, or model.ErrNotFound when no row matches.
func (r *EmailRepository) FindByID(ctx context.Context, id int64) (Row, error) {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	start := time.Now()
	defer func() {
		metrics.RecordDBQueryDuration("select", "email_inbox", time.Since(start))
	}()

	query := `
        SELECT *
        FROM email_inbox
        WHERE email_id = $1
    `
	rows, err := conn.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	return collectOneRow(rows)
}

// List returns rows most-recent-first. Limit and offset are passed through
// to the database unmodified.
func (r *EmailRepository) List(ctx context.Context, limit, offset int) ([]Row, error) {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	start := time.Now()
	defer func() {
		metrics.RecordDBQueryDuration("select", "email_inbox", time.Since(start))
	}()

	query := `
        SELECT *
        FROM email_inbox
        ORDER BY received_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := conn.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}
