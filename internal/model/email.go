package model

import (
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by single-row lookups that match nothing. Handlers
// map it to a 404 instead of a server error.
var ErrNotFound = errors.New("record not found")

// EmailInboxRecord is the request shape for POST /email-inbox. Only the two
// address fields are constrained at the application layer; everything else
// relies on the database schema.
type EmailInboxRecord struct {
	MessageID         *string         `json:"message_id"`
	InternetMessageID *string         `json:"internet_message_id"`
	FromName          *string         `json:"from_name"`
	FromEmail         string          `json:"from_email" binding:"required,email"`
	ToEmail           string          `json:"to_email" binding:"required,email"`
	Subject           *string         `json:"subject"`
	BodyPreview       *string         `json:"body_preview"`
	BodyHTML          *string         `json:"body_html"`
	ReceivedAt        *string         `json:"received_at"`
	Channel           string          `json:"channel"`
	ProcessingStatus  string          `json:"processing_status"`
	LinkedCaseID      *int64          `json:"linked_case_id"`
	RawPayload        json.RawMessage `json:"raw_payload"`
}

// ApplyDefaults fills fields the client omitted.
func (e *EmailInboxRecord) ApplyDefaults() {
	if e.Channel == "" {
		e.Channel = "email"
	}
	if e.ProcessingStatus == "" {
		e.ProcessingStatus = "new"
	}
}

// RawPayloadText returns the serialized raw_payload for storage, or nil when
// the payload is absent. The document itself stays opaque.
func (e *EmailInboxRecord) RawPayloadText() *string {
	if len(e.RawPayload) == 0 || string(e.RawPayload) == "null" {
		return nil
	}
	s := string(e.RawPayload)
	return &s
}
