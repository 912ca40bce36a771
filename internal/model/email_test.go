package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"email-inbox-api/internal/model"
)

func TestApplyDefaults(t *testing.T) {
	rec := model.EmailInboxRecord{
		FromEmail: "alice@example.com",
		ToEmail:   "desk@example.com",
	}
	rec.ApplyDefaults()
	assert.Equal(t, "email", rec.Channel)
	assert.Equal(t, "new", rec.ProcessingStatus)

	rec = model.EmailInboxRecord{
		Channel:          "webform",
		ProcessingStatus: "triaged",
	}
	rec.ApplyDefaults()
	assert.Equal(t, "webform", rec.Channel)
	assert.Equal(t, "triaged", rec.ProcessingStatus)
}

func TestRawPayloadText(t *testing.T) {
	var rec model.EmailInboxRecord
	assert.Nil(t, rec.RawPayloadText())

	rec.RawPayload = json.RawMessage("null")
	assert.Nil(t, rec.RawPayloadText())

	rec.RawPayload = json.RawMessage(`{"foo": "bar", "n": 3}`)
	text := rec.RawPayloadText()
	require.NotNil(t, text)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(*text), &doc))
	assert.Equal(t, map[string]any{"foo": "bar", "n": float64(3)}, doc)
}

func TestEmailInboxRecordBind(t *testing.T) {
	body := `{
		"message_id": "m-1",
		"from_name": "Alice",
		"from_email": "alice@example.com",
		"to_email": "desk@example.com",
		"received_at": "2026-08-01T12:00:00Z",
		"linked_case_id": 9,
		"raw_payload": {"foo": "bar"}
	}`

	var rec model.EmailInboxRecord
	require.NoError(t, json.Unmarshal([]byte(body), &rec))

	require.NotNil(t, rec.MessageID)
	assert.Equal(t, "m-1", *rec.MessageID)
	assert.Nil(t, rec.InternetMessageID)
	assert.Equal(t, "alice@example.com", rec.FromEmail)
	require.NotNil(t, rec.ReceivedAt)
	assert.Equal(t, "2026-08-01T12:00:00Z", *rec.ReceivedAt)
	require.NotNil(t, rec.LinkedCaseID)
	assert.Equal(t, int64(9), *rec.LinkedCaseID)
	assert.JSONEq(t, `{"foo": "bar"}`, string(rec.RawPayload))
}
