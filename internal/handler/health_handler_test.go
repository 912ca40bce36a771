package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"email-inbox-api/internal/handler"
)

type pingerMock struct {
	PingFunc func(ctx context.Context) error
}

func (m *pingerMock) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}

func newHealthRouter(db handler.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewHealthHandler(db, zap.NewNop())
	r.GET("/health", h.Health)
	return r
}

func TestHealthOK(t *testing.T) {
	r := newHealthRouter(&pingerMock{
		PingFunc: func(_ context.Context) error { return nil },
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok", "db": "connected"}`, w.Body.String())
}

func TestHealthDBDown(t *testing.T) {
	r := newHealthRouter(&pingerMock{
		PingFunc: func(_ context.Context) error {
			return errors.New("failed to connect: connection refused")
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}
