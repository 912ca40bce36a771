package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"email-inbox-api/internal/metrics"
	"email-inbox-api/internal/model"
	"email-inbox-api/internal/repository"
)

// EmailStore is the storage surface the email endpoints need.
type EmailStore interface {
	Insert(ctx context.Context, e *model.EmailInboxRecord) (repository.Row, error)
	FindByID(ctx context.Context, id int64) (repository.Row, error)
	List(ctx context.Context, limit, offset int) ([]repository.Row, error)
}

type EmailHandler struct {
	store  EmailStore
	logger *zap.Logger
}

func NewEmailHandler(store EmailStore, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{
		store:  store,
		logger: logger,
	}
}

// InsertEmail handles POST /email-inbox
func (h *EmailHandler) InsertEmail(c *gin.Context) {
	var rec model.EmailInboxRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	rec.ApplyDefaults()

	row, err := h.store.Insert(c.Request.Context(), &rec)
	if err != nil {
		h.logger.Error("Insert failed",
			zap.String("from_email", rec.FromEmail),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Insert failed: %v", err)})
		return
	}

	metrics.IncrementEmailInserted()
	c.JSON(http.StatusOK, gin.H{
		"status": "inserted",
		"data":   row,
	})
}

// ListEmails handles GET /email-inbox
func (h *EmailHandler) ListEmails(c *gin.Context) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	rows, err := h.store.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list emails", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetEmail handles GET /email-inbox/:id
func (h *EmailHandler) GetEmail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id parameter"})
		return
	}

	row, err := h.store.FindByID(c.Request.Context(), id)
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Email not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to fetch email", zap.Int64("email_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, row)
}
