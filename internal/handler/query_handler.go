package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"email-inbox-api/internal/repository"
)

// RecordLister is a read-only paginated view over one table.
type RecordLister interface {
	List(ctx context.Context, limit, offset int) ([]repository.Row, error)
}

// QueryHandler serves the read-only endpoints over the case-related tables.
type QueryHandler struct {
	cases      RecordLister
	decisions  RecordLister
	riskEvents RecordLister
	logger     *zap.Logger
}

func NewQueryHandler(cases, decisions, riskEvents RecordLister, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		cases:      cases,
		decisions:  decisions,
		riskEvents: riskEvents,
		logger:     logger,
	}
}

// ListCases handles GET /cases
func (h *QueryHandler) ListCases(c *gin.Context) {
	h.list(c, h.cases, "cases")
}

// ListAIDecisions handles GET /ai-decisions
func (h *QueryHandler) ListAIDecisions(c *gin.Context) {
	h.list(c, h.decisions, "ai_decisions")
}

// ListRiskEvents handles GET /risk-events
func (h *QueryHandler) ListRiskEvents(c *gin.Context) {
	h.list(c, h.riskEvents, "risk_events")
}

func (h *QueryHandler) list(c *gin.Context, store RecordLister, table string) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	rows, err := store.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list records",
			zap.String("table", table),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}
