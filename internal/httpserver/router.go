package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"email-inbox-api/internal/handler"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	emailHandler *handler.EmailHandler,
	queryHandler *handler.QueryHandler,
	healthHandler *handler.HealthHandler,
) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	// Health endpoints
	r.GET("/health", healthHandler.Health)
	r.HEAD("/health", healthHandler.Health)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Email inbox
	r.POST("/email-inbox", emailHandler.InsertEmail)
	r.GET("/email-inbox", emailHandler.ListEmails)
	r.GET("/email-inbox/:id", emailHandler.GetEmail)

	// Read-only views over the related tables
	r.GET("/cases", queryHandler.ListCases)
	r.GET("/ai-decisions", queryHandler.ListAIDecisions)
	r.GET("/risk-events", queryHandler.ListRiskEvents)

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
