package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"email-inbox-api/config"
	"email-inbox-api/internal/db"
	"email-inbox-api/internal/handler"
	"email-inbox-api/internal/httpserver"
	"email-inbox-api/internal/repository"
	"email-inbox-api/internal/util"
)

func main() {
	// Load .env if present, then config
	_ = godotenv.Load()
	cfg := config.Load()

	logger := util.NewLogger()
	defer logger.Sync()

	// DB connection provider (one connection per request, no pool)
	provider := db.NewProvider(cfg.DB, logger)

	// Init Repositories
	emailRepo := repository.NewEmailRepository(provider)
	caseRepo := repository.NewCaseRepository(provider)
	decisionRepo := repository.NewAIDecisionRepository(provider)
	riskEventRepo := repository.NewRiskEventRepository(provider)

	// Init Handlers
	emailHandler := handler.NewEmailHandler(emailRepo, logger)
	queryHandler := handler.NewQueryHandler(caseRepo, decisionRepo, riskEventRepo, logger)
	healthHandler := handler.NewHealthHandler(provider, logger)

	// Router
	router := httpserver.NewRouter(emailHandler, queryHandler, healthHandler)

	// Start server
	logger.Info("Starting email inbox API", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		logger.Fatal("server start failed", zap.Error(err))
	}
}
