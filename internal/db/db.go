package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"email-inbox-api/config"
)

// Provider hands out one fresh connection per operation. There is no pool:
// every caller opens its own connection and must close it on all exit paths.
type Provider struct {
	dsn    string
	logger *zap.Logger
}

func NewProvider(cfg config.DBConfig, logger *zap.Logger) *Provider {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Name,
	)

	logger.Info("Configuring PostgreSQL connections",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("db", cfg.Name),
	)

	return &Provider{dsn: dsn, logger: logger}
}

// Connect opens a new connection.
func (p *Provider) Connect(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, p.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return conn, nil
}

// Ping runs a trivial query over a fresh connection, exercising the same
// per-request connection path the data endpoints use.
func (p *Provider) Ping(ctx context.Context) error {
	conn, err := p.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	var one int
	if err := conn.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("failed to ping: %w", err)
	}
	return nil
}
