package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/shopping-api/pkg/config"
)

// NewPool crea el pool acotado de conexiones PostgreSQL usando la configuración
// de la app. El pool es una dependencia construida explícitamente y pasada
// hacia abajo: nunca un singleton de proceso.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Registrar codec para NUMERIC/DECIMAL -> shopspring/decimal (todas las conexiones del pool).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// Health verifica la conectividad con un SELECT 1 y devuelve las estadísticas
// del pool (para /health/db). Usa el timeout de adquisición configurado para
// que un pool agotado falle como transitorio en vez de colgar la petición.
func Health(ctx context.Context, pool *pgxpool.Pool, acquireTimeout time.Duration) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()

	var one int
	if err := pool.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return nil, translateError("health check", err)
	}
	stat := pool.Stat()
	return map[string]any{
		"total_conns":    stat.TotalConns(),
		"idle_conns":     stat.IdleConns(),
		"acquired_conns": stat.AcquiredConns(),
		"max_conns":      stat.MaxConns(),
	}, nil
}
