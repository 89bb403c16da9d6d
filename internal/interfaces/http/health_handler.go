package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/shopping-api/internal/application/dto"
	"github.com/jhoicas/shopping-api/internal/infrastructure/postgres"
)

// HealthHandler sondas de vida y de alcanzabilidad del storage.
type HealthHandler struct {
	appName        string
	env            string
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

// NewHealthHandler construye el handler con el pool inyectado.
func NewHealthHandler(appName, env string, pool *pgxpool.Pool, acquireTimeout time.Duration) *HealthHandler {
	return &HealthHandler{appName: appName, env: env, pool: pool, acquireTimeout: acquireTimeout}
}

// Live godoc
// @Summary      Liveness (no toca el storage)
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /health [get]
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(dto.StatusResponse{
		Status:    "OK",
		Message:   "Online Shopping API is running",
		Timestamp: dto.NowISO(),
	})
}

// DB godoc
// @Summary      Alcanzabilidad del storage + estadísticas del pool
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  dto.StatusResponse
// @Router       /health/db [get]
func (h *HealthHandler) DB(c *fiber.Ctx) error {
	stats, err := postgres.Health(c.UserContext(), h.pool, h.acquireTimeout)
	if err != nil {
		resp := dto.StatusResponse{
			Status:    "ERROR",
			Message:   "Database connection failed",
			Timestamp: dto.NowISO(),
		}
		if h.env == "development" {
			resp.Error = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
	return c.JSON(fiber.Map{
		"status":    "OK",
		"message":   "Database connection is healthy",
		"pool":      stats,
		"timestamp": dto.NowISO(),
	})
}
