package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	pool    *pgxpool.Pool
	rdb     *redis.Client
	startAt time.Time
}

func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{
		pool:    pool,
		rdb:     rdb,
		startAt: time.Now(),
	}
}

// depCheck is the serialized result of probing one dependency.
type depCheck struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Live handles GET /health/live. Always OK while the process serves traffic.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready. Postgres down means not ready; Redis is
// the optional counter cache, so a missing or unreachable client only
// degrades the report.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	dbCheck := h.checkDB(ctx)
	redisCheck := h.checkRedis(ctx)

	overall := "healthy"
	if dbCheck.Status != "up" || redisCheck.Status == "down" {
		overall = "degraded"
	}

	status := fiber.StatusOK
	if overall != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbCheck,
			"redis":    redisCheck,
		},
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
	})
}

func (h *HealthHandler) checkDB(ctx context.Context) depCheck {
	start := time.Now()
	err := h.pool.Ping(ctx)
	check := depCheck{Status: "up", LatencyMs: time.Since(start).Milliseconds()}
	if err != nil {
		check.Status = "down"
		check.Error = "connection failed"
	}
	return check
}

func (h *HealthHandler) checkRedis(ctx context.Context) depCheck {
	if h.rdb == nil {
		return depCheck{Status: "disabled"}
	}

	start := time.Now()
	err := h.rdb.Ping(ctx).Err()
	check := depCheck{Status: "up", LatencyMs: time.Since(start).Milliseconds()}
	if err != nil {
		check.Status = "down"
		check.Error = "connection failed"
	}
	return check
}
