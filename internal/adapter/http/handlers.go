package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"toolrental-backend/internal/infrastructure/cache"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var errNoDatabase = errors.New("database not configured")

type Handler struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewHandler(db *gorm.DB, rdb *redis.Client) *Handler { return &Handler{db: db, rdb: rdb} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Ready reports 503 until both the database and Redis answer a ping.
func (h *Handler) Ready(c echo.Context) error {
	ctx := c.Request().Context()
	checks := map[string]string{"database": "ok", "redis": "ok"}
	status := http.StatusOK

	if err := h.pingDB(ctx); err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if h.rdb == nil {
		checks["redis"] = "not configured"
		status = http.StatusServiceUnavailable
	} else if err := cache.Ping(ctx, h.rdb); err != nil {
		checks["redis"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	label := "ready"
	if status != http.StatusOK {
		label = "unavailable"
	}
	return c.JSON(status, map[string]any{"status": label, "checks": checks})
}

func (h *Handler) pingDB(ctx context.Context) error {
	if h.db == nil {
		return errNoDatabase
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
