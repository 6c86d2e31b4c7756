package handler

import (
	"context"
	"net/http"
	"time"

	"classifieds/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

type pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the primary database is reachable.
type HealthHandler struct {
	db pinger
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(db *gorm.DB) (*HealthHandler, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return &HealthHandler{db: sqlDB}, nil
}

type healthResponse struct {
	Status string `json:"status"`
}

// HealthCheck answers 200 when the database responds and 503 otherwise.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database is unreachable", nil)
	}

	return response.Success(c, http.StatusOK, healthResponse{Status: "ok"})
}
