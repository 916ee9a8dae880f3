package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	version string
}

func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// GET /healthz
func (h *HealthHandler) Health(c echo.Context) error {
	status := "ok"
	database := "up"

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			// route store outages are served from the built-in catalog
			status = "degraded"
			database = "down"
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":   status,
		"database": database,
		"version":  h.version,
	})
}
