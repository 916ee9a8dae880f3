package rest

import (
	"context"
	"net/http"

	"runGuard/business/catalog"
	"runGuard/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RouteService interface {
	ListRoutes(ctx context.Context, f catalog.Filter) (catalog.Page, error)
	GetRoute(ctx context.Context, routeID string) (*domain.Route, error)
}

type RouteHandler struct {
	validate *validator.Validate
	service  RouteService
}

type RouteQuery struct {
	Terrain string `query:"terrain"`
	Band    string `query:"band" validate:"omitempty,oneof=easy moderate hard"`
	Limit   int    `query:"limit" validate:"gte=0,lte=100"`
	Offset  int    `query:"offset" validate:"gte=0"`
}

func NewRouteHandler(service RouteService) *RouteHandler {
	return &RouteHandler{
		validate: validator.New(),
		service:  service,
	}
}

// GET /api/v1/routes?terrain=trail&band=hard&limit=20&offset=0
func (h *RouteHandler) List(c echo.Context) error {
	var q RouteQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	page, err := h.service.ListRoutes(c.Request().Context(), catalog.Filter{
		Terrain: q.Terrain,
		Band:    domain.DifficultyBand(q.Band),
		Limit:   q.Limit,
		Offset:  q.Offset,
	})
	if err != nil {
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(page))
}

// GET /api/v1/routes/:id
func (h *RouteHandler) Get(c echo.Context) error {
	route, err := h.service.GetRoute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(route))
}
