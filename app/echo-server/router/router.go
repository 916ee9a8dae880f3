package router

import (
	"runGuard/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)
	reco.POST("", handler.Recommend)
	reco.POST("/feedback", handler.Feedback)
}

func SetupRouteRoutes(api *echo.Group, handler *rest.RouteHandler, authRequired echo.MiddlewareFunc) {
	routes := api.Group("/routes", authRequired)
	routes.GET("", handler.List)
	routes.GET("/:id", handler.Get)
}

func SetupOpsRoutes(e *echo.Echo, health *rest.HealthHandler) {
	e.GET("/healthz", health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
