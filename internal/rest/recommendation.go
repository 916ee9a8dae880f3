package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"runGuard/domain"
	"runGuard/pkg/logger"
	"runGuard/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate *validator.Validate
		service  RecommendationService
		learner  FeedbackLearner
		timeout  time.Duration
	}

	RecommendationService interface {
		Recommend(ctx context.Context, userID string, snapshot domain.ContextSnapshot, limit int) ([]domain.Recommendation, error)
	}

	FeedbackLearner interface {
		RecordFeedback(ctx context.Context, userID, routeID string, ratings domain.FeedbackRatings) (domain.UserPreferenceProfile, error)
	}

	WeatherRequest struct {
		Temperature *float64 `json:"temperature" validate:"required"`
		Condition   string   `json:"condition" validate:"required"`
		Humidity    *float64 `json:"humidity" validate:"required,gte=0,lte=100"`
		WindSpeed   *float64 `json:"wind_speed" validate:"required,gte=0"`
	}

	RecommendRequest struct {
		Weather   *WeatherRequest  `json:"weather" validate:"required"`
		TimeOfDay string           `json:"time_of_day" validate:"omitempty,oneof=dawn morning noon afternoon evening night late_night"`
		Location  *domain.GeoPoint `json:"location"`
		Limit     int              `json:"limit" validate:"gte=0"`
	}

	FeedbackRequest struct {
		RouteID    string  `json:"route_id" validate:"required"`
		Overall    int     `json:"overall" validate:"required,gte=1,lte=5"`
		Difficulty float64 `json:"difficulty" validate:"gte=0,lte=10"`
		Safety     float64 `json:"safety" validate:"gte=0,lte=10"`
		Scenery    float64 `json:"scenery" validate:"gte=0,lte=10"`
	}
)

const defaultRequestTimeout = 10 * time.Second

func NewRecommendationHandler(svc RecommendationService, learner FeedbackLearner, timeout time.Duration) *RecommendationHandler {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &RecommendationHandler{
		validate: validator.New(),
		service:  svc,
		learner:  learner,
		timeout:  timeout,
	}
}

// POST /api/v1/recommendations
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()

	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return h.recommendResult(c, http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return h.recommendResult(c, http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return h.recommendResult(c, http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	snapshot := domain.ContextSnapshot{
		Weather: domain.Weather{
			TemperatureC: *req.Weather.Temperature,
			Condition:    domain.WeatherCondition(req.Weather.Condition),
			Humidity:     *req.Weather.Humidity,
			WindSpeedKmh: *req.Weather.WindSpeed,
		},
		TimeBucket: domain.TimeBucket(req.TimeOfDay),
		Location:   req.Location,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.Recommend(ctx, userID, snapshot, req.Limit)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Failed to generate recommendations", "user_id", userID, "error", err)
		}
		return h.recommendResult(c, status, ResponseError{Message: err.Error()})
	}

	return h.recommendResult(c, http.StatusOK, fres.Response.StatusOK(recs))
}

func (h *RecommendationHandler) recommendResult(c echo.Context, status int, body any) error {
	metrics.RecommendRequests.WithLabelValues(strconv.Itoa(status)).Inc()
	return c.JSON(status, body)
}

// POST /api/v1/recommendations/feedback
func (h *RecommendationHandler) Feedback(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return h.feedbackResult(c, http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return h.feedbackResult(c, http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return h.feedbackResult(c, http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile, err := h.learner.RecordFeedback(ctx, userID, req.RouteID, domain.FeedbackRatings{
		Overall:    req.Overall,
		Difficulty: req.Difficulty,
		Safety:     req.Safety,
		Scenery:    req.Scenery,
	})
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Failed to record feedback", "user_id", userID, "route_id", req.RouteID, "error", err)
		}
		return h.feedbackResult(c, status, ResponseError{Message: err.Error()})
	}

	return h.feedbackResult(c, http.StatusCreated, fres.Response.StatusCreated(profile))
}

func (h *RecommendationHandler) feedbackResult(c echo.Context, status int, body any) error {
	metrics.FeedbackRequests.WithLabelValues(strconv.Itoa(status)).Inc()
	return c.JSON(status, body)
}
