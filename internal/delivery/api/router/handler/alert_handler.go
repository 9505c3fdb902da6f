package handler

import (
	"log/slog"
	"net/http"

	"safezone/internal/delivery/api/response"
	"safezone/internal/domain/entity"
	"safezone/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler serves the alert feed.
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// ListAlerts filters recent alerts by severity, type, window and
// optionally by distance from latitude/longitude.
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	query := &usecase.AlertQuery{
		Severity:  entity.AlertSeverity(c.QueryParam("severity")),
		AlertType: entity.AlertType(c.QueryParam("alert_type")),
		Hours:     queryInt(c, "hours"),
		Limit:     queryInt(c, "limit"),
	}

	lat, hasLat, latErr := queryFloat(c, "latitude")
	lng, hasLng, lngErr := queryFloat(c, "longitude")
	radius, _, radiusErr := queryFloat(c, "radius_km")
	if latErr != nil || lngErr != nil || radiusErr != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "latitude, longitude and radius_km must be numbers")
	}
	if hasLat && hasLng {
		query.Latitude = &lat
		query.Longitude = &lng
		query.RadiusKm = radius
	}

	alerts, err := h.alertUC.ListAlerts(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts)
}
