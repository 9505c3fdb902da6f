package handler

import (
	"log/slog"
	"net/http"

	"safezone/internal/delivery/api/response"
	deliverycontext "safezone/internal/delivery/context"
	"safezone/internal/domain/entity"
	"safezone/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IncidentHandlerParams holds dependencies for IncidentHandler, injected by Fx.
type IncidentHandlerParams struct {
	fx.In

	IncidentUC usecase.IncidentUsecase
	Ledger     usecase.ConfirmationLedger
	Logger     *slog.Logger
}

// IncidentHandler serves incident reporting, reads and confirmations.
type IncidentHandler struct {
	incidentUC usecase.IncidentUsecase
	ledger     usecase.ConfirmationLedger
	logger     *slog.Logger
}

// NewIncidentHandler is the constructor for IncidentHandler
func NewIncidentHandler(params IncidentHandlerParams) *IncidentHandler {
	return &IncidentHandler{
		incidentUC: params.IncidentUC,
		ledger:     params.Ledger,
		logger:     params.Logger,
	}
}

// CreateIncident handles a new report. The reporter is the authenticated
// device, if any.
func (h *IncidentHandler) CreateIncident(c echo.Context) error {
	var req usecase.CreateIncidentInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid incident input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.incidentUC.CreateIncident(c.Request().Context(), deliverycontext.GetDeviceID(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// ListIncidents pages through incidents, newest first.
func (h *IncidentHandler) ListIncidents(c echo.Context) error {
	incidents, err := h.incidentUC.ListIncidents(c.Request().Context(), &usecase.ListIncidentsInput{
		Category: entity.IncidentCategory(c.QueryParam("category")),
		Limit:    queryInt(c, "limit"),
		Offset:   queryInt(c, "offset"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, incidents)
}

// GetIncident returns a single incident.
func (h *IncidentHandler) GetIncident(c echo.Context) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid incident ID")
	}

	incident, err := h.incidentUC.GetIncident(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, incident)
}

// FindNearby searches incidents around latitude/longitude.
func (h *IncidentHandler) FindNearby(c echo.Context) error {
	lat, hasLat, latErr := queryFloat(c, "latitude")
	lng, hasLng, lngErr := queryFloat(c, "longitude")
	if !hasLat || !hasLng || latErr != nil || lngErr != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "latitude and longitude are required numbers")
	}

	radius, _, err := queryFloat(c, "radius_km")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "radius_km must be a number")
	}

	nearby, err := h.incidentUC.FindNearby(c.Request().Context(), &usecase.NearbyQuery{
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radius,
		Limit:     queryInt(c, "limit"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nearby)
}

// ConfirmIncident records the caller's confirmation and returns the award.
func (h *IncidentHandler) ConfirmIncident(c echo.Context) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid incident ID")
	}

	result, err := h.ledger.Confirm(c.Request().Context(), id, deliverycontext.GetDeviceID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetNotificationSummary reports how the incident's fanout went.
func (h *IncidentHandler) GetNotificationSummary(c echo.Context) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid incident ID")
	}

	summary, err := h.incidentUC.NotificationSummary(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
