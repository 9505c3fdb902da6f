package handler

import (
	"log/slog"
	"net/http"

	"safezone/internal/delivery/api/response"
	deliverycontext "safezone/internal/delivery/context"
	"safezone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SafeZoneHandlerParams holds dependencies for SafeZoneHandler, injected by Fx.
type SafeZoneHandlerParams struct {
	fx.In

	SafeZoneUC usecase.SafeZoneUsecase
	Logger     *slog.Logger
}

// SafeZoneHandler manages the caller's safe zones.
type SafeZoneHandler struct {
	safeZoneUC usecase.SafeZoneUsecase
	logger     *slog.Logger
}

// NewSafeZoneHandler is the constructor for SafeZoneHandler
func NewSafeZoneHandler(params SafeZoneHandlerParams) *SafeZoneHandler {
	return &SafeZoneHandler{
		safeZoneUC: params.SafeZoneUC,
		logger:     params.Logger,
	}
}

// SetActiveRequest toggles zone matching.
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func (h *SafeZoneHandler) CreateZone(c echo.Context) error {
	var req usecase.SafeZoneInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid safe zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	zone, err := h.safeZoneUC.CreateZone(c.Request().Context(), deliverycontext.GetDeviceID(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, zone)
}

func (h *SafeZoneHandler) ListZones(c echo.Context) error {
	zones, err := h.safeZoneUC.ListZones(c.Request().Context(), deliverycontext.GetDeviceID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zones)
}

// UpdateZone replaces the zone's editable fields. Only the owner may update.
func (h *SafeZoneHandler) UpdateZone(c echo.Context) error {
	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid safe zone ID")
	}

	var req usecase.SafeZoneInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid safe zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	zone, err := h.safeZoneUC.UpdateZone(c.Request().Context(), deliverycontext.GetDeviceID(c), zoneID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone)
}

func (h *SafeZoneHandler) SetZoneActive(c echo.Context) error {
	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid safe zone ID")
	}

	var req SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid safe zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	zone, err := h.safeZoneUC.SetZoneActive(c.Request().Context(), deliverycontext.GetDeviceID(c), zoneID, *req.IsActive)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone)
}

func (h *SafeZoneHandler) DeleteZone(c echo.Context) error {
	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid safe zone ID")
	}

	if err := h.safeZoneUC.DeleteZone(c.Request().Context(), deliverycontext.GetDeviceID(c), zoneID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Safe zone deleted successfully")
}
