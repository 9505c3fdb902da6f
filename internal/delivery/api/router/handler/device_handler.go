package handler

import (
	"log/slog"
	"net/http"

	"safezone/internal/delivery/api/response"
	deliverycontext "safezone/internal/delivery/context"
	"safezone/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
}

// RegisterDevice registers the calling device or refreshes its registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req usecase.DeviceInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), deliverycontext.GetDeviceID(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetMyDevice returns the caller's registration
func (h *DeviceHandler) GetMyDevice(c echo.Context) error {
	device, err := h.deviceUC.GetDevice(c.Request().Context(), deliverycontext.GetDeviceID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// UpdateFCMToken handles updating FCM token for a device
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	var req UpdateFCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid FCM token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), deliverycontext.GetDeviceID(c), req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "FCM token updated successfully")
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), deliverycontext.GetDeviceID(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Device deactivated successfully")
}
