package handler

import (
	"log/slog"
	"net/http"

	"safezone/internal/delivery/api/response"
	"safezone/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler issues session tokens for device ids.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// CreateSessionRequest represents the request body for opening a session
type CreateSessionRequest struct {
	DeviceID string `json:"device_id" validate:"required,max=256"`
}

// CreateSession exchanges a device id for a bearer token
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid session input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	session, err := h.sessionUC.CreateSession(c.Request().Context(), req.DeviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}
