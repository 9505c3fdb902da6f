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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC  usecase.ProfileUsecase
	IncidentUC usecase.IncidentUsecase
	Logger     *slog.Logger
}

// ProfileHandler serves the caller's profile, badges and reports, plus the
// public leaderboard.
type ProfileHandler struct {
	profileUC  usecase.ProfileUsecase
	incidentUC usecase.IncidentUsecase
	logger     *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC:  params.ProfileUC,
		incidentUC: params.IncidentUC,
		logger:     params.Logger,
	}
}

// GetMyProfile returns the caller's profile, creating it on first access.
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	profile, err := h.profileUC.GetMyProfile(c.Request().Context(), deliverycontext.GetDeviceID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

func (h *ProfileHandler) GetMyBadges(c echo.Context) error {
	badges, err := h.profileUC.GetMyBadges(c.Request().Context(), deliverycontext.GetDeviceID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, badges)
}

// ListMyIncidents returns incidents the caller reported.
func (h *ProfileHandler) ListMyIncidents(c echo.Context) error {
	incidents, err := h.incidentUC.ListMine(c.Request().Context(), deliverycontext.GetDeviceID(c),
		queryInt(c, "limit"), queryInt(c, "offset"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, incidents)
}

// Leaderboard lists the top profiles by points.
func (h *ProfileHandler) Leaderboard(c echo.Context) error {
	entries, err := h.profileUC.Leaderboard(c.Request().Context(), queryInt(c, "limit"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}
