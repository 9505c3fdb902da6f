package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"safezone/config"
	"safezone/internal/delivery/api/middleware"
	"safezone/internal/delivery/api/response"
	"safezone/internal/delivery/api/router"
	"safezone/internal/delivery/api/router/handler"
	mockUC "safezone/internal/mocks/usecase"
	"safezone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*echo.Echo, *mockUC.MockSessionUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Auth:       &config.AuthConfig{},
		TestRoutes: &config.TestRoutesConfig{},
	}
	cfg.HTTP.MaxRequestBodySize = "1K"

	sessionUC := mockUC.NewMockSessionUsecase(t)
	incidentUC := mockUC.NewMockIncidentUsecase(t)

	e := NewEngine(cfg, logger, router.RouterParams{
		IncidentHandler: handler.NewIncidentHandler(handler.IncidentHandlerParams{IncidentUC: incidentUC, Ledger: mockUC.NewMockConfirmationLedger(t), Logger: logger}),
		ProfileHandler:  handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: mockUC.NewMockProfileUsecase(t), IncidentUC: incidentUC, Logger: logger}),
		AlertHandler:    handler.NewAlertHandler(handler.AlertHandlerParams{AlertUC: mockUC.NewMockAlertUsecase(t), Logger: logger}),
		DeviceHandler:   handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUC.NewMockDeviceUsecase(t), Logger: logger}),
		SafeZoneHandler: handler.NewSafeZoneHandler(handler.SafeZoneHandlerParams{SafeZoneUC: mockUC.NewMockSafeZoneUsecase(t), Logger: logger}),
		SessionHandler:  handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessionUC, Logger: logger}),
		TestHandler:     handler.NewTestHandler(),
		AuthMiddleware:  middleware.NewAuthMiddleware(sessionUC, cfg),
		Config:          cfg,
	})

	return e, sessionUC
}

func TestEngine_SessionRoundTrip(t *testing.T) {
	e, sessionUC := newTestEngine(t)
	sessionUC.EXPECT().CreateSession(mock.Anything, "device-1").
		Return(&usecase.SessionOutput{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(`{"device_id":"device-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderXRequestID, "req-7")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "req-7", rec.Header().Get(echo.HeaderXRequestID))

	var body response.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Meta)
	assert.Equal(t, "req-7", body.Meta.RequestID)
}

func TestEngine_BodyLimit(t *testing.T) {
	e, _ := newTestEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions",
		strings.NewReader(`{"device_id":"`+strings.Repeat("a", 2048)+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestEngine_CORSPreflightAllowsDeviceHeader(t *testing.T) {
	e, _ := newTestEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/safezones", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), middleware.HeaderDeviceID)
}
