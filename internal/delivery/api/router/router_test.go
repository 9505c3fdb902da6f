package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"safezone/config"
	"safezone/internal/delivery/api/middleware"
	"safezone/internal/delivery/api/response"
	"safezone/internal/delivery/api/router/handler"
	"safezone/internal/delivery/api/validator"
	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/errors"
	mockUC "safezone/internal/mocks/usecase"
	"safezone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	echo       *echo.Echo
	sessionUC  *mockUC.MockSessionUsecase
	incidentUC *mockUC.MockIncidentUsecase
	ledger     *mockUC.MockConfirmationLedger
	profileUC  *mockUC.MockProfileUsecase
}

func createTestRouter(t *testing.T, allowDeviceHeader, testRoutes bool) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Auth:       &config.AuthConfig{AllowDeviceHeader: allowDeviceHeader},
		TestRoutes: &config.TestRoutesConfig{Enabled: testRoutes},
	}

	sessionUC := mockUC.NewMockSessionUsecase(t)
	incidentUC := mockUC.NewMockIncidentUsecase(t)
	ledger := mockUC.NewMockConfirmationLedger(t)
	profileUC := mockUC.NewMockProfileUsecase(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		IncidentHandler: handler.NewIncidentHandler(handler.IncidentHandlerParams{IncidentUC: incidentUC, Ledger: ledger, Logger: logger}),
		ProfileHandler:  handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: profileUC, IncidentUC: incidentUC, Logger: logger}),
		AlertHandler:    handler.NewAlertHandler(handler.AlertHandlerParams{AlertUC: mockUC.NewMockAlertUsecase(t), Logger: logger}),
		DeviceHandler:   handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUC.NewMockDeviceUsecase(t), Logger: logger}),
		SafeZoneHandler: handler.NewSafeZoneHandler(handler.SafeZoneHandlerParams{SafeZoneUC: mockUC.NewMockSafeZoneUsecase(t), Logger: logger}),
		SessionHandler:  handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessionUC, Logger: logger}),
		TestHandler:     handler.NewTestHandler(),
		AuthMiddleware:  middleware.NewAuthMiddleware(sessionUC, cfg),
		Config:          cfg,
	})
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	return routerFixtures{echo: e, sessionUC: sessionUC, incidentUC: incidentUC, ledger: ledger, profileUC: profileUC}
}

func (fx routerFixtures) do(t *testing.T, method, target, body string, headers map[string]string) (int, response.ErrorResponse) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()

	fx.echo.ServeHTTP(rec, req)

	var parsed response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed), rec.Body.String())

	return rec.Code, parsed
}

func TestRouter_Health(t *testing.T) {
	fx := createTestRouter(t, false, false)

	code, _ := fx.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_BearerSession(t *testing.T) {
	fx := createTestRouter(t, false, false)
	fx.sessionUC.EXPECT().Authenticate(mock.Anything, "good-token").Return("device-1", nil)
	fx.profileUC.EXPECT().GetMyProfile(mock.Anything, "device-1").
		Return(&usecase.ProfileView{ScoreProfile: &entity.ScoreProfile{}, Badges: []*entity.Badge{}}, nil)

	code, _ := fx.do(t, http.MethodGet, "/api/v1/profiles/me", "", map[string]string{"Authorization": "Bearer good-token"})

	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_AuthRejections(t *testing.T) {
	t.Run("no credentials", func(t *testing.T) {
		fx := createTestRouter(t, false, false)

		code, body := fx.do(t, http.MethodGet, "/api/v1/profiles/me", "", nil)

		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "IDENTITY_REQUIRED", body.Error.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		fx := createTestRouter(t, false, false)

		code, body := fx.do(t, http.MethodGet, "/api/v1/safezones", "", map[string]string{"Authorization": "Basic abc"})

		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "SESSION_INVALID", body.Error.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		fx := createTestRouter(t, false, false)
		fx.sessionUC.EXPECT().Authenticate(mock.Anything, "stale").
			Return("", errors.Wrap(domainerrors.ErrSessionInvalid, "token is expired"))

		code, body := fx.do(t, http.MethodGet, "/api/v1/devices/me", "", map[string]string{"Authorization": "Bearer stale"})

		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "SESSION_INVALID", body.Error.Code)
	})

	t.Run("device header disabled", func(t *testing.T) {
		fx := createTestRouter(t, false, false)

		code, _ := fx.do(t, http.MethodGet, "/api/v1/profiles/me", "", map[string]string{middleware.HeaderDeviceID: "device-1"})

		assert.Equal(t, http.StatusUnauthorized, code)
	})
}

func TestRouter_DeviceHeader(t *testing.T) {
	fx := createTestRouter(t, true, false)
	fx.ledger.EXPECT().Confirm(mock.Anything, int64(3), "device-1").
		Return(&usecase.ConfirmationResult{PointsEarned: 5, ConfirmationCount: 2, Message: usecase.MessageConfirmed}, nil)

	code, _ := fx.do(t, http.MethodPost, "/api/v1/incidents/3/confirm", "", map[string]string{middleware.HeaderDeviceID: " device-1 "})

	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_AnonymousReport(t *testing.T) {
	body := `{"category":"fire","latitude":25.0,"longitude":121.0,"title":"Smoke"}`

	t.Run("no credentials", func(t *testing.T) {
		fx := createTestRouter(t, true, false)
		fx.incidentUC.EXPECT().CreateIncident(mock.Anything, "", mock.Anything).
			Return(&usecase.CreateIncidentOutput{Incident: &entity.Incident{ID: 1}}, nil)

		code, _ := fx.do(t, http.MethodPost, "/api/v1/incidents", body, nil)

		assert.Equal(t, http.StatusCreated, code)
	})

	t.Run("identified", func(t *testing.T) {
		fx := createTestRouter(t, true, false)
		fx.incidentUC.EXPECT().CreateIncident(mock.Anything, "device-9", mock.Anything).
			Return(&usecase.CreateIncidentOutput{Incident: &entity.Incident{ID: 2}}, nil)

		code, _ := fx.do(t, http.MethodPost, "/api/v1/incidents", body, map[string]string{middleware.HeaderDeviceID: "device-9"})

		assert.Equal(t, http.StatusCreated, code)
	})

	t.Run("bad token is not downgraded to anonymous", func(t *testing.T) {
		fx := createTestRouter(t, true, false)
		fx.sessionUC.EXPECT().Authenticate(mock.Anything, "forged").
			Return("", errors.Wrap(domainerrors.ErrSessionInvalid, "signature is invalid"))

		code, _ := fx.do(t, http.MethodPost, "/api/v1/incidents", body, map[string]string{"Authorization": "Bearer forged"})

		assert.Equal(t, http.StatusUnauthorized, code)
	})
}

func TestRouter_NearbyIsNotAnID(t *testing.T) {
	fx := createTestRouter(t, false, false)
	fx.incidentUC.EXPECT().FindNearby(mock.Anything, mock.Anything).Return([]*entity.NearbyIncident{}, nil)

	code, _ := fx.do(t, http.MethodGet, "/api/v1/incidents/nearby?latitude=1&longitude=2", "", nil)

	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_TestRoutes(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		fx := createTestRouter(t, true, false)

		code, _ := fx.do(t, http.MethodGet, "/test/public", "", nil)

		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("enabled", func(t *testing.T) {
		fx := createTestRouter(t, true, true)

		code, _ := fx.do(t, http.MethodGet, "/test/public", "", nil)
		assert.Equal(t, http.StatusOK, code)

		code, _ = fx.do(t, http.MethodGet, "/test/auth", "", map[string]string{middleware.HeaderDeviceID: "device-1"})
		assert.Equal(t, http.StatusOK, code)
	})
}
