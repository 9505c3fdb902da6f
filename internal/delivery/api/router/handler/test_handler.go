package handler

import (
	"net/http"

	"safezone/internal/delivery/api/response"
	deliverycontext "safezone/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a session token or, when enabled, X-Device-Id
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	deviceID := deliverycontext.GetDeviceID(c)
	if deviceID == "" {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Device ID not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":  "Authentication middleware test successful",
		"deviceID": deviceID,
		"status":   "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "healthy"})
}
