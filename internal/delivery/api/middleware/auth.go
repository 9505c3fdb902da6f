package middleware

import (
	"strings"

	"safezone/config"
	"safezone/internal/delivery/api/response"
	deliverycontext "safezone/internal/delivery/context"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/errors"
	"safezone/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HeaderDeviceID carries a raw device id when session tokens are not required.
const HeaderDeviceID = "X-Device-Id"

// AuthMiddleware resolves the calling device from a session token or,
// when allowed, from the X-Device-Id header.
type AuthMiddleware struct {
	sessionUC         usecase.SessionUsecase
	allowDeviceHeader bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase, cfg *config.Config) *AuthMiddleware {
	m := &AuthMiddleware{sessionUC: sessionUC}
	if cfg.Auth != nil {
		m.allowDeviceHeader = cfg.Auth.AllowDeviceHeader
	}

	return m
}

// Authenticate rejects requests without a usable device identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deviceID, presented, err := m.resolve(c)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if !presented {
			return response.HandleAppError(c, domainerrors.ErrIdentityRequired)
		}

		deliverycontext.SetDeviceID(c, deviceID)

		return next(c)
	}
}

// Identify attaches the device identity when one is presented and lets
// anonymous requests through. A presented but invalid credential is still
// rejected.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deviceID, presented, err := m.resolve(c)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if presented {
			deliverycontext.SetDeviceID(c, deviceID)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) resolve(c echo.Context) (string, bool, error) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return "", true, errors.Wrap(domainerrors.ErrSessionInvalid, "authorization header is not a bearer token")
		}

		deviceID, err := m.sessionUC.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return "", true, err
		}

		return deviceID, true, nil
	}

	if !m.allowDeviceHeader {
		return "", false, nil
	}

	deviceID := strings.TrimSpace(c.Request().Header.Get(HeaderDeviceID))
	if deviceID == "" {
		return "", false, nil
	}

	return deviceID, true, nil
}
