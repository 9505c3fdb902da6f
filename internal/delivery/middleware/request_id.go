package middleware

import (
	"log/slog"
	"regexp"

	deliverycontext "safezone/internal/delivery/context"
	"safezone/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// validRequestID bounds client-supplied ids before they reach logs and
// published incident events.
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// RequestIDMiddleware assigns each request an id and a logger carrying it
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed X-Request-Id header or generates a UUID. The
// id is echoed in the response and stored in both echo and request contexts.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID.MatchString(requestID) {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String(constants.AttrRequestID, requestID))
		req := c.Request()
		c.SetRequest(req.WithContext(deliverycontext.WithLogger(req.Context(), reqLogger)))

		return next(c)
	}
}
