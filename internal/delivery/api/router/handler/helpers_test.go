package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "safezone/internal/delivery/api/middleware"
	"safezone/internal/delivery/api/response"
	"safezone/internal/delivery/api/validator"
	deliverycontext "safezone/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func newJSONRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return req
}

// serve runs a handler directly, the way the router would after the auth
// middleware. params alternates path parameter names and values.
func serve(t *testing.T, h echo.HandlerFunc, req *http.Request, deviceID string, params ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-test")
	if deviceID != "" {
		deliverycontext.SetDeviceID(c, deviceID)
	}
	if len(params) > 0 {
		var names, values []string
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return rec, body
}

func decodeData(t *testing.T, body envelope, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body.Data, target))
}
