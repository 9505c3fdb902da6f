package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// queryInt reads an optional integer query parameter. Malformed or
// negative values fall back to zero, which the usecases read as "default".
func queryInt(c echo.Context, name string) int {
	if raw := c.QueryParam(name); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			return parsed
		}
	}

	return 0
}

// queryFloat reads an optional float query parameter. ok is false when the
// parameter is absent; err is set when it is present but malformed.
func queryFloat(c echo.Context, name string) (value float64, ok bool, err error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false, nil
	}

	value, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, true, err
	}

	return value, true, nil
}

// pathInt64 parses a numeric path parameter.
func pathInt64(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
