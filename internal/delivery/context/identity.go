package context

import "github.com/labstack/echo/v4"

// KeyDeviceID holds the caller's plaintext device id. It lives only in the
// echo.Context of the current request and is never logged or persisted.
const KeyDeviceID ContextKey = "deviceID"

// SetDeviceID stores the authenticated device id in echo.Context.
func SetDeviceID(c echo.Context, deviceID string) {
	c.Set(string(KeyDeviceID), deviceID)
}

// GetDeviceID returns the authenticated device id, or "" for anonymous requests.
func GetDeviceID(c echo.Context) string {
	if id, ok := c.Get(string(KeyDeviceID)).(string); ok {
		return id
	}

	return ""
}
