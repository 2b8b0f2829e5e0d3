package middleware

import "github.com/labstack/echo/v4"

// editorID returns the authenticated editor, or "anon" for requests that
// did not pass JWTAuth.
func editorID(c echo.Context) string {
	if s, ok := c.Get(ctxEditor).(string); ok && s != "" {
		return s
	}
	return "anon"
}
