package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/Ecotupper/ecotupperapp/internal/session"
)

// SessionHeader carries the opaque session id on requests and responses.
const SessionHeader = "X-Session-ID"

const sessionContextKey = "session"

// SessionMiddleware resolves the caller's session, creating one when the
// header is missing or unknown, and echoes the id back on the response.
func SessionMiddleware(manager *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := manager.Resolve(c.Request().Header.Get(SessionHeader))
			c.Set(sessionContextKey, s)
			c.Response().Header().Set(SessionHeader, s.ID)
			return next(c)
		}
	}
}

// CurrentSession returns the session attached by SessionMiddleware, or nil
// on routes outside the session group.
func CurrentSession(c echo.Context) *session.Session {
	s, _ := c.Get(sessionContextKey).(*session.Session)
	return s
}
