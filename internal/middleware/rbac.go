package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ecotupper/ecotupperapp/internal/session"
)

// RequireRoles ensures the session's role is one of the allowed roles.
// Usage: route(..., RequireRoles(session.RoleCollaborator))
func RequireRoles(roles ...session.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := CurrentSession(c)
			if s == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session"})
			}

			role := s.Role()
			for _, r := range roles {
				if role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
		}
	}
}
