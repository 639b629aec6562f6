package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplus/internal/usecase"
)

type AdminMiddleware struct {
	roleUseCase *usecase.RoleUseCase
}

func NewAdminMiddleware(roleUseCase *usecase.RoleUseCase) *AdminMiddleware {
	return &AdminMiddleware{
		roleUseCase: roleUseCase,
	}
}

// AdminOnly rejects callers whose resolved roles do not include admin. The
// check runs against the account email on record, never against anything the
// client sent.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		resolution, err := m.roleUseCase.Resolve(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify admin privileges")
		}

		if !resolution.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
