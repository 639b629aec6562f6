package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplus/internal/usecase"
)

type VerifiedMiddleware struct {
	verificationUseCase *usecase.VerificationUseCase
}

func NewVerifiedMiddleware(verificationUseCase *usecase.VerificationUseCase) *VerifiedMiddleware {
	return &VerifiedMiddleware{
		verificationUseCase: verificationUseCase,
	}
}

// VerifiedOnly blocks actors who have not confirmed age and terms. When the
// status cannot be determined the request is rejected; unknown never passes
// the gate.
func (m *VerifiedMiddleware) VerifiedOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		status, err := m.verificationUseCase.Status(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check verification status")
		}

		if !status.Verified {
			return echo.NewHTTPError(http.StatusForbidden, "Age and terms verification required")
		}

		return next(c)
	}
}
