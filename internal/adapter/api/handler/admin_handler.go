package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplus/internal/usecase"
	"marketplus/pkg/response"
)

type AdminHandler struct {
	commissionUseCase *usecase.CommissionUseCase
}

func NewAdminHandler(commissionUseCase *usecase.CommissionUseCase) *AdminHandler {
	return &AdminHandler{
		commissionUseCase: commissionUseCase,
	}
}

// GetDashboard returns the platform-wide financial aggregate. The use case
// re-checks admin rights on its own, so the route middleware is not the only
// line of defense.
func (h *AdminHandler) GetDashboard(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	stats, err := h.commissionUseCase.DashboardStats(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *AdminHandler) RequestWithdraw(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	withdraw, err := h.commissionUseCase.RequestWithdraw(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, withdraw)
}
