package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplus/internal/usecase"
	"marketplus/pkg/response"
	"marketplus/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// ListMyOrders returns the caller's order history, newest first.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	orders, err := h.orderUseCase.ListByCustomer(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	params := utils.GetPaginationParams(c)

	total := int64(len(orders))
	start := params.Offset
	if start > len(orders) {
		start = len(orders)
	}
	end := start + params.PageSize
	if end > len(orders) {
		end = len(orders)
	}

	return response.Paginated(c, orders[start:end], total, params.Page, params.PageSize)
}
