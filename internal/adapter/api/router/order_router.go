package router

import (
	"github.com/labstack/echo/v4"

	"marketplus/internal/adapter/api/handler"
	"marketplus/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	e.GET("/v1/my-orders", orderHandler.ListMyOrders, authMiddleware.Authenticate)
}
