package router

import (
	"github.com/labstack/echo/v4"

	"marketplus/internal/adapter/api/handler"
	"marketplus/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.GET("/dashboard", adminHandler.GetDashboard)
	admin.POST("/withdraw", adminHandler.RequestWithdraw)
}
