package router

import (
	"github.com/labstack/echo/v4"

	"marketplus/internal/adapter/api/handler"
	"marketplus/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	me := e.Group("/v1/me")
	me.Use(authMiddleware.Authenticate)

	me.GET("", userHandler.GetProfile)
	me.GET("/roles", userHandler.GetRoles)
	me.GET("/verification", userHandler.GetVerificationStatus)
	me.POST("/verification", userHandler.ConfirmVerification, middleware.AuthRateLimit())
}
