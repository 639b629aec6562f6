package router

import (
	"github.com/labstack/echo/v4"

	"marketplus/internal/adapter/api/handler"
	"marketplus/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth", middleware.AuthRateLimit())
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
}
