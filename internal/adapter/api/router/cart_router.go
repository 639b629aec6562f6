package router

import (
	"github.com/labstack/echo/v4"

	"marketplus/internal/adapter/api/handler"
	"marketplus/internal/adapter/api/middleware"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, verifiedMiddleware *middleware.VerifiedMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate, verifiedMiddleware.VerifiedOnly)

	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddItem)
	cart.PATCH("/items/:productId", cartHandler.UpdateItem)
	cart.DELETE("/items/:productId", cartHandler.RemoveItem)
	cart.POST("/checkout", cartHandler.Checkout)
}
