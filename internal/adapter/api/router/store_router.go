package router

import (
	"github.com/labstack/echo/v4"

	"marketplus/internal/adapter/api/handler"
	"marketplus/internal/adapter/api/middleware"
)

func SetupStoreRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, verifiedMiddleware *middleware.VerifiedMiddleware) {
	storeHandler := handler.GetStoreHandler()
	productHandler := handler.GetProductHandler()

	// Opening a store requires the verification gate to have been passed.
	e.POST("/v1/stores", storeHandler.CreateStore, authMiddleware.Authenticate, verifiedMiddleware.VerifiedOnly)

	myStore := e.Group("/v1/my-store")
	myStore.Use(authMiddleware.Authenticate)

	myStore.GET("", storeHandler.GetMyStore)
	myStore.GET("/products", storeHandler.GetMyStoreProducts)
	myStore.POST("/products", productHandler.CreateProduct, verifiedMiddleware.VerifiedOnly)
}
