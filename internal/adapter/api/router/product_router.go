package router

import (
	"github.com/labstack/echo/v4"

	"marketplus/internal/adapter/api/handler"
)

func SetupProductRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()

	// Catalog is public.
	e.GET("/v1/products", productHandler.ListProducts)
	e.GET("/v1/products/:id", productHandler.GetProduct)
	e.GET("/v1/categories", productHandler.ListCategories)
}
