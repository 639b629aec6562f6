package handler

import (
	"marketplus/internal/usecase"
)

var (
	authHandler    *AuthHandler
	userHandler    *UserHandler
	storeHandler   *StoreHandler
	productHandler *ProductHandler
	orderHandler   *OrderHandler
	cartHandler    *CartHandler
	adminHandler   *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	roleUseCase *usecase.RoleUseCase,
	verificationUseCase *usecase.VerificationUseCase,
	storeUseCase *usecase.StoreUseCase,
	productUseCase *usecase.ProductUseCase,
	orderUseCase *usecase.OrderUseCase,
	cartUseCase *usecase.CartUseCase,
	commissionUseCase *usecase.CommissionUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(authUseCase, roleUseCase, verificationUseCase)
	storeHandler = NewStoreHandler(storeUseCase, productUseCase)
	productHandler = NewProductHandler(productUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	adminHandler = NewAdminHandler(commissionUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetStoreHandler() *StoreHandler {
	return storeHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
