package usecase

import (
	"context"

	"marketplus/internal/domain/entity"
	"marketplus/internal/domain/repository"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
	}
}

// ListByCustomer returns the customer's orders with items expanded, newest
// first. The snapshots on each item render as stored, regardless of what
// happened to the listings since.
func (uc *OrderUseCase) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByCustomerID(ctx, customerID)
}
