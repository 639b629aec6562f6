package repository

import (
	"context"

	"marketplus/internal/domain/entity"
)

type OrderRepository interface {
	// Create persists the order and its items.
	Create(ctx context.Context, order *entity.Order, items []entity.OrderItem) error
	// ListByCustomerID returns the customer's orders with items expanded,
	// newest first.
	ListByCustomerID(ctx context.Context, customerID string) ([]*entity.Order, error)
}
