package repository

import (
	"context"

	"marketplus/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// ListActive returns active products, newest first, unpaginated.
	ListActive(ctx context.Context) ([]*entity.Product, error)
	ListByStoreID(ctx context.Context, storeID string) ([]*entity.Product, error)
}
