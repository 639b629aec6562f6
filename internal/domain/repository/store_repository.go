package repository

import (
	"context"

	"marketplus/internal/domain/entity"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	// GetBySellerID returns (nil, nil) when the seller has no store.
	GetBySellerID(ctx context.Context, sellerID string) (*entity.Store, error)
	CountActive(ctx context.Context) (int64, error)
}
