package repository

import (
	"context"

	"marketplus/internal/domain/entity"
)

type CartRepository interface {
	// Get returns (nil, nil) when the user has no cart document yet.
	Get(ctx context.Context, userID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, userID string) error
}
