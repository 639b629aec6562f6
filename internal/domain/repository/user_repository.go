package repository

import (
	"context"

	"marketplus/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// SetVerified sets both verification flags true with a server timestamp.
	SetVerified(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
