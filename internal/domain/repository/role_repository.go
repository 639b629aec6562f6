package repository

import (
	"context"

	"marketplus/internal/domain/entity"
)

type RoleRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]*entity.RoleAssignment, error)
	// Grant inserts a role row; granting an already-held role is a no-op.
	Grant(ctx context.Context, userID, role string) error
}
