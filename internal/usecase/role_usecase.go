package usecase

import (
	"context"

	"marketplus/internal/domain/entity"
	"marketplus/internal/domain/repository"
	"marketplus/pkg/errors"
)

// RoleResolution carries the two capabilities derived for an actor.
type RoleResolution struct {
	IsAdmin  bool `json:"is_admin"`
	IsSeller bool `json:"is_seller"`
}

type RoleUseCase struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	adminEmail string
}

func NewRoleUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, adminEmail string) *RoleUseCase {
	return &RoleUseCase{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		adminEmail: adminEmail,
	}
}

// Resolve derives {isAdmin, isSeller} for the actor. Admin means the account
// email equals the configured operator email, byte for byte; case variants do
// not match. Admin always implies seller. A failed role lookup is returned as
// an error, never silently reported as "no roles".
func (uc *RoleUseCase) Resolve(ctx context.Context, userID string) (*RoleResolution, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	isAdmin := uc.adminEmail != "" && user.Email == uc.adminEmail

	roles, err := uc.roleRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Internal("Failed to resolve role assignments", err)
	}

	isSeller := isAdmin
	for _, role := range roles {
		if role.Role == entity.RoleSeller {
			isSeller = true
		}
	}

	return &RoleResolution{
		IsAdmin:  isAdmin,
		IsSeller: isSeller,
	}, nil
}

// GrantSeller makes the actor a seller. Granting twice is a no-op.
func (uc *RoleUseCase) GrantSeller(ctx context.Context, userID string) error {
	return uc.roleRepo.Grant(ctx, userID, entity.RoleSeller)
}
