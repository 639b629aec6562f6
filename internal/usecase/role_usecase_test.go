package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplus/internal/domain/entity"
)

const adminEmail = "admin@marketplus.app"

func TestResolveAdminByExactEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	userRepo.users["u1"] = &entity.User{ID: "u1", Email: adminEmail}

	uc := NewRoleUseCase(userRepo, roleRepo, adminEmail)

	resolution, err := uc.Resolve(context.Background(), "u1")

	assert.NoError(t, err)
	assert.True(t, resolution.IsAdmin)
	// Admin implies seller even without a role row.
	assert.True(t, resolution.IsSeller)
}

func TestResolveAdminEmailCaseVariantDoesNotMatch(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	userRepo.users["u1"] = &entity.User{ID: "u1", Email: "Admin@Marketplus.app"}

	uc := NewRoleUseCase(userRepo, roleRepo, adminEmail)

	resolution, err := uc.Resolve(context.Background(), "u1")

	assert.NoError(t, err)
	assert.False(t, resolution.IsAdmin)
	assert.False(t, resolution.IsSeller)
}

func TestResolveSellerFromRoleRow(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	userRepo.users["u1"] = &entity.User{ID: "u1", Email: "seller@example.com"}
	roleRepo.roles["u1"] = []*entity.RoleAssignment{{ID: "r1", UserID: "u1", Role: entity.RoleSeller}}

	uc := NewRoleUseCase(userRepo, roleRepo, adminEmail)

	resolution, err := uc.Resolve(context.Background(), "u1")

	assert.NoError(t, err)
	assert.False(t, resolution.IsAdmin)
	assert.True(t, resolution.IsSeller)
}

func TestResolveNoRoles(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	userRepo.users["u1"] = &entity.User{ID: "u1", Email: "buyer@example.com"}

	uc := NewRoleUseCase(userRepo, roleRepo, adminEmail)

	resolution, err := uc.Resolve(context.Background(), "u1")

	assert.NoError(t, err)
	assert.False(t, resolution.IsAdmin)
	assert.False(t, resolution.IsSeller)
}

func TestResolveRoleFetchFailureIsAnError(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	userRepo.users["u1"] = &entity.User{ID: "u1", Email: "buyer@example.com"}
	roleRepo.err = errors.New("firestore unavailable")

	uc := NewRoleUseCase(userRepo, roleRepo, adminEmail)

	resolution, err := uc.Resolve(context.Background(), "u1")

	// A failed lookup must not be reported as "no roles".
	assert.Error(t, err)
	assert.Nil(t, resolution)
}

func TestResolveEmptyAdminEmailNeverMatches(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	userRepo.users["u1"] = &entity.User{ID: "u1", Email: ""}

	uc := NewRoleUseCase(userRepo, roleRepo, "")

	resolution, err := uc.Resolve(context.Background(), "u1")

	assert.NoError(t, err)
	assert.False(t, resolution.IsAdmin)
}

func TestGrantSellerIsIdempotent(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()

	uc := NewRoleUseCase(userRepo, roleRepo, adminEmail)

	assert.NoError(t, uc.GrantSeller(context.Background(), "u1"))
	assert.NoError(t, uc.GrantSeller(context.Background(), "u1"))
	assert.Len(t, roleRepo.roles["u1"], 1)
}
