package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplus/internal/domain/entity"
	apperrors "marketplus/pkg/errors"
)

type fakeUploader struct {
	url string
	err error
}

func (u *fakeUploader) UploadStoreLogo(ctx context.Context, file io.Reader, actorID, contentType string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

func newStoreFixture() (*StoreUseCase, *fakeStoreRepo, *fakeRoleRepo, *fakeUploader) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	storeRepo := newFakeStoreRepo()
	uploader := &fakeUploader{url: "https://storage.googleapis.com/bucket/store-logos/u1-123.png"}

	roleUseCase := NewRoleUseCase(userRepo, roleRepo, adminEmail)
	uc := NewStoreUseCase(storeRepo, roleUseCase, uploader)

	return uc, storeRepo, roleRepo, uploader
}

func TestCreateStoreDerivesSlugAndGrantsSeller(t *testing.T) {
	uc, _, roleRepo, _ := newStoreFixture()

	store, err := uc.CreateStore(context.Background(), "u1", CreateStoreInput{
		Name:        "Loja Incrível #1!",
		Description: "handmade goods",
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "loja-incr-vel-1", store.Slug)
	assert.True(t, store.IsActive)
	assert.Empty(t, store.LogoURL)

	roles := roleRepo.roles["u1"]
	assert.Len(t, roles, 1)
	assert.Equal(t, entity.RoleSeller, roles[0].Role)
}

func TestCreateStoreWithLogo(t *testing.T) {
	uc, _, _, uploader := newStoreFixture()

	store, err := uc.CreateStore(context.Background(), "u1", CreateStoreInput{Name: "Gadgets"}, &LogoUpload{
		Reader:      nil,
		ContentType: "image/png",
	})

	assert.NoError(t, err)
	assert.Equal(t, uploader.url, store.LogoURL)
}

func TestCreateStoreSecondStoreConflicts(t *testing.T) {
	uc, _, _, _ := newStoreFixture()

	_, err := uc.CreateStore(context.Background(), "u1", CreateStoreInput{Name: "First"}, nil)
	assert.NoError(t, err)

	_, err = uc.CreateStore(context.Background(), "u1", CreateStoreInput{Name: "Second"}, nil)
	assert.True(t, apperrors.Is(err, "CONFLICT"))
}

func TestGetStoreBySellerReturnsNilWhenAbsent(t *testing.T) {
	uc, _, _, _ := newStoreFixture()

	store, err := uc.GetStoreBySeller(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Nil(t, store)
}
