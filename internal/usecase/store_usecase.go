package usecase

import (
	"context"
	"io"

	"marketplus/internal/domain/entity"
	"marketplus/internal/domain/repository"
	"marketplus/pkg/errors"
	"marketplus/pkg/logger"
	"marketplus/pkg/utils"
)

type StoreUseCase struct {
	storeRepo   repository.StoreRepository
	roleUseCase *RoleUseCase
	uploader    LogoUploader
}

func NewStoreUseCase(storeRepo repository.StoreRepository, roleUseCase *RoleUseCase, uploader LogoUploader) *StoreUseCase {
	return &StoreUseCase{
		storeRepo:   storeRepo,
		roleUseCase: roleUseCase,
		uploader:    uploader,
	}
}

type CreateStoreInput struct {
	Name        string
	Description string
}

type LogoUpload struct {
	Reader      io.Reader
	ContentType string
}

// CreateStore creates the seller's store with a slug derived from its name,
// uploading the logo first when one is provided. A seller has at most one
// store. If the insert fails after the upload succeeded the logo object is
// orphaned; there is no compensating delete.
func (uc *StoreUseCase) CreateStore(ctx context.Context, sellerID string, input CreateStoreInput, logo *LogoUpload) (*entity.Store, error) {
	existing, err := uc.storeRepo.GetBySellerID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("Seller already has a store")
	}

	logoURL := ""
	if logo != nil {
		logoURL, err = uc.uploader.UploadStoreLogo(ctx, logo.Reader, sellerID, logo.ContentType)
		if err != nil {
			return nil, errors.Internal("Failed to upload store logo", err)
		}
	}

	store := &entity.Store{
		SellerID:    sellerID,
		Name:        input.Name,
		Description: input.Description,
		Slug:        utils.Slugify(input.Name),
		LogoURL:     logoURL,
		IsActive:    true,
	}

	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	// First store makes the actor a seller.
	if err := uc.roleUseCase.GrantSeller(ctx, sellerID); err != nil {
		logger.Error("Failed to grant seller role to %s after store creation: %v", sellerID, err)
	}

	return store, nil
}

// GetStoreBySeller returns (nil, nil) when the seller has no store yet.
func (uc *StoreUseCase) GetStoreBySeller(ctx context.Context, sellerID string) (*entity.Store, error) {
	return uc.storeRepo.GetBySellerID(ctx, sellerID)
}
