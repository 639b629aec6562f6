package usecase

import (
	"context"

	"marketplus/internal/domain/entity"
	"marketplus/internal/domain/repository"
	"marketplus/pkg/errors"
	"marketplus/pkg/logger"
	"marketplus/pkg/utils"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	categoryRepo repository.CategoryRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	categoryRepo repository.CategoryRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
	}
}

type CreateProductInput struct {
	CategoryID   string
	Name         string
	Description  string
	Price        float64
	Stock        int
	Images       []string
	Sizes        []string
	ShippingInfo *entity.ShippingInfo
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, sellerID string, input CreateProductInput) (*entity.Product, error) {
	store, err := uc.storeRepo.GetBySellerID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.BadRequest("Create a store before listing products", nil)
	}

	if input.Price < 0 {
		return nil, errors.BadRequest("Price must not be negative", nil)
	}
	if input.Stock < 0 {
		return nil, errors.BadRequest("Stock must not be negative", nil)
	}

	if input.CategoryID != "" {
		if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
			return nil, errors.BadRequest("Invalid category", err)
		}
	}

	product := &entity.Product{
		StoreID:      store.ID,
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Stock:        input.Stock,
		Slug:         utils.Slugify(input.Name),
		IsActive:     true,
		Images:       input.Images,
		Sizes:        input.Sizes,
		ShippingInfo: input.ShippingInfo,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// ListActiveProducts returns every active product with its store and
// category expanded, newest first. No pagination; the catalog page shows
// the full set.
func (uc *ProductUseCase) ListActiveProducts(ctx context.Context) ([]*entity.ProductListing, error) {
	products, err := uc.productRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return uc.expand(ctx, products)
}

// ListCategories returns the category taxonomy for catalog filters.
func (uc *ProductUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

// ListByStore returns the store's products, newest first.
func (uc *ProductUseCase) ListByStore(ctx context.Context, storeID string) ([]*entity.Product, error) {
	return uc.productRepo.ListByStoreID(ctx, storeID)
}

func (uc *ProductUseCase) GetProductListing(ctx context.Context, id string) (*entity.ProductListing, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	listings, err := uc.expand(ctx, []*entity.Product{product})
	if err != nil {
		return nil, err
	}

	return listings[0], nil
}

// expand joins products with their store and category rows. Stores and
// categories are fetched once per distinct id. A missing category is not
// fatal; the listing just renders without one.
func (uc *ProductUseCase) expand(ctx context.Context, products []*entity.Product) ([]*entity.ProductListing, error) {
	stores := make(map[string]*entity.Store)
	categories := make(map[string]*entity.Category)

	listings := make([]*entity.ProductListing, 0, len(products))
	for _, product := range products {
		listing := &entity.ProductListing{Product: *product}

		if product.StoreID != "" {
			store, ok := stores[product.StoreID]
			if !ok {
				var err error
				store, err = uc.storeRepo.GetByID(ctx, product.StoreID)
				if err != nil {
					return nil, err
				}
				stores[product.StoreID] = store
			}
			listing.Store = store
		}

		if product.CategoryID != "" {
			category, ok := categories[product.CategoryID]
			if !ok {
				var err error
				category, err = uc.categoryRepo.GetByID(ctx, product.CategoryID)
				if err != nil {
					logger.Warn("Category %s referenced by product %s not found: %v", product.CategoryID, product.ID, err)
					categories[product.CategoryID] = nil
				} else {
					categories[product.CategoryID] = category
				}
			}
			listing.Category = categories[product.CategoryID]
		}

		listings = append(listings, listing)
	}

	return listings, nil
}
