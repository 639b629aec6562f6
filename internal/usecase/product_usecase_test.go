package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"marketplus/internal/domain/entity"
	apperrors "marketplus/pkg/errors"
)

func newProductFixture() (*ProductUseCase, *fakeProductRepo, *fakeStoreRepo, *fakeCategoryRepo) {
	storeRepo := newFakeStoreRepo()
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()

	uc := NewProductUseCase(productRepo, storeRepo, categoryRepo)

	return uc, productRepo, storeRepo, categoryRepo
}

func TestCreateProductRequiresStore(t *testing.T) {
	uc, _, _, _ := newProductFixture()

	_, err := uc.CreateProduct(context.Background(), "seller", CreateProductInput{Name: "Widget", Price: 10})

	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestCreateProductDerivesSlugFromName(t *testing.T) {
	uc, _, storeRepo, _ := newProductFixture()
	storeRepo.stores["s1"] = &entity.Store{ID: "s1", SellerID: "seller", IsActive: true}

	product, err := uc.CreateProduct(context.Background(), "seller", CreateProductInput{
		Name:  "Café Gamer 2000",
		Price: 99.9,
		Stock: 5,
	})

	assert.NoError(t, err)
	assert.Equal(t, "caf-gamer-2000", product.Slug)
	assert.Equal(t, "s1", product.StoreID)
	assert.True(t, product.IsActive)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	uc, _, storeRepo, _ := newProductFixture()
	storeRepo.stores["s1"] = &entity.Store{ID: "s1", SellerID: "seller", IsActive: true}

	_, err := uc.CreateProduct(context.Background(), "seller", CreateProductInput{
		Name:       "Widget",
		Price:      10,
		CategoryID: "missing",
	})

	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestListActiveProductsExpandsStoreAndCategory(t *testing.T) {
	uc, productRepo, storeRepo, categoryRepo := newProductFixture()

	storeRepo.stores["s1"] = &entity.Store{ID: "s1", Name: "Gadget Shop", IsActive: true}
	categoryRepo.categories["c1"] = &entity.Category{ID: "c1", Name: "Electronics"}

	productRepo.products["p1"] = &entity.Product{
		ID: "p1", StoreID: "s1", CategoryID: "c1", Name: "Widget",
		IsActive: true, CreatedAt: time.Now(),
	}
	productRepo.products["p2"] = &entity.Product{
		ID: "p2", StoreID: "s1", Name: "Old Gizmo",
		IsActive: false, CreatedAt: time.Now().Add(-time.Hour),
	}

	listings, err := uc.ListActiveProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, listings, 1)
	assert.Equal(t, "Widget", listings[0].Name)
	assert.Equal(t, "Gadget Shop", listings[0].Store.Name)
	assert.Equal(t, "Electronics", listings[0].Category.Name)
}

func TestListActiveProductsToleratesMissingCategory(t *testing.T) {
	uc, productRepo, storeRepo, _ := newProductFixture()

	storeRepo.stores["s1"] = &entity.Store{ID: "s1", Name: "Gadget Shop", IsActive: true}
	productRepo.products["p1"] = &entity.Product{
		ID: "p1", StoreID: "s1", CategoryID: "ghost", Name: "Widget",
		IsActive: true, CreatedAt: time.Now(),
	}

	listings, err := uc.ListActiveProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, listings, 1)
	assert.Nil(t, listings[0].Category)
}

func TestGetProductListing(t *testing.T) {
	uc, productRepo, storeRepo, _ := newProductFixture()

	storeRepo.stores["s1"] = &entity.Store{ID: "s1", Name: "Gadget Shop", IsActive: true}
	productRepo.products["p1"] = &entity.Product{
		ID: "p1", StoreID: "s1", Name: "Widget", IsActive: true,
	}

	listing, err := uc.GetProductListing(context.Background(), "p1")

	assert.NoError(t, err)
	assert.Equal(t, "Widget", listing.Name)
	assert.Equal(t, "Gadget Shop", listing.Store.Name)

	_, err = uc.GetProductListing(context.Background(), "nope")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}
