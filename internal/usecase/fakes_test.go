package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"marketplus/internal/domain/entity"
	"marketplus/pkg/errors"
)

// In-memory repository fakes backing the use case tests. Each fake can be
// forced to fail with a fixed error to exercise the failure paths.

type fakeUserRepo struct {
	users map[string]*entity.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) SetVerified(ctx context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	now := time.Now()
	user.AgeVerified = true
	user.TermsAccepted = true
	user.TermsAcceptedAt = &now
	return nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.users)), nil
}

type fakeRoleRepo struct {
	roles map[string][]*entity.RoleAssignment
	err   error
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: make(map[string][]*entity.RoleAssignment)}
}

func (r *fakeRoleRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.RoleAssignment, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.roles[userID], nil
}

func (r *fakeRoleRepo) Grant(ctx context.Context, userID, role string) error {
	if r.err != nil {
		return r.err
	}
	for _, assignment := range r.roles[userID] {
		if assignment.Role == role {
			return nil
		}
	}
	r.roles[userID] = append(r.roles[userID], &entity.RoleAssignment{
		ID:     fmt.Sprintf("role-%d", len(r.roles[userID])+1),
		UserID: userID,
		Role:   role,
	})
	return nil
}

type fakeStoreRepo struct {
	stores map[string]*entity.Store
	err    error
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: make(map[string]*entity.Store)}
}

func (r *fakeStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	if r.err != nil {
		return r.err
	}
	if store.ID == "" {
		store.ID = fmt.Sprintf("store-%d", len(r.stores)+1)
	}
	r.stores[store.ID] = store
	return nil
}

func (r *fakeStoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	if r.err != nil {
		return nil, r.err
	}
	store, ok := r.stores[id]
	if !ok {
		return nil, errors.NotFound("Store", nil)
	}
	return store, nil
}

func (r *fakeStoreRepo) GetBySellerID(ctx context.Context, sellerID string) (*entity.Store, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, store := range r.stores {
		if store.SellerID == sellerID {
			return store, nil
		}
	}
	return nil, nil
}

func (r *fakeStoreRepo) CountActive(ctx context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var count int64
	for _, store := range r.stores {
		if store.IsActive {
			count++
		}
	}
	return count, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	err        error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return category, nil
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Category, 0, len(r.categories))
	for _, category := range r.categories {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	err      error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	if product.ID == "" {
		product.ID = fmt.Sprintf("product-%d", len(r.products)+1)
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *fakeProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Product, 0, len(r.products))
	for _, product := range r.products {
		if product.IsActive {
			out = append(out, product)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeProductRepo) ListByStoreID(ctx context.Context, storeID string) ([]*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Product, 0)
	for _, product := range r.products {
		if product.StoreID == storeID {
			out = append(out, product)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
	err    error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order, items []entity.OrderItem) error {
	if r.err != nil {
		return r.err
	}
	stored := *order
	stored.Items = items
	r.orders = append(r.orders, &stored)
	return nil
}

func (r *fakeOrderRepo) ListByCustomerID(ctx context.Context, customerID string) ([]*entity.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Order, 0)
	for _, order := range r.orders {
		if order.CustomerID == customerID {
			out = append(out, order)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeCartRepo struct {
	carts map[string]*entity.Cart
	err   error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*entity.Cart)}
}

func (r *fakeCartRepo) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.carts[userID], nil
}

func (r *fakeCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	if r.err != nil {
		return r.err
	}
	r.carts[cart.UserID] = cart
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, userID string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.carts, userID)
	return nil
}

type fakeCommissionRepo struct {
	records   []*entity.CommissionRecord
	withdraws []*entity.WithdrawRequest
	err       error
}

func newFakeCommissionRepo() *fakeCommissionRepo {
	return &fakeCommissionRepo{}
}

func (r *fakeCommissionRepo) Create(ctx context.Context, record *entity.CommissionRecord) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, record)
	return nil
}

func (r *fakeCommissionRepo) ListAll(ctx context.Context) ([]*entity.CommissionRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.records, nil
}

func (r *fakeCommissionRepo) CreateWithdraw(ctx context.Context, withdraw *entity.WithdrawRequest) error {
	if r.err != nil {
		return r.err
	}
	r.withdraws = append(r.withdraws, withdraw)
	return nil
}
