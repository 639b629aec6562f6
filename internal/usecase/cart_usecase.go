package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"marketplus/internal/domain/entity"
	"marketplus/internal/domain/repository"
	"marketplus/pkg/errors"
	"marketplus/pkg/logger"
)

type CartUseCase struct {
	cartRepo          repository.CartRepository
	productRepo       repository.ProductRepository
	storeRepo         repository.StoreRepository
	orderRepo         repository.OrderRepository
	commissionUseCase *CommissionUseCase
}

func NewCartUseCase(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	orderRepo repository.OrderRepository,
	commissionUseCase *CommissionUseCase,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:          cartRepo,
		productRepo:       productRepo,
		storeRepo:         storeRepo,
		orderRepo:         orderRepo,
		commissionUseCase: commissionUseCase,
	}
}

// CartLine is a cart item joined with its live product row. Subtotal is
// quantity times the current price, never a stored value.
type CartLine struct {
	Product  *entity.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal float64         `json:"subtotal"`
}

// CartView is the priced rendering of a cart.
type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// GetCart prices the user's cart against the live product rows. An item
// whose product has been removed or deactivated is dropped from the view.
func (uc *CartUseCase) GetCart(ctx context.Context, userID string) (*CartView, error) {
	cart, err := uc.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &CartView{Items: []CartLine{}}, nil
	}

	return uc.price(ctx, cart)
}

// AddItem puts quantity units of the product in the cart, merging with an
// existing line for the same product.
func (uc *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int) (*CartView, error) {
	if quantity <= 0 {
		return nil, errors.BadRequest("Quantity must be positive", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, errors.BadRequest("Product is not available", nil)
	}

	cart, err := uc.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &entity.Cart{UserID: userID}
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, entity.CartItem{ProductID: productID, Quantity: quantity})
	}

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return uc.price(ctx, cart)
}

// UpdateItem sets the line quantity for the product. Zero removes the line.
func (uc *CartUseCase) UpdateItem(ctx context.Context, userID, productID string, quantity int) (*CartView, error) {
	if quantity < 0 {
		return nil, errors.BadRequest("Quantity must not be negative", nil)
	}

	cart, err := uc.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, errors.NotFound("Cart", nil)
	}

	found := false
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID == productID {
			found = true
			if quantity > 0 {
				item.Quantity = quantity
				items = append(items, item)
			}
			continue
		}
		items = append(items, item)
	}
	if !found {
		return nil, errors.NotFound("Cart item", nil)
	}
	cart.Items = items

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return uc.price(ctx, cart)
}

// RemoveItem drops the product's line from the cart.
func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) (*CartView, error) {
	return uc.UpdateItem(ctx, userID, productID, 0)
}

// Checkout turns the cart into a pending order. Each line is re-priced from
// the live product row, snapshotted with its product and store names, and
// split into platform and seller shares. The cart is cleared afterwards;
// bookkeeping failures after the order is persisted are logged, not returned,
// so the customer's order is never rolled back by a side write.
func (uc *CartUseCase) Checkout(ctx context.Context, userID string) (*entity.Order, error) {
	cart, err := uc.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	now := time.Now()
	orderID := uuid.New().String()
	storeNames := make(map[string]string)

	total := decimal.Zero
	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		product, err := uc.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.IsActive {
			return nil, errors.BadRequest("Product "+product.Name+" is no longer available", nil)
		}
		if line.Quantity <= 0 {
			return nil, errors.BadRequest("Invalid quantity for "+product.Name, nil)
		}

		storeName, ok := storeNames[product.StoreID]
		if !ok {
			store, err := uc.storeRepo.GetByID(ctx, product.StoreID)
			if err != nil {
				return nil, err
			}
			storeName = store.Name
			storeNames[product.StoreID] = storeName
		}

		gross := decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(gross)

		item := entity.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     orderID,
			ProductID:   product.ID,
			StoreID:     product.StoreID,
			ProductName: product.Name,
			StoreName:   storeName,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			TotalPrice:  gross.InexactFloat64(),
			CreatedAt:   now,
		}
		if len(product.Images) > 0 {
			item.ImageURL = product.Images[0]
		}
		items = append(items, item)
	}

	order := &entity.Order{
		ID:          orderID,
		CustomerID:  userID,
		Status:      entity.OrderStatusPending,
		TotalAmount: total.InexactFloat64(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.orderRepo.Create(ctx, order, items); err != nil {
		return nil, err
	}
	order.Items = items

	for i := range items {
		if err := uc.commissionUseCase.RecordSale(ctx, orderID, &items[i]); err != nil {
			logger.Error("Failed to record commission for order %s item %s: %v", orderID, items[i].ID, err)
		}
	}

	if err := uc.cartRepo.Delete(ctx, userID); err != nil {
		logger.Error("Failed to clear cart for user %s after checkout: %v", userID, err)
	}

	return order, nil
}

func (uc *CartUseCase) price(ctx context.Context, cart *entity.Cart) (*CartView, error) {
	view := &CartView{Items: []CartLine{}}

	total := decimal.Zero
	for _, item := range cart.Items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				continue
			}
			return nil, err
		}
		if !product.IsActive {
			continue
		}

		subtotal := decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)

		view.Items = append(view.Items, CartLine{
			Product:  product,
			Quantity: item.Quantity,
			Subtotal: subtotal.InexactFloat64(),
		})
	}

	view.Total = total.InexactFloat64()
	return view, nil
}
