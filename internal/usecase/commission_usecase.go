package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"marketplus/internal/domain/entity"
	"marketplus/internal/domain/repository"
	"marketplus/pkg/errors"
)

// commissionRate is the platform's fixed share of each sale's gross.
var commissionRate = decimal.NewFromFloat(0.02)

// SplitGross divides a gross sale amount into the platform commission (2%,
// rounded to cents) and the seller's complementary share. The two parts
// always sum back to the gross.
func SplitGross(gross decimal.Decimal) (commission, seller decimal.Decimal) {
	commission = gross.Mul(commissionRate).Round(2)
	seller = gross.Sub(commission)
	return commission, seller
}

// DashboardStats is the platform-wide financial aggregate shown to the
// operator. Monetary totals are decimal so cent-level sums stay exact.
type DashboardStats struct {
	TotalCommission decimal.Decimal `json:"total_commission"`
	TotalSeller     decimal.Decimal `json:"total_seller"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	ActiveStores    int64           `json:"active_stores"`
	TotalUsers      int64           `json:"total_users"`
}

type CommissionUseCase struct {
	commissionRepo repository.CommissionRepository
	storeRepo      repository.StoreRepository
	userRepo       repository.UserRepository
	roleUseCase    *RoleUseCase
}

func NewCommissionUseCase(
	commissionRepo repository.CommissionRepository,
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	roleUseCase *RoleUseCase,
) *CommissionUseCase {
	return &CommissionUseCase{
		commissionRepo: commissionRepo,
		storeRepo:      storeRepo,
		userRepo:       userRepo,
		roleUseCase:    roleUseCase,
	}
}

// DashboardStats aggregates the full commission history plus store and user
// counts. Only the admin may call it; the check lives here, not in the UI.
// The three source reads run concurrently and the aggregate is published only
// when all succeed. A failed read is an explicit error, never a zero total
// dressed up as data.
func (uc *CommissionUseCase) DashboardStats(ctx context.Context, userID string) (*DashboardStats, error) {
	resolution, err := uc.roleUseCase.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !resolution.IsAdmin {
		return nil, errors.Forbidden("Admin privileges required", nil)
	}

	var (
		records      []*entity.CommissionRecord
		activeStores int64
		totalUsers   int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		records, err = uc.commissionRepo.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		activeStores, err = uc.storeRepo.CountActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalUsers, err = uc.userRepo.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Internal("Failed to load dashboard statistics", err)
	}

	totalCommission := decimal.Zero
	totalSeller := decimal.Zero
	for _, record := range records {
		totalCommission = totalCommission.Add(decimal.NewFromFloat(record.CommissionAmount))
		totalSeller = totalSeller.Add(decimal.NewFromFloat(record.SellerAmount))
	}

	return &DashboardStats{
		TotalCommission: totalCommission,
		TotalSeller:     totalSeller,
		TotalRevenue:    totalCommission.Add(totalSeller),
		ActiveStores:    activeStores,
		TotalUsers:      totalUsers,
	}, nil
}

// RecordSale writes one commission row for a sold order item, splitting the
// line gross into the 2% platform share and the 98% seller share.
func (uc *CommissionUseCase) RecordSale(ctx context.Context, orderID string, item *entity.OrderItem) error {
	gross := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
	commission, seller := SplitGross(gross)

	record := &entity.CommissionRecord{
		ID:               uuid.New().String(),
		OrderID:          orderID,
		OrderItemID:      item.ID,
		StoreID:          item.StoreID,
		CommissionAmount: commission.InexactFloat64(),
		SellerAmount:     seller.InexactFloat64(),
	}

	return uc.commissionRepo.Create(ctx, record)
}

// RequestWithdraw records a payout request for the operator's accumulated
// commission balance. The balance is recomputed from the commission history
// at request time; a zero balance is rejected.
func (uc *CommissionUseCase) RequestWithdraw(ctx context.Context, userID string) (*entity.WithdrawRequest, error) {
	resolution, err := uc.roleUseCase.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !resolution.IsAdmin {
		return nil, errors.Forbidden("Admin privileges required", nil)
	}

	records, err := uc.commissionRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to load commission records", err)
	}

	balance := decimal.Zero
	for _, record := range records {
		balance = balance.Add(decimal.NewFromFloat(record.CommissionAmount))
	}

	if balance.IsZero() {
		return nil, errors.BadRequest("No commission balance available to withdraw", nil)
	}

	withdraw := &entity.WithdrawRequest{
		ID:          uuid.New().String(),
		RequestedBy: userID,
		Amount:      balance.InexactFloat64(),
		Status:      "pending",
	}

	if err := uc.commissionRepo.CreateWithdraw(ctx, withdraw); err != nil {
		return nil, err
	}

	return withdraw, nil
}
