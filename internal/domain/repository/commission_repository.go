package repository

import (
	"context"

	"marketplus/internal/domain/entity"
)

type CommissionRepository interface {
	Create(ctx context.Context, record *entity.CommissionRecord) error
	// ListAll returns every commission row, unfiltered and unpaginated.
	// The admin dashboard aggregates over the full history.
	ListAll(ctx context.Context) ([]*entity.CommissionRecord, error)
	CreateWithdraw(ctx context.Context, withdraw *entity.WithdrawRequest) error
}
