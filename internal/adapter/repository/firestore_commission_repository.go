package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"marketplus/internal/domain/entity"
	"marketplus/internal/domain/repository"
	"marketplus/pkg/errors"
)

type firestoreCommissionRepository struct {
	client *firestore.Client
}

func NewFirestoreCommissionRepository(client *firestore.Client) repository.CommissionRepository {
	return &firestoreCommissionRepository{
		client: client,
	}
}

func (r *firestoreCommissionRepository) Create(ctx context.Context, record *entity.CommissionRecord) error {
	if record.ID == "" {
		doc := r.client.Collection("commissions").NewDoc()
		record.ID = doc.ID
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("commissions").Doc(record.ID).Set(ctx, record)
	if err != nil {
		return errors.Internal("Failed to create commission record", err)
	}

	return nil
}

func (r *firestoreCommissionRepository) ListAll(ctx context.Context) ([]*entity.CommissionRecord, error) {
	iter := r.client.Collection("commissions").OrderBy("createdAt", firestore.Desc).Documents(ctx)

	var records []*entity.CommissionRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate commission records", err)
		}

		var record entity.CommissionRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, errors.Internal("Failed to parse commission record", err)
		}
		records = append(records, &record)
	}

	return records, nil
}

func (r *firestoreCommissionRepository) CreateWithdraw(ctx context.Context, withdraw *entity.WithdrawRequest) error {
	if withdraw.ID == "" {
		doc := r.client.Collection("withdrawals").NewDoc()
		withdraw.ID = doc.ID
	}
	if withdraw.CreatedAt.IsZero() {
		withdraw.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("withdrawals").Doc(withdraw.ID).Set(ctx, withdraw)
	if err != nil {
		return errors.Internal("Failed to create withdraw request", err)
	}

	return nil
}
