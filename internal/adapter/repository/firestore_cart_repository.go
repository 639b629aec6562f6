package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"marketplus/internal/domain/entity"
	"marketplus/internal/domain/repository"
	"marketplus/pkg/errors"
)

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

func (r *firestoreCartRepository) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	doc, err := r.client.Collection("carts").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Internal("Failed to get cart", err)
	}

	var cart entity.Cart
	if err := doc.DataTo(&cart); err != nil {
		return nil, errors.Internal("Failed to parse cart data", err)
	}

	return &cart, nil
}

func (r *firestoreCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now()
	_, err := r.client.Collection("carts").Doc(cart.UserID).Set(ctx, cart)
	if err != nil {
		return errors.Internal("Failed to save cart", err)
	}
	return nil
}

func (r *firestoreCartRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.client.Collection("carts").Doc(userID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete cart", err)
	}
	return nil
}
