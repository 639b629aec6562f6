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

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order, items []entity.OrderItem) error {
	if order.ID == "" {
		doc := r.client.Collection("orders").NewDoc()
		order.ID = doc.ID
	}

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	// Order and items go in one batch so a half-written order never shows
	// up in the customer's history.
	batch := r.client.Batch()
	batch.Set(r.client.Collection("orders").Doc(order.ID), order)

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = r.client.Collection("order_items").NewDoc().ID
		}
		items[i].OrderID = order.ID
		items[i].CreatedAt = now
		batch.Set(r.client.Collection("order_items").Doc(items[i].ID), items[i])
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to create order", err)
	}

	order.Items = items
	return nil
}

func (r *firestoreOrderRepository) ListByCustomerID(ctx context.Context, customerID string) ([]*entity.Order, error) {
	query := r.client.Collection("orders").
		Where("customerId", "==", customerID).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)

	var orders []*entity.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}

		items, err := r.listItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items

		orders = append(orders, &order)
	}

	return orders, nil
}

func (r *firestoreOrderRepository) listItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	iter := r.client.Collection("order_items").Where("orderId", "==", orderID).Documents(ctx)

	var items []entity.OrderItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate order items", err)
		}

		var item entity.OrderItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse order item", err)
		}
		items = append(items, item)
	}

	return items, nil
}
