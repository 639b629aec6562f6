package entity

import (
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID          string    `json:"id" firestore:"id"`
	CustomerID  string    `json:"customer_id" firestore:"customerId"`
	Status      string    `json:"status" firestore:"status"`
	TotalAmount float64   `json:"total_amount" firestore:"totalAmount"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`

	Items []OrderItem `json:"order_items" firestore:"-"`
}

// OrderItem snapshots the product and store names at order time, so later
// listing edits do not rewrite order history.
type OrderItem struct {
	ID          string  `json:"id" firestore:"id"`
	OrderID     string  `json:"order_id" firestore:"orderId"`
	ProductID   string  `json:"product_id" firestore:"productId"`
	StoreID     string  `json:"store_id" firestore:"storeId"`
	ProductName string  `json:"product_name" firestore:"productName"`
	StoreName   string  `json:"store_name" firestore:"storeName"`
	Quantity    int     `json:"quantity" firestore:"quantity"`
	UnitPrice   float64 `json:"unit_price" firestore:"unitPrice"`
	TotalPrice  float64 `json:"total_price" firestore:"totalPrice"`

	ImageURL string `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
