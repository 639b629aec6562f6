package entity

import (
	"time"
)

// Cart is one document per user. Items hold only product references and
// quantities; prices are always resolved against the live product rows.
type Cart struct {
	UserID    string     `json:"user_id" firestore:"userId"`
	Items     []CartItem `json:"items" firestore:"items"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
}

type CartItem struct {
	ProductID string `json:"product_id" firestore:"productId"`
	Quantity  int    `json:"quantity" firestore:"quantity"`
}
