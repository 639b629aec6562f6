package entity

import (
	"time"
)

// Store is owned by exactly one seller. A seller has at most one store.
type Store struct {
	ID          string  `json:"id" firestore:"id"`
	SellerID    string  `json:"seller_id" firestore:"sellerId"`
	Name        string  `json:"name" firestore:"name"`
	Description string  `json:"description" firestore:"description"`
	Slug        string  `json:"slug" firestore:"slug"`
	LogoURL     string  `json:"logo_url,omitempty" firestore:"logoUrl,omitempty"`
	IsActive    bool    `json:"is_active" firestore:"isActive"`
	Rating      float64 `json:"rating" firestore:"rating"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
