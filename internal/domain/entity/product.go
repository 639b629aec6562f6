package entity

import (
	"time"
)

// ShippingInfo is free-form carrier data attached to a product listing.
type ShippingInfo struct {
	Carrier       string  `json:"carrier,omitempty" firestore:"carrier,omitempty"`
	EstimatedDays int     `json:"estimated_days,omitempty" firestore:"estimatedDays,omitempty"`
	FreeShipping  bool    `json:"free_shipping" firestore:"freeShipping"`
	Cost          float64 `json:"cost,omitempty" firestore:"cost,omitempty"`
}

type Product struct {
	ID          string   `json:"id" firestore:"id"`
	StoreID     string   `json:"store_id" firestore:"storeId"`
	CategoryID  string   `json:"category_id,omitempty" firestore:"categoryId,omitempty"`
	Name        string   `json:"name" firestore:"name"`
	Description string   `json:"description" firestore:"description"`
	Price       float64  `json:"price" firestore:"price"`
	Stock       int      `json:"stock" firestore:"stock"`
	Slug        string   `json:"slug" firestore:"slug"`
	IsActive    bool     `json:"is_active" firestore:"isActive"`
	Images      []string `json:"images" firestore:"images"`
	Sizes       []string `json:"sizes,omitempty" firestore:"sizes,omitempty"`

	ShippingInfo *ShippingInfo `json:"shipping_info,omitempty" firestore:"shippingInfo,omitempty"`

	Rating       float64 `json:"rating" firestore:"rating"`
	TotalReviews int     `json:"total_reviews" firestore:"totalReviews"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ProductListing is the denormalized read model for catalog pages:
// the product row with its store and category expanded.
type ProductListing struct {
	Product
	Store    *Store    `json:"store,omitempty"`
	Category *Category `json:"category,omitempty"`
}
