package entity

import (
	"time"
)

type Category struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Slug      string    `json:"slug" firestore:"slug"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
