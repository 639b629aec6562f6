package entity

import (
	"time"
)

const RoleSeller = "seller"

// RoleAssignment maps a user to a role label. A user may hold zero or more
// rows. Admin is never stored here; it is derived from the configured
// operator email.
type RoleAssignment struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Role      string    `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
