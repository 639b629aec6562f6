package entity

import (
	"time"
)

// User is the profile row kept one-to-one with the Firebase Auth account.
// The auth provider owns identity; this row carries marketplace state,
// including the verification flags checked by the gate.
type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`

	AgeVerified     bool       `json:"age_verified" firestore:"ageVerified"`
	TermsAccepted   bool       `json:"terms_accepted" firestore:"termsAccepted"`
	TermsAcceptedAt *time.Time `json:"terms_accepted_at,omitempty" firestore:"termsAcceptedAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Verified reports whether the actor has cleared the verification gate.
func (u *User) Verified() bool {
	return u.AgeVerified && u.TermsAccepted
}
