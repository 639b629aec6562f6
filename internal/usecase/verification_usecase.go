package usecase

import (
	"context"
	"time"

	"marketplus/internal/domain/repository"
	"marketplus/pkg/errors"
)

// VerificationStatus mirrors the profile's gate flags. Verified is true only
// when both confirmations are on record.
type VerificationStatus struct {
	Verified        bool       `json:"verified"`
	AgeVerified     bool       `json:"age_verified"`
	TermsAccepted   bool       `json:"terms_accepted"`
	TermsAcceptedAt *time.Time `json:"terms_accepted_at,omitempty"`
}

type VerificationUseCase struct {
	userRepo repository.UserRepository
}

func NewVerificationUseCase(userRepo repository.UserRepository) *VerificationUseCase {
	return &VerificationUseCase{
		userRepo: userRepo,
	}
}

type ConfirmVerificationInput struct {
	AgeConfirmed  bool
	TermsAccepted bool
}

// Status reports the actor's gate state. A failed profile fetch is an error;
// callers treat unknown as blocking rather than waving the actor through.
func (uc *VerificationUseCase) Status(ctx context.Context, userID string) (*VerificationStatus, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &VerificationStatus{
		Verified:        user.Verified(),
		AgeVerified:     user.AgeVerified,
		TermsAccepted:   user.TermsAccepted,
		TermsAcceptedAt: user.TermsAcceptedAt,
	}, nil
}

// Confirm records both confirmations with a server timestamp. Both inputs
// must be true. Confirming an already-verified profile succeeds without
// touching the stored flags, so a double submit never un-verifies anyone.
func (uc *VerificationUseCase) Confirm(ctx context.Context, userID string, input ConfirmVerificationInput) (*VerificationStatus, error) {
	if !input.AgeConfirmed || !input.TermsAccepted {
		return nil, errors.BadRequest("Both age and terms confirmations are required", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Verified() {
		return &VerificationStatus{
			Verified:        true,
			AgeVerified:     true,
			TermsAccepted:   true,
			TermsAcceptedAt: user.TermsAcceptedAt,
		}, nil
	}

	if err := uc.userRepo.SetVerified(ctx, userID); err != nil {
		return nil, err
	}

	return uc.Status(ctx, userID)
}
