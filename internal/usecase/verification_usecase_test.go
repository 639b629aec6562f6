package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"marketplus/internal/domain/entity"
	apperrors "marketplus/pkg/errors"
)

func TestStatusUnverifiedUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users["u1"] = &entity.User{ID: "u1"}

	uc := NewVerificationUseCase(userRepo)

	status, err := uc.Status(context.Background(), "u1")

	assert.NoError(t, err)
	assert.False(t, status.Verified)
	assert.False(t, status.AgeVerified)
	assert.False(t, status.TermsAccepted)
}

func TestStatusPartialFlagsStayBlocked(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users["u1"] = &entity.User{ID: "u1", AgeVerified: true}

	uc := NewVerificationUseCase(userRepo)

	status, err := uc.Status(context.Background(), "u1")

	assert.NoError(t, err)
	assert.False(t, status.Verified)
	assert.True(t, status.AgeVerified)
}

func TestStatusFetchFailureIsAnError(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.err = errors.New("firestore unavailable")

	uc := NewVerificationUseCase(userRepo)

	status, err := uc.Status(context.Background(), "u1")

	// Unknown state must surface as an error, never as "verified".
	assert.Error(t, err)
	assert.Nil(t, status)
}

func TestConfirmRequiresBothFlags(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users["u1"] = &entity.User{ID: "u1"}

	uc := NewVerificationUseCase(userRepo)

	for _, input := range []ConfirmVerificationInput{
		{AgeConfirmed: true, TermsAccepted: false},
		{AgeConfirmed: false, TermsAccepted: true},
		{AgeConfirmed: false, TermsAccepted: false},
	} {
		_, err := uc.Confirm(context.Background(), "u1", input)
		assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
	}

	assert.False(t, userRepo.users["u1"].Verified())
}

func TestConfirmSetsBothFlagsWithTimestamp(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users["u1"] = &entity.User{ID: "u1"}

	uc := NewVerificationUseCase(userRepo)

	status, err := uc.Confirm(context.Background(), "u1", ConfirmVerificationInput{
		AgeConfirmed:  true,
		TermsAccepted: true,
	})

	assert.NoError(t, err)
	assert.True(t, status.Verified)
	assert.NotNil(t, status.TermsAcceptedAt)
}

func TestConfirmIsIdempotent(t *testing.T) {
	userRepo := newFakeUserRepo()
	acceptedAt := time.Now().Add(-24 * time.Hour)
	userRepo.users["u1"] = &entity.User{
		ID:              "u1",
		AgeVerified:     true,
		TermsAccepted:   true,
		TermsAcceptedAt: &acceptedAt,
	}

	uc := NewVerificationUseCase(userRepo)

	status, err := uc.Confirm(context.Background(), "u1", ConfirmVerificationInput{
		AgeConfirmed:  true,
		TermsAccepted: true,
	})

	assert.NoError(t, err)
	assert.True(t, status.Verified)
	// The original acceptance timestamp is preserved.
	assert.Equal(t, acceptedAt, *status.TermsAcceptedAt)
}
