package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"marketplus/internal/domain/entity"
	"marketplus/internal/usecase"
	"marketplus/pkg/errors"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *stubUserRepo) SetVerified(ctx context.Context, id string) error {
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	now := time.Now()
	user.AgeVerified = true
	user.TermsAccepted = true
	user.TermsAcceptedAt = &now
	return nil
}

func (r *stubUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func newVerificationHandler(users map[string]*entity.User) *UserHandler {
	repo := &stubUserRepo{users: users}
	return NewUserHandler(nil, nil, usecase.NewVerificationUseCase(repo))
}

func TestConfirmVerificationEndpoint(t *testing.T) {
	h := newVerificationHandler(map[string]*entity.User{
		"u1": {ID: "u1", Email: "buyer@example.com"},
	})

	e := echo.New()
	body := `{"age_confirmed": true, "terms_accepted": true}`
	req := httptest.NewRequest(http.MethodPost, "/v1/me/verification", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "u1")

	if assert.NoError(t, h.ConfirmVerification(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"verified":true`)
	}
}

func TestConfirmVerificationRejectsPartialConsent(t *testing.T) {
	h := newVerificationHandler(map[string]*entity.User{
		"u1": {ID: "u1", Email: "buyer@example.com"},
	})

	e := echo.New()
	body := `{"age_confirmed": true, "terms_accepted": false}`
	req := httptest.NewRequest(http.MethodPost, "/v1/me/verification", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "u1")

	if assert.NoError(t, h.ConfirmVerification(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "BAD_REQUEST")
	}
}

func TestGetVerificationStatusUnauthenticated(t *testing.T) {
	h := newVerificationHandler(map[string]*entity.User{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/me/verification", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GetVerificationStatus(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
