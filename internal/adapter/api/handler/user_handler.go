package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplus/internal/usecase"
	"marketplus/pkg/response"
)

type UserHandler struct {
	authUseCase         *usecase.AuthUseCase
	roleUseCase         *usecase.RoleUseCase
	verificationUseCase *usecase.VerificationUseCase
}

func NewUserHandler(
	authUseCase *usecase.AuthUseCase,
	roleUseCase *usecase.RoleUseCase,
	verificationUseCase *usecase.VerificationUseCase,
) *UserHandler {
	return &UserHandler{
		authUseCase:         authUseCase,
		roleUseCase:         roleUseCase,
		verificationUseCase: verificationUseCase,
	}
}

// GetProfile returns the caller's profile together with resolved roles and
// verification state, so the client needs one round trip after sign-in.
func (h *UserHandler) GetProfile(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	ctx := c.Request().Context()

	user, err := h.authUseCase.GetUserByID(ctx, uid)
	if err != nil {
		return response.Error(c, err)
	}

	resolution, err := h.roleUseCase.Resolve(ctx, uid)
	if err != nil {
		return response.Error(c, err)
	}

	status, err := h.verificationUseCase.Status(ctx, uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"user":         user,
		"roles":        resolution,
		"verification": status,
	})
}

// GetRoles returns the caller's resolved {isAdmin, isSeller} pair.
func (h *UserHandler) GetRoles(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	resolution, err := h.roleUseCase.Resolve(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, resolution)
}

func (h *UserHandler) GetVerificationStatus(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	status, err := h.verificationUseCase.Status(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, status)
}

type confirmVerificationRequest struct {
	AgeConfirmed  bool `json:"age_confirmed"`
	TermsAccepted bool `json:"terms_accepted"`
}

func (h *UserHandler) ConfirmVerification(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	var req confirmVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	status, err := h.verificationUseCase.Confirm(c.Request().Context(), uid, usecase.ConfirmVerificationInput{
		AgeConfirmed:  req.AgeConfirmed,
		TermsAccepted: req.TermsAccepted,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, status)
}
