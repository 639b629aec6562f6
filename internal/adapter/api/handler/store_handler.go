package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplus/internal/usecase"
	"marketplus/pkg/response"
)

type StoreHandler struct {
	storeUseCase   *usecase.StoreUseCase
	productUseCase *usecase.ProductUseCase
}

func NewStoreHandler(storeUseCase *usecase.StoreUseCase, productUseCase *usecase.ProductUseCase) *StoreHandler {
	return &StoreHandler{
		storeUseCase:   storeUseCase,
		productUseCase: productUseCase,
	}
}

// CreateStore accepts multipart form data so the logo can ride along with the
// store fields.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	name := c.FormValue("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Store name is required")
	}
	description := c.FormValue("description")

	var logo *usecase.LogoUpload
	if fileHeader, err := c.FormFile("logo"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Failed to read logo upload")
		}
		defer src.Close()

		logo = &usecase.LogoUpload{
			Reader:      src,
			ContentType: fileHeader.Header.Get("Content-Type"),
		}
	}

	store, err := h.storeUseCase.CreateStore(c.Request().Context(), uid, usecase.CreateStoreInput{
		Name:        name,
		Description: description,
	}, logo)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, store)
}

// GetMyStore returns the caller's store, or a null payload when none exists;
// the client uses that to route to store creation.
func (h *StoreHandler) GetMyStore(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	store, err := h.storeUseCase.GetStoreBySeller(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

// GetMyStoreProducts lists the caller's store listings, newest first.
func (h *StoreHandler) GetMyStoreProducts(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	ctx := c.Request().Context()

	store, err := h.storeUseCase.GetStoreBySeller(ctx, uid)
	if err != nil {
		return response.Error(c, err)
	}
	if store == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Store not found")
	}

	products, err := h.productUseCase.ListByStore(ctx, store.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}
