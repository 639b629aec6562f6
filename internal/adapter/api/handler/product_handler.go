package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplus/internal/domain/entity"
	"marketplus/internal/usecase"
	"marketplus/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	CategoryID  string   `json:"category_id"`
	Name        string   `json:"name" validate:"required,min=3"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes"`

	ShippingInfo *shippingInfoRequest `json:"shipping_info"`
}

type shippingInfoRequest struct {
	Carrier       string  `json:"carrier"`
	EstimatedDays int     `json:"estimated_days"`
	FreeShipping  bool    `json:"free_shipping"`
	Cost          float64 `json:"cost"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.CreateProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Images:      req.Images,
		Sizes:       req.Sizes,
	}
	if req.ShippingInfo != nil {
		input.ShippingInfo = &entity.ShippingInfo{
			Carrier:       req.ShippingInfo.Carrier,
			EstimatedDays: req.ShippingInfo.EstimatedDays,
			FreeShipping:  req.ShippingInfo.FreeShipping,
			Cost:          req.ShippingInfo.Cost,
		}
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), uid, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

// ListProducts is the public catalog: active products with store and category
// expanded.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	listings, err := h.productUseCase.ListActiveProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.productUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Product id is required")
	}

	listing, err := h.productUseCase.GetProductListing(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}
