package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"superdaily/internal/model"
	"superdaily/internal/service"
)

// ProductHandler handles product endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductListResponse is returned with status 200 whether or not the query
// succeeded.
type ProductListResponse struct {
	Success  bool            `json:"success"`
	Products []model.Product `json:"products"`
	Count    int             `json:"count"`
	Message  string          `json:"message"`
}

// ListFeatured godoc
// @Summary List featured products
// @Description Returns every product with image columns rewritten to absolute URLs.
// @Tags products
// @Produce json
// @Success 200 {object} ProductListResponse
// @Router /products/featured [get]
func (h *ProductHandler) ListFeatured(c echo.Context) error {
	products, err := h.productService.ListFeatured(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, ProductListResponse{
			Products: []model.Product{},
			Message:  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, ProductListResponse{
		Success:  true,
		Products: products,
		Count:    len(products),
	})
}
