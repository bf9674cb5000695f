package handler

import (
	"github.com/agile/ecommerce-backend/internal/application/catalog"
	"github.com/agile/ecommerce-backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	BaseHandler
	service *catalog.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service *catalog.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.GetByID)
		products.POST("", h.Create)
		products.PUT("", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

// List returns the product listing
// @Summary List products
// @Description Returns the first page of ten products. The listing is not
// @Description client-pageable.
// @Tags products
// @Produce json
// @Success 200 {object} dto.PageResponse[catalog.ProductResponse]
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	// The listing is pinned to the first page of ten regardless of query
	// parameters. Clients depend on this.
	filter := catalog.ProductListFilter{Page: 1, PageSize: 10}

	products, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewPageResponse(products, filter.Page, filter.PageSize, total))
}

// GetByID returns a single product
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} catalog.ProductResponse
// @Failure 404 {object} dto.ErrorBody
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	product, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, product)
}

// Create creates a new product
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param request body ProductPayload true "Product"
// @Success 201 {object} catalog.ProductResponse
// @Failure 400 {object} dto.FieldErrors
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var payload ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	product, err := h.service.Create(c.Request.Context(), catalog.CreateProductRequest{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       derefDecimal(payload.Price),
		Quantity:    payload.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// Update overwrites an existing product
// @Summary Update product
// @Description Full overwrite of the product identified by the payload's id
// @Tags products
// @Accept json
// @Produce json
// @Param request body ProductPayload true "Product"
// @Success 200 {object} catalog.ProductResponse
// @Failure 400 {object} dto.FieldErrors
// @Failure 404 {object} dto.ErrorBody
// @Router /products [put]
func (h *ProductHandler) Update(c *gin.Context) {
	var payload ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	product, err := h.service.Update(c.Request.Context(), catalog.UpdateProductRequest{
		ID:          payload.ID,
		Name:        payload.Name,
		Description: payload.Description,
		Price:       derefDecimal(payload.Price),
		Quantity:    payload.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, product)
}

// Delete deletes a product
// @Summary Delete product
// @Description Deletes the product even when order items still reference it
// @Tags products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} dto.ErrorBody
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
