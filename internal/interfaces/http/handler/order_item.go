package handler

import (
	"github.com/agile/ecommerce-backend/internal/application/order"
	"github.com/agile/ecommerce-backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// OrderItemHandler handles the item-level endpoints. These address single
// line items directly, bypassing the owning order's aggregate write path.
type OrderItemHandler struct {
	BaseHandler
	service *order.OrderItemService
}

// NewOrderItemHandler creates a new OrderItemHandler
func NewOrderItemHandler(service *order.OrderItemService) *OrderItemHandler {
	return &OrderItemHandler{service: service}
}

// RegisterRoutes registers order item routes
func (h *OrderItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/order-items")
	{
		items.GET("", h.List)
		items.GET("/:id", h.GetByID)
		items.POST("", h.Create)
		items.PUT("", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

// List returns a page of order items across all orders
// @Summary List order items
// @Tags order-items
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param order_by query string false "Sort column"
// @Param order_dir query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} dto.PageResponse[order.OrderItemResponse]
// @Router /order-items [get]
func (h *OrderItemHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	req.Normalize()

	filter := order.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

// GetByID returns a single order item
// @Summary Get order item by ID
// @Tags order-items
// @Produce json
// @Param id path int true "Order item ID"
// @Success 200 {object} order.OrderItemResponse
// @Failure 404 {object} dto.ErrorBody
// @Router /order-items/{id} [get]
func (h *OrderItemHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, item)
}

// Create attaches a single item to an existing order
// @Summary Create order item
// @Description Attaches one item to the order named by the payload's
// @Description orderId. Both the order and the product must exist.
// @Tags order-items
// @Accept json
// @Produce json
// @Param request body OrderItemPayload true "Order item"
// @Success 201 {object} order.OrderItemResponse
// @Failure 404 {object} dto.ErrorBody
// @Router /order-items [post]
func (h *OrderItemHandler) Create(c *gin.Context) {
	var payload OrderItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	item, err := h.service.Create(c.Request.Context(), order.CreateItemRequest{
		OrderID:   payload.OrderID,
		ProductID: payload.ProductID,
		Quantity:  payload.Quantity,
		Price:     derefDecimal(payload.Price),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// Update overwrites an existing order item
// @Summary Update order item
// @Description Overwrites the item identified by the payload's id. The
// @Description product reference is re-resolved against the catalog.
// @Tags order-items
// @Accept json
// @Produce json
// @Param request body OrderItemPayload true "Order item"
// @Success 200 {object} order.OrderItemResponse
// @Failure 404 {object} dto.ErrorBody
// @Router /order-items [put]
func (h *OrderItemHandler) Update(c *gin.Context) {
	var payload OrderItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	item, err := h.service.Update(c.Request.Context(), order.UpdateItemRequest{
		ID:        payload.ID,
		ProductID: payload.ProductID,
		Quantity:  payload.Quantity,
		Price:     derefDecimal(payload.Price),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, item)
}

// Delete removes an order item
// @Summary Delete order item
// @Description Deleting an item that does not exist is not an error.
// @Tags order-items
// @Param id path int true "Order item ID"
// @Success 204
// @Router /order-items/{id} [delete]
func (h *OrderItemHandler) Delete(c *gin.Context) {
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
