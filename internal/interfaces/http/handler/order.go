package handler

import (
	"github.com/agile/ecommerce-backend/internal/application/order"
	"github.com/agile/ecommerce-backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order aggregate endpoints
type OrderHandler struct {
	BaseHandler
	service *order.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(service *order.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
		orders.POST("", h.Create)
		orders.PUT("", h.Update)
		orders.DELETE("/:id", h.Delete)
	}
}

// List returns a page of orders with their items
// @Summary List orders
// @Tags orders
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param order_by query string false "Sort column"
// @Param order_dir query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} dto.PageResponse[order.OrderResponse]
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
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

	orders, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewPageResponse(orders, filter.Page, filter.PageSize, total))
}

// GetByID returns a single order with its items
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} order.OrderResponse
// @Failure 404 {object} dto.ErrorBody
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	o, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, o)
}

// Create creates an order with its items
// @Summary Create order
// @Description Creates the order and all of its items atomically. A single
// @Description unresolvable product fails the whole request with nothing
// @Description persisted.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body OrderPayload true "Order"
// @Success 201 {object} order.OrderResponse
// @Failure 404 {object} dto.ErrorBody
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var payload OrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	o, err := h.service.Create(c.Request.Context(), order.CreateOrderRequest{
		OrderDate:       payload.OrderDate,
		CustomerName:    payload.CustomerName,
		CustomerAddress: payload.CustomerAddress,
		Items:           toItemSpecs(payload.Items),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, o)
}

// Update replaces an existing order and its item set
// @Summary Update order
// @Description Full replace of the order identified by the payload's id,
// @Description including its item set.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body OrderPayload true "Order"
// @Success 200 {object} order.OrderResponse
// @Failure 404 {object} dto.ErrorBody
// @Router /orders [put]
func (h *OrderHandler) Update(c *gin.Context) {
	var payload OrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	o, err := h.service.Update(c.Request.Context(), order.UpdateOrderRequest{
		ID:              payload.ID,
		OrderDate:       payload.OrderDate,
		CustomerName:    payload.CustomerName,
		CustomerAddress: payload.CustomerAddress,
		Items:           toItemSpecs(payload.Items),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, o)
}

// Delete deletes an order and all of its items
// @Summary Delete order
// @Tags orders
// @Param id path int true "Order ID"
// @Success 204
// @Failure 404 {object} dto.ErrorBody
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
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

func toItemSpecs(items []OrderItemPayload) []order.ItemSpec {
	specs := make([]order.ItemSpec, len(items))
	for i, item := range items {
		specs[i] = order.ItemSpec{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     derefDecimal(item.Price),
		}
	}
	return specs
}
