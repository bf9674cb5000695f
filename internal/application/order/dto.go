package order

import (
	"time"

	"github.com/agile/ecommerce-backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// ItemSpec is a single line in a create/update order payload: a product
// reference plus the quantity and price to charge. The product is resolved
// against the catalog before the item is attached.
type ItemSpec struct {
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

// CreateOrderRequest represents a request to create an order with its full
// item set
type CreateOrderRequest struct {
	OrderDate       time.Time
	CustomerName    string
	CustomerAddress string
	Items           []ItemSpec
}

// UpdateOrderRequest represents a full-replace update of an order: the
// stored item set is swapped for the payload's resolved item set.
type UpdateOrderRequest struct {
	ID              uint
	OrderDate       time.Time
	CustomerName    string
	CustomerAddress string
	Items           []ItemSpec
}

// OrderItemResponse represents a line item in API responses
type OrderItemResponse struct {
	ID          uint            `json:"id"`
	OrderID     uint            `json:"orderId"`
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// OrderResponse represents an order projection in API responses
type OrderResponse struct {
	ID              uint                `json:"id"`
	OrderDate       time.Time           `json:"orderDate"`
	CustomerName    string              `json:"customerName"`
	CustomerAddress string              `json:"customerAddress"`
	Items           []OrderItemResponse `json:"orderItems"`
}

// ListFilter represents pagination and sorting for order listings
type ListFilter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
}

// CreateItemRequest represents an item-level create: the item is attached
// directly to an existing order, outside the aggregate write path.
type CreateItemRequest struct {
	OrderID   uint
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

// UpdateItemRequest represents an item-level update by item identity
type UpdateItemRequest struct {
	ID        uint
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

// ToOrderItemResponse converts a domain OrderItem to OrderItemResponse
func ToOrderItemResponse(item *order.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:          item.ID,
		OrderID:     item.OrderID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		Price:       item.Price,
	}
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i := range o.Items {
		items[i] = ToOrderItemResponse(&o.Items[i])
	}
	return OrderResponse{
		ID:              o.ID,
		OrderDate:       o.OrderDate,
		CustomerName:    o.CustomerName,
		CustomerAddress: o.CustomerAddress,
		Items:           items,
	}
}

// ToOrderResponses converts a slice of orders
func ToOrderResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
