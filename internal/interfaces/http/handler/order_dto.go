package handler

import "time"

// OrderItemPayload is the wire shape for an order line. ProductName is
// accepted for compatibility but ignored on writes; the server resolves the
// canonical name from the catalog.
type OrderItemPayload struct {
	ID          uint     `json:"id"`
	OrderID     uint     `json:"orderId"`
	ProductID   uint     `json:"productId"`
	ProductName string   `json:"productName"`
	Quantity    int      `json:"quantity"`
	Price       *float64 `json:"price"`
}

// OrderPayload is the wire shape for order create and update requests.
// Update reads the identity from the payload, not the path. Field rules are
// enforced by the domain layer, so violations surface as single-message 400s
// rather than field maps.
type OrderPayload struct {
	ID              uint               `json:"id"`
	OrderDate       time.Time          `json:"orderDate"`
	CustomerName    string             `json:"customerName"`
	CustomerAddress string             `json:"customerAddress"`
	Items           []OrderItemPayload `json:"orderItems"`
}
