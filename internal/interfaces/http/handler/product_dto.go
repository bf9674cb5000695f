package handler

// ProductPayload is the wire shape for product create and update requests.
// Update reads the identity from the payload, not the path.
type ProductPayload struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Description string   `json:"description" binding:"required,min=10,max=500"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Quantity    int      `json:"quantity" binding:"gte=0"`
}
