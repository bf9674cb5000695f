package catalog

import (
	"time"

	"github.com/agile/ecommerce-backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

// UpdateProductRequest represents a full-overwrite update of a product.
// ID zero means the payload carried no identity.
type UpdateProductRequest struct {
	ID          uint
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
