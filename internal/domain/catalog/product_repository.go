package catalog

import (
	"context"

	"github.com/agile/ecommerce-backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uint) (*Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product. It does not check whether any order item
	// still references the product.
	Delete(ctx context.Context, id uint) error

	// ExistsByID checks whether a product with the given ID exists
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
