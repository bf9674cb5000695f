package order

import (
	"context"

	"github.com/agile/ecommerce-backend/internal/domain/shared"
)

// OrderRepository defines the interface for order aggregate persistence.
// Save and Delete operate on the whole aggregate in a single transaction.
type OrderRepository interface {
	// FindByID finds an order with its items by ID
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindAll finds all orders (with items) matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Save persists the order and its full item set atomically. Stored
	// items absent from the aggregate's current set are deleted.
	Save(ctx context.Context, order *Order) error

	// Delete deletes the order and, cascading, all of its items
	Delete(ctx context.Context, id uint) error

	// ExistsByID checks whether an order with the given ID exists
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// OrderItemRepository gives direct access to order items, bypassing the
// aggregate. It backs the item-level API, which writes items without going
// through the owning order.
type OrderItemRepository interface {
	// FindByID finds an order item by its ID
	FindByID(ctx context.Context, id uint) (*OrderItem, error)

	// FindAll finds all order items matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]OrderItem, error)

	// Save creates or updates a single item
	Save(ctx context.Context, item *OrderItem) error

	// Delete deletes an item by ID. Deleting an absent item is not an error.
	Delete(ctx context.Context, id uint) error

	// Count counts order items matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
