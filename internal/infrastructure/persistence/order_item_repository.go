package persistence

import (
	"context"
	"errors"

	"github.com/agile/ecommerce-backend/internal/domain/order"
	"github.com/agile/ecommerce-backend/internal/domain/shared"
	"gorm.io/gorm"
)

var orderItemSortColumns = map[string]bool{
	"id":         true,
	"order_id":   true,
	"product_id": true,
	"quantity":   true,
	"price":      true,
	"created_at": true,
}

// GormOrderItemRepository implements order.OrderItemRepository using GORM.
// It addresses item rows directly, outside the aggregate write path.
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewGormOrderItemRepository creates a new GormOrderItemRepository
func NewGormOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// FindByID finds an order item by its ID
func (r *GormOrderItemRepository) FindByID(ctx context.Context, id uint) (*order.OrderItem, error) {
	var item order.OrderItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll finds all order items matching the filter
func (r *GormOrderItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.OrderItem, error) {
	var items []order.OrderItem
	query := r.db.WithContext(ctx).Model(&order.OrderItem{}).
		Order(orderClause(filter, orderItemSortColumns))
	query = applyPaging(query, filter)

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a single item
func (r *GormOrderItemRepository) Save(ctx context.Context, item *order.OrderItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete deletes an item by ID. Absent rows are not an error.
func (r *GormOrderItemRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&order.OrderItem{}, "id = ?", id).Error
}

// Count counts order items matching the filter
func (r *GormOrderItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&order.OrderItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormOrderItemRepository implements OrderItemRepository
var _ order.OrderItemRepository = (*GormOrderItemRepository)(nil)
