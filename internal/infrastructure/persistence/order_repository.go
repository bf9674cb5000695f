package persistence

import (
	"context"
	"errors"

	"github.com/agile/ecommerce-backend/internal/domain/order"
	"github.com/agile/ecommerce-backend/internal/domain/shared"
	"gorm.io/gorm"
)

var orderSortColumns = map[string]bool{
	"id":            true,
	"order_date":    true,
	"customer_name": true,
	"created_at":    true,
}

// GormOrderRepository implements order.OrderRepository using GORM. Writes
// cover the whole aggregate: the order row and its item rows change together
// in one transaction.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with its items by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindAll finds all orders with their items matching the filter
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	var orders []order.Order
	query := r.db.WithContext(ctx).Model(&order.Order{}).
		Preload("Items").
		Order(orderClause(filter, orderSortColumns))
	query = applyPaging(query, filter)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save persists the order and its full item set in one transaction. Stored
// items absent from the aggregate's current set are deleted (full
// diff-and-replace, the explicit form of cascade/orphan-removal).
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(o).Error; err != nil {
			return err
		}

		currentItemIDs := make([]uint, 0, len(o.Items))
		for _, item := range o.Items {
			if item.ID != 0 {
				currentItemIDs = append(currentItemIDs, item.ID)
			}
		}

		if len(currentItemIDs) > 0 {
			if err := tx.Where("order_id = ? AND id NOT IN ?", o.ID, currentItemIDs).
				Delete(&order.OrderItem{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("order_id = ?", o.ID).
				Delete(&order.OrderItem{}).Error; err != nil {
				return err
			}
		}

		for i := range o.Items {
			o.Items[i].OrderID = o.ID
			if err := tx.Save(&o.Items[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete deletes the order and all of its items in one transaction.
// Referenced products are not touched.
func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&order.OrderItem{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&order.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// ExistsByID checks whether an order with the given ID exists
func (r *GormOrderRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&order.Order{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&order.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormOrderRepository implements OrderRepository
var _ order.OrderRepository = (*GormOrderRepository)(nil)
