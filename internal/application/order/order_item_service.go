package order

import (
	"context"
	"errors"

	"github.com/agile/ecommerce-backend/internal/domain/catalog"
	"github.com/agile/ecommerce-backend/internal/domain/order"
	"github.com/agile/ecommerce-backend/internal/domain/shared"
)

// OrderItemService exposes the item-level write path: single items are
// created, updated, and deleted directly, without going through the owning
// order's aggregate write. It performs the same product resolution as the
// aggregate path but offers none of its replace semantics.
type OrderItemService struct {
	itemRepo    order.OrderItemRepository
	orderRepo   order.OrderRepository
	productRepo catalog.ProductRepository
}

// NewOrderItemService creates a new OrderItemService
func NewOrderItemService(
	itemRepo order.OrderItemRepository,
	orderRepo order.OrderRepository,
	productRepo catalog.ProductRepository,
) *OrderItemService {
	return &OrderItemService{
		itemRepo:    itemRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// List retrieves a page of order items across all orders
func (s *OrderItemService) List(ctx context.Context, filter ListFilter) ([]OrderItemResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
	}

	items, err := s.itemRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.itemRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderItemResponse, len(items))
	for i := range items {
		responses[i] = ToOrderItemResponse(&items[i])
	}
	return responses, total, nil
}

// GetByID retrieves an order item by ID
func (s *OrderItemService) GetByID(ctx context.Context, id uint) (*OrderItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, order.NewOrderItemNotFound(id)
		}
		return nil, err
	}

	response := ToOrderItemResponse(item)
	return &response, nil
}

// Create attaches a single item to an existing order. Both the owning order
// and the referenced product must exist.
func (s *OrderItemService) Create(ctx context.Context, req CreateItemRequest) (*OrderItemResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, order.NewOrderNotFound(req.OrderID)
		}
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, catalog.NewProductNotFound(req.ProductID)
		}
		return nil, err
	}

	item, err := order.NewOrderItem(o.ID, product, req.Quantity, req.Price)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToOrderItemResponse(item)
	return &response, nil
}

// Update overwrites an existing item's product reference, quantity, and
// price. The product is re-resolved so the denormalized name stays current.
func (s *OrderItemService) Update(ctx context.Context, req UpdateItemRequest) (*OrderItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, order.NewOrderItemNotFound(req.ID)
		}
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, catalog.NewProductNotFound(req.ProductID)
		}
		return nil, err
	}

	replacement, err := order.NewOrderItem(item.OrderID, product, req.Quantity, req.Price)
	if err != nil {
		return nil, err
	}
	replacement.ID = item.ID
	replacement.CreatedAt = item.CreatedAt

	if err := s.itemRepo.Save(ctx, replacement); err != nil {
		return nil, err
	}

	response := ToOrderItemResponse(replacement)
	return &response, nil
}

// Delete removes an item by ID. Deleting an absent item is not an error.
func (s *OrderItemService) Delete(ctx context.Context, id uint) error {
	return s.itemRepo.Delete(ctx, id)
}
