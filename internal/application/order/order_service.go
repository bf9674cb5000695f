package order

import (
	"context"
	"errors"

	"github.com/agile/ecommerce-backend/internal/domain/catalog"
	"github.com/agile/ecommerce-backend/internal/domain/order"
	"github.com/agile/ecommerce-backend/internal/domain/shared"
)

// OrderService is the order aggregate manager. Every write resolves the
// referenced products against the catalog and persists the order together
// with its full item set in one transaction; a single missing product aborts
// the whole operation with nothing persisted.
type OrderService struct {
	orderRepo   order.OrderRepository
	productRepo catalog.ProductRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.OrderRepository, productRepo catalog.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// List retrieves a page of orders with their items
func (s *OrderService) List(ctx context.Context, filter ListFilter) ([]OrderResponse, int64, error) {
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

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, id uint) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, order.NewOrderNotFound(id)
		}
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// Create builds the order's item set from the resolved item specs and
// persists the order and all items atomically. An order cannot be created
// empty. Product quantity-on-hand is deliberately left untouched.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}

	o, err := order.NewOrder(req.OrderDate, req.CustomerName, req.CustomerAddress)
	if err != nil {
		return nil, err
	}

	if err := s.attachItems(ctx, o, req.Items); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// Update replaces the stored order with the payload: header fields are
// overwritten and the item set is fully replaced by the resolved specs.
// The order must exist before any product resolution is attempted.
func (s *OrderService) Update(ctx context.Context, req UpdateOrderRequest) (*OrderResponse, error) {
	exists, err := s.orderRepo.ExistsByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, order.NewOrderNotFound(req.ID)
	}

	o, err := order.NewOrder(req.OrderDate, req.CustomerName, req.CustomerAddress)
	if err != nil {
		return nil, err
	}
	o.ID = req.ID

	if err := s.attachItems(ctx, o, req.Items); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// Delete deletes the order and, cascading, all of its items. Referenced
// products are left untouched.
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	exists, err := s.orderRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return order.NewOrderNotFound(id)
	}

	return s.orderRepo.Delete(ctx, id)
}

// attachItems resolves every spec's product and appends the resulting items
// to the order. The first unresolvable product fails the whole operation,
// identifying the offending product id.
func (s *OrderService) attachItems(ctx context.Context, o *order.Order, specs []ItemSpec) error {
	for _, spec := range specs {
		product, err := s.productRepo.FindByID(ctx, spec.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return catalog.NewProductNotFound(spec.ProductID)
			}
			return err
		}
		if _, err := o.AddItem(product, spec.Quantity, spec.Price); err != nil {
			return err
		}
	}
	return nil
}
