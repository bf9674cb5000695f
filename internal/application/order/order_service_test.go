package order

import (
	"context"
	"testing"
	"time"

	"github.com/agile/ecommerce-backend/internal/domain/catalog"
	"github.com/agile/ecommerce-backend/internal/domain/order"
	"github.com/agile/ecommerce-backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderItemRepository is a mock implementation of OrderItemRepository
type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) FindByID(ctx context.Context, id uint) (*order.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.OrderItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]order.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) Save(ctx context.Context, item *order.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderItemRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func testProduct(id uint, name string) *catalog.Product {
	product, _ := catalog.NewProduct(name, "A product used in service tests", decimal.NewFromInt(10), 100)
	product.ID = id
	return product
}

func testOrder(id uint) *order.Order {
	o, _ := order.NewOrder(time.Now().Add(-time.Hour), "Jane Doe", "1 Main Street, Springfield")
	o.ID = id
	return o
}

func validCreateRequest(items ...ItemSpec) CreateOrderRequest {
	return CreateOrderRequest{
		OrderDate:       time.Now().Add(-time.Hour),
		CustomerName:    "Jane Doe",
		CustomerAddress: "1 Main Street, Springfield",
		Items:           items,
	}
}

func TestOrderService_Create(t *testing.T) {
	t.Run("persists order with all resolved items", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo)
		ctx := context.Background()

		productRepo.On("FindByID", ctx, uint(1)).Return(testProduct(1, "Keyboard"), nil)
		productRepo.On("FindByID", ctx, uint(2)).Return(testProduct(2, "Mouse"), nil)
		productRepo.On("FindByID", ctx, uint(3)).Return(testProduct(3, "Monitor"), nil)
		orderRepo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

		result, err := service.Create(ctx, validCreateRequest(
			ItemSpec{ProductID: 1, Quantity: 2, Price: decimal.NewFromInt(50)},
			ItemSpec{ProductID: 2, Quantity: 1, Price: decimal.NewFromInt(25)},
			ItemSpec{ProductID: 3, Quantity: 3, Price: decimal.NewFromInt(200)},
		))

		require.NoError(t, err)
		require.Len(t, result.Items, 3)
		assert.Equal(t, "Keyboard", result.Items[0].ProductName)
		assert.Equal(t, 2, result.Items[0].Quantity)
		assert.Equal(t, "Monitor", result.Items[2].ProductName)
		assert.Equal(t, 3, result.Items[2].Quantity)

		saved := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
		assert.Len(t, saved.Items, 3)
		orderRepo.AssertExpectations(t)
	})

	t.Run("one missing product aborts the whole create", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo)
		ctx := context.Background()

		productRepo.On("FindByID", ctx, uint(1)).Return(testProduct(1, "Keyboard"), nil)
		productRepo.On("FindByID", ctx, uint(99)).Return(nil, shared.ErrNotFound)

		result, err := service.Create(ctx, validCreateRequest(
			ItemSpec{ProductID: 1, Quantity: 2, Price: decimal.NewFromInt(50)},
			ItemSpec{ProductID: 99, Quantity: 1, Price: decimal.NewFromInt(25)},
		))

		assert.Nil(t, result)
		require.Error(t, err)
		assert.Equal(t, "Product 99 not found", err.Error())
		orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects an empty item set", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo)

		result, err := service.Create(context.Background(), validCreateRequest())

		assert.Nil(t, result)
		require.Error(t, err)
		assert.Equal(t, "Order must contain at least one item", err.Error())
		orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("invalid header fails before product resolution", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo)

		req := validCreateRequest(ItemSpec{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(10)})
		req.CustomerName = "J"

		result, err := service.Create(context.Background(), req)

		assert.Nil(t, result)
		assert.Error(t, err)
		productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestOrderService_Update(t *testing.T) {
	t.Run("fails before resolving products when order is missing", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo)
		ctx := context.Background()

		orderRepo.On("ExistsByID", ctx, uint(42)).Return(false, nil)

		result, err := service.Update(ctx, UpdateOrderRequest{
			ID:              42,
			OrderDate:       time.Now().Add(-time.Hour),
			CustomerName:    "Jane Doe",
			CustomerAddress: "1 Main Street, Springfield",
			Items:           []ItemSpec{{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(10)}},
		})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.Equal(t, "Order 42 not found.", err.Error())
		productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("replaces the item set on the stored order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo)
		ctx := context.Background()

		orderRepo.On("ExistsByID", ctx, uint(42)).Return(true, nil)
		productRepo.On("FindByID", ctx, uint(2)).Return(testProduct(2, "Mouse"), nil)
		orderRepo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

		result, err := service.Update(ctx, UpdateOrderRequest{
			ID:              42,
			OrderDate:       time.Now().Add(-time.Hour),
			CustomerName:    "John Doe",
			CustomerAddress: "2 Side Street, Springfield",
			Items:           []ItemSpec{{ProductID: 2, Quantity: 4, Price: decimal.NewFromInt(25)}},
		})

		require.NoError(t, err)
		assert.Equal(t, uint(42), result.ID)
		assert.Equal(t, "John Doe", result.CustomerName)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Mouse", result.Items[0].ProductName)

		saved := orderRepo.Calls[1].Arguments.Get(1).(*order.Order)
		assert.Equal(t, uint(42), saved.ID)
		orderRepo.AssertExpectations(t)
	})

	t.Run("missing product aborts the update with nothing saved", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo)
		ctx := context.Background()

		orderRepo.On("ExistsByID", ctx, uint(42)).Return(true, nil)
		productRepo.On("FindByID", ctx, uint(99)).Return(nil, shared.ErrNotFound)

		result, err := service.Update(ctx, UpdateOrderRequest{
			ID:              42,
			OrderDate:       time.Now().Add(-time.Hour),
			CustomerName:    "Jane Doe",
			CustomerAddress: "1 Main Street, Springfield",
			Items:           []ItemSpec{{ProductID: 99, Quantity: 1, Price: decimal.NewFromInt(10)}},
		})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.Equal(t, "Product 99 not found", err.Error())
		orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestOrderService_GetByID(t *testing.T) {
	t.Run("translates missing order to id-carrying error", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockProductRepository))
		ctx := context.Background()

		orderRepo.On("FindByID", ctx, uint(5)).Return(nil, shared.ErrNotFound)

		result, err := service.GetByID(ctx, 5)

		assert.Nil(t, result)
		require.Error(t, err)
		assert.Equal(t, "Order 5 not found.", err.Error())
	})
}

func TestOrderService_Delete(t *testing.T) {
	t.Run("deletes existing order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockProductRepository))
		ctx := context.Background()

		orderRepo.On("ExistsByID", ctx, uint(3)).Return(true, nil)
		orderRepo.On("Delete", ctx, uint(3)).Return(nil)

		assert.NoError(t, service.Delete(ctx, 3))
		orderRepo.AssertExpectations(t)
	})

	t.Run("fails for missing order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockProductRepository))
		ctx := context.Background()

		orderRepo.On("ExistsByID", ctx, uint(5)).Return(false, nil)

		err := service.Delete(ctx, 5)

		require.Error(t, err)
		assert.Equal(t, "Order 5 not found.", err.Error())
		orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
