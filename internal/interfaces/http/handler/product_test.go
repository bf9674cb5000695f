package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	catalogapp "github.com/agile/ecommerce-backend/internal/application/catalog"
	"github.com/agile/ecommerce-backend/internal/domain/catalog"
	"github.com/agile/ecommerce-backend/internal/domain/shared"
	"github.com/agile/ecommerce-backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// mockProductRepo backs the real service in handler tests
type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uint) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func setupProductRouter(repo *mockProductRepo) *gin.Engine {
	engine := gin.New()
	h := NewProductHandler(catalogapp.NewProductService(repo))
	api := engine.Group("/api/v1")
	h.RegisterRoutes(api)
	return engine
}

func TestProductHandler_GetByID(t *testing.T) {
	t.Run("returns product", func(t *testing.T) {
		repo := new(mockProductRepo)
		product, _ := catalog.NewProduct("Laptop", "A fast developer laptop", decimal.NewFromInt(999), 5)
		product.ID = 1
		repo.On("FindByID", mock.Anything, uint(1)).Return(product, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/1", nil)
		setupProductRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body catalogapp.ProductResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, uint(1), body.ID)
		assert.Equal(t, "Laptop", body.Name)
	})

	t.Run("returns 404 with contract error body", func(t *testing.T) {
		repo := new(mockProductRepo)
		repo.On("FindByID", mock.Anything, uint(999)).Return(nil, shared.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/999", nil)
		setupProductRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Product 999 not found"}`, w.Body.String())
	})
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("creates product", func(t *testing.T) {
		repo := new(mockProductRepo)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		payload := `{"name":"Laptop","description":"A fast developer laptop","price":999.99,"quantity":5}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		setupProductRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid payload with field map", func(t *testing.T) {
		repo := new(mockProductRepo)

		payload := `{"name":"","description":"short","price":10,"quantity":1}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		setupProductRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var fields map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
		assert.Equal(t, "Name cannot be blank", fields["name"])
		assert.Equal(t, "Description must be between 10 and 500 characters", fields["description"])
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects missing price", func(t *testing.T) {
		repo := new(mockProductRepo)

		payload := `{"name":"Laptop","description":"A fast developer laptop","quantity":5}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		setupProductRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var fields map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
		assert.Equal(t, "Price cannot be null", fields["price"])
	})
}

func TestProductHandler_Update(t *testing.T) {
	t.Run("returns 404 when payload has no identity", func(t *testing.T) {
		repo := new(mockProductRepo)

		payload := `{"name":"Laptop","description":"A fast developer laptop","price":999.99,"quantity":5}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/products", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		setupProductRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Product 0 not found"}`, w.Body.String())
	})
}

func TestProductHandler_Delete(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("ExistsByID", mock.Anything, uint(1)).Return(true, nil)
	repo.On("Delete", mock.Anything, uint(1)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/1", nil)
	setupProductRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestProductHandler_List(t *testing.T) {
	t.Run("ignores paging parameters", func(t *testing.T) {
		repo := new(mockProductRepo)
		pinned := shared.Filter{Page: 1, PageSize: 10}
		repo.On("FindAll", mock.Anything, pinned).Return([]catalog.Product{}, nil)
		repo.On("Count", mock.Anything, pinned).Return(int64(0), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products?page=5&page_size=100", nil)
		setupProductRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})
}
