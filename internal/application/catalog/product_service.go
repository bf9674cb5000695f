package catalog

import (
	"context"
	"errors"

	"github.com/agile/ecommerce-backend/internal/domain/catalog"
	"github.com/agile/ecommerce-backend/internal/domain/shared"
)

// ProductService handles catalog operations: plain CRUD over products with
// existence checks before update and delete.
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create persists a new product and returns it with its assigned identity
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.Description, req.Price, req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uint) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, catalog.NewProductNotFound(id)
		}
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves a page of products
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
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

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// Update overwrites all fields of an existing product. It fails with a
// not-found error when the payload carries no identity or the identity does
// not correspond to an existing record.
func (s *ProductService) Update(ctx context.Context, req UpdateProductRequest) (*ProductResponse, error) {
	if req.ID == 0 {
		return nil, catalog.NewProductNotFound(0)
	}

	product, err := s.productRepo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, catalog.NewProductNotFound(req.ID)
		}
		return nil, err
	}

	if err := product.Update(req.Name, req.Description, req.Price, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product unconditionally if it exists. No check is made
// for order items that still reference it.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	exists, err := s.productRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return catalog.NewProductNotFound(id)
	}

	return s.productRepo.Delete(ctx, id)
}
