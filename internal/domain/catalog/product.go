package catalog

import (
	"time"

	"github.com/agile/ecommerce-backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a catalog product. It is its own aggregate root:
// order items reference products by id but never own them.
type Product struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Description string          `gorm:"type:varchar(500);not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string, price decimal.Decimal, quantity int) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be non-negative")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be non-negative")
	}

	now := time.Now()
	return &Product{
		BaseEntity: shared.BaseEntity{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}, nil
}

// Update overwrites all mutable fields of the product
func (p *Product) Update(name, description string, price decimal.Decimal, quantity int) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price must be non-negative")
	}
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be non-negative")
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Quantity = quantity
	p.UpdatedAt = time.Now()

	return nil
}

func validateName(name string) error {
	if len(name) < 2 || len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name must be between 2 and 100 characters")
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) < 10 || len(description) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description must be between 10 and 500 characters")
	}
	return nil
}

// NewProductNotFound reports that no product with the given id exists
func NewProductNotFound(id uint) error {
	return shared.NewNotFoundError("Product", id, "")
}
