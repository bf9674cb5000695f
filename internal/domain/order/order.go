package order

import (
	"time"

	"github.com/agile/ecommerce-backend/internal/domain/catalog"
	"github.com/agile/ecommerce-backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Order is the aggregate root for a customer order. It exclusively owns its
// line items: items are created and destroyed through the order's write path
// and never outlive it.
type Order struct {
	shared.BaseEntity
	OrderDate       time.Time   `gorm:"not null" json:"order_date"`
	CustomerName    string      `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerAddress string      `gorm:"type:varchar(255);not null" json:"customer_address"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line item owned by an Order. It references a product by id;
// the product name and unit price are denormalized at resolution time so the
// line keeps the price actually charged.
type OrderItem struct {
	shared.BaseEntity
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductID   uint            `gorm:"not null;index" json:"product_id"`
	ProductName string          `gorm:"type:varchar(100);not null" json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrder creates a new order without items. Items are attached with
// AddItem once their products have been resolved.
func NewOrder(orderDate time.Time, customerName, customerAddress string) (*Order, error) {
	if orderDate.After(time.Now()) {
		return nil, shared.NewDomainError("INVALID_ORDER_DATE", "Order date cannot be in the future")
	}
	if len(customerName) < 2 || len(customerName) > 100 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name must be between 2 and 100 characters")
	}
	if len(customerAddress) < 5 || len(customerAddress) > 255 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_ADDRESS", "Customer address must be between 5 and 255 characters")
	}

	now := time.Now()
	return &Order{
		BaseEntity: shared.BaseEntity{
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderDate:       orderDate,
		CustomerName:    customerName,
		CustomerAddress: customerAddress,
		Items:           []OrderItem{},
	}, nil
}

// AddItem appends a line item built from a resolved product. The caller is
// responsible for having looked the product up; the aggregate only records
// the reference, the denormalized name, and the price charged.
func (o *Order) AddItem(product *catalog.Product, quantity int, price decimal.Decimal) (*OrderItem, error) {
	item, err := NewOrderItem(o.ID, product, quantity, price)
	if err != nil {
		return nil, err
	}
	o.Items = append(o.Items, *item)
	o.UpdatedAt = time.Now()
	return &o.Items[len(o.Items)-1], nil
}

// ReplaceItems swaps the full item set. Used by the update path: the stored
// set is diffed against this one inside the persistence transaction.
func (o *Order) ReplaceItems(items []OrderItem) {
	for i := range items {
		items[i].OrderID = o.ID
	}
	o.Items = items
	o.UpdatedAt = time.Now()
}

// NewOrderItem creates a line item from a resolved product
func NewOrderItem(orderID uint, product *catalog.Product, quantity int, price decimal.Decimal) (*OrderItem, error) {
	if product == nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product must be resolved before attaching an item")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if !price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be greater than 0")
	}

	now := time.Now()
	return &OrderItem{
		BaseEntity: shared.BaseEntity{
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:     orderID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		Price:       price,
	}, nil
}

// NewOrderNotFound reports that no order with the given id exists
func NewOrderNotFound(id uint) error {
	return shared.NewNotFoundError("Order", id, ".")
}

// NewOrderItemNotFound reports that no order item with the given id exists
func NewOrderItemNotFound(id uint) error {
	return shared.NewNotFoundError("OrderItem", id, ".")
}
