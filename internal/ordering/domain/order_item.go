package domain

import (
	"fmt"
	"strings"

	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

// OrderItem is a quantity of one product at the unit price captured when the
// item was added. Product name, SKU and price are snapshots and do not track
// later catalog changes. The total is re-derived on every mutation.
type OrderItem struct {
	id          string
	productID   string
	productName string
	productSKU  string
	unitPrice   shared.Money
	quantity    int
	totalPrice  shared.Money
}

func NewOrderItem(productID, productName, productSKU string, unitPrice shared.Money, quantity int) (*OrderItem, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("%w: product id cannot be empty", shared.ErrInvalidValue)
	}
	if strings.TrimSpace(productName) == "" {
		return nil, fmt.Errorf("%w: product name cannot be empty", shared.ErrInvalidValue)
	}
	if strings.TrimSpace(productSKU) == "" {
		return nil, fmt.Errorf("%w: product sku cannot be empty", shared.ErrInvalidValue)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than zero", shared.ErrInvalidValue)
	}
	item := &OrderItem{
		productID:   productID,
		productName: strings.TrimSpace(productName),
		productSKU:  strings.TrimSpace(productSKU),
		unitPrice:   unitPrice,
		quantity:    quantity,
	}
	item.recalculateTotal()
	return item, nil
}

func (i *OrderItem) ID() string               { return i.id }
func (i *OrderItem) SetID(id string)          { i.id = id }
func (i *OrderItem) ProductID() string        { return i.productID }
func (i *OrderItem) ProductName() string      { return i.productName }
func (i *OrderItem) ProductSKU() string       { return i.productSKU }
func (i *OrderItem) UnitPrice() shared.Money  { return i.unitPrice }
func (i *OrderItem) Quantity() int            { return i.quantity }
func (i *OrderItem) TotalPrice() shared.Money { return i.totalPrice }

func (i *OrderItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", shared.ErrInvalidValue)
	}
	i.quantity = quantity
	i.recalculateTotal()
	return nil
}

func (i *OrderItem) IncreaseQuantity(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", shared.ErrInvalidValue)
	}
	return i.SetQuantity(i.quantity + amount)
}

// DecreaseQuantity rejects reaching zero; removing a line entirely goes
// through Order.RemoveItem.
func (i *OrderItem) DecreaseQuantity(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", shared.ErrInvalidValue)
	}
	if i.quantity <= amount {
		return fmt.Errorf("%w: cannot decrease quantity below zero", shared.ErrInvalidValue)
	}
	return i.SetQuantity(i.quantity - amount)
}

func (i *OrderItem) SetUnitPrice(price shared.Money) {
	i.unitPrice = price
	i.recalculateTotal()
}

func (i *OrderItem) recalculateTotal() {
	i.totalPrice = i.unitPrice.Times(i.quantity)
}
