package domain

import (
	"fmt"
	"strings"
	"time"

	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

// Order is the aggregate root for the ordering context. All mutation of its
// items and derived money fields goes through its methods; subtotal and total
// are recomputed inside every mutating operation so the aggregate is never
// observable in an inconsistent state.
type Order struct {
	id              string
	customerID      string
	orderNumber     string
	status          OrderStatus
	items           []*OrderItem
	subtotal        shared.Money
	shippingCost    shared.Money
	tax             shared.Money
	total           shared.Money
	shippingAddress *shared.Address
	billingAddress  *shared.Address
	notes           string
	createdAt       time.Time
	updatedAt       *time.Time
}

func NewOrder(customerID, orderNumber string) (*Order, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, fmt.Errorf("%w: customer id cannot be empty", shared.ErrInvalidValue)
	}
	if strings.TrimSpace(orderNumber) == "" {
		return nil, fmt.Errorf("%w: order number cannot be empty", shared.ErrInvalidValue)
	}
	zero := shared.ZeroMoney(shared.DefaultCurrency)
	return &Order{
		customerID:   customerID,
		orderNumber:  strings.TrimSpace(orderNumber),
		status:       StatusPending,
		subtotal:     zero,
		shippingCost: zero,
		tax:          zero,
		total:        zero,
		createdAt:    time.Now().UTC(),
	}, nil
}

func (o *Order) ID() string                       { return o.id }
func (o *Order) SetID(id string)                  { o.id = id }
func (o *Order) CustomerID() string               { return o.customerID }
func (o *Order) OrderNumber() string              { return o.orderNumber }
func (o *Order) Status() OrderStatus              { return o.status }
func (o *Order) Items() []*OrderItem              { return o.items }
func (o *Order) Subtotal() shared.Money           { return o.subtotal }
func (o *Order) ShippingCost() shared.Money       { return o.shippingCost }
func (o *Order) Tax() shared.Money                { return o.tax }
func (o *Order) Total() shared.Money              { return o.total }
func (o *Order) ShippingAddress() *shared.Address { return o.shippingAddress }
func (o *Order) BillingAddress() *shared.Address  { return o.billingAddress }
func (o *Order) Notes() string                    { return o.notes }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() *time.Time            { return o.updatedAt }

// SetStatus assigns the status without consulting the transition table. It
// exists for rehydration from storage; business transitions go through
// Confirm, Cancel and the MarkAs methods.
func (o *Order) SetStatus(status OrderStatus) { o.status = status }

func (o *Order) SetShippingAddress(addr *shared.Address) { o.shippingAddress = addr }
func (o *Order) SetBillingAddress(addr *shared.Address)  { o.billingAddress = addr }
func (o *Order) SetNotes(notes string)                   { o.notes = strings.TrimSpace(notes) }

// AddItem appends an item while the order is pending. If a line for the same
// product already exists its quantity is increased instead; the incoming
// item's identity is discarded in that case.
func (o *Order) AddItem(item *OrderItem) error {
	if o.status != StatusPending {
		return fmt.Errorf("%w: cannot add items to a %s order", shared.ErrInvalidValue, o.status)
	}
	for _, existing := range o.items {
		if existing.ProductID() == item.ProductID() {
			if err := existing.IncreaseQuantity(item.Quantity()); err != nil {
				return err
			}
			return o.recalculateTotals()
		}
	}
	o.items = append(o.items, item)
	return o.recalculateTotals()
}

// RemoveItem drops the matching line. A missing item id is a no-op, not an
// error.
func (o *Order) RemoveItem(itemID string) error {
	if o.status != StatusPending {
		return fmt.Errorf("%w: cannot remove items from a %s order", shared.ErrInvalidValue, o.status)
	}
	kept := o.items[:0]
	for _, item := range o.items {
		if item.ID() != itemID {
			kept = append(kept, item)
		}
	}
	o.items = kept
	return o.recalculateTotals()
}

func (o *Order) SetShippingCost(cost shared.Money) error {
	if cost.Amount().IsNegative() {
		return fmt.Errorf("%w: shipping cost cannot be negative", shared.ErrInvalidValue)
	}
	o.shippingCost = cost
	return o.recalculateTotals()
}

func (o *Order) SetTax(tax shared.Money) error {
	if tax.Amount().IsNegative() {
		return fmt.Errorf("%w: tax cannot be negative", shared.ErrInvalidValue)
	}
	o.tax = tax
	return o.recalculateTotals()
}

// Confirm requires a pending order with at least one item and a shipping
// address.
func (o *Order) Confirm() error {
	if !o.status.CanTransitionTo(StatusConfirmed) {
		return fmt.Errorf("%w: order cannot be confirmed from status %s", shared.ErrInvalidValue, o.status)
	}
	if len(o.items) == 0 {
		return fmt.Errorf("%w: cannot confirm order without items", shared.ErrInvalidValue)
	}
	if o.shippingAddress == nil {
		return fmt.Errorf("%w: shipping address is required to confirm order", shared.ErrInvalidValue)
	}
	o.transitionTo(StatusConfirmed)
	return nil
}

func (o *Order) Cancel() error {
	if !o.status.CanTransitionTo(StatusCancelled) {
		return fmt.Errorf("%w: order cannot be cancelled from status %s", shared.ErrInvalidValue, o.status)
	}
	o.transitionTo(StatusCancelled)
	return nil
}

func (o *Order) MarkAsProcessing() error {
	if !o.status.CanTransitionTo(StatusProcessing) {
		return fmt.Errorf("%w: order cannot be marked as processing from status %s", shared.ErrInvalidValue, o.status)
	}
	o.transitionTo(StatusProcessing)
	return nil
}

func (o *Order) MarkAsShipped() error {
	if !o.status.CanTransitionTo(StatusShipped) {
		return fmt.Errorf("%w: order cannot be marked as shipped from status %s", shared.ErrInvalidValue, o.status)
	}
	o.transitionTo(StatusShipped)
	return nil
}

func (o *Order) MarkAsDelivered() error {
	if !o.status.CanTransitionTo(StatusDelivered) {
		return fmt.Errorf("%w: order cannot be marked as delivered from status %s", shared.ErrInvalidValue, o.status)
	}
	o.transitionTo(StatusDelivered)
	return nil
}

// RestoreItems replaces the item collection wholesale, bypassing the
// pending-only guard. Only repositories rehydrating an aggregate from storage
// may call it.
func (o *Order) RestoreItems(items []*OrderItem) error {
	o.items = items
	return o.recalculateTotals()
}

// SetTimestamps restores persisted created/updated times during rehydration.
func (o *Order) SetTimestamps(createdAt time.Time, updatedAt *time.Time) {
	o.createdAt = createdAt
	o.updatedAt = updatedAt
}

func (o *Order) ItemCount() int { return len(o.items) }

func (o *Order) TotalQuantity() int {
	var total int
	for _, item := range o.items {
		total += item.Quantity()
	}
	return total
}

func (o *Order) transitionTo(status OrderStatus) {
	o.status = status
	now := time.Now().UTC()
	o.updatedAt = &now
}

func (o *Order) recalculateTotals() error {
	subtotal := shared.ZeroMoney(o.subtotal.Currency())
	var err error
	for _, item := range o.items {
		subtotal, err = subtotal.Add(item.TotalPrice())
		if err != nil {
			return err
		}
	}
	total, err := subtotal.Add(o.shippingCost)
	if err != nil {
		return err
	}
	total, err = total.Add(o.tax)
	if err != nil {
		return err
	}
	o.subtotal = subtotal
	o.total = total
	return nil
}
