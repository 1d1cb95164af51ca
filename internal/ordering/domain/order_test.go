package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	order, err := NewOrder("cust-1", "ORD-TEST0001")
	require.NoError(t, err)
	return order
}

func newTestItem(t *testing.T, productID string, price float64, quantity int) *OrderItem {
	t.Helper()
	item, err := NewOrderItem(productID, "Product "+productID, "SKU-"+productID, usd(t, price), quantity)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	order := newTestOrder(t)
	assert.Equal(t, StatusPending, order.Status())
	assert.Equal(t, "USD 0.00", order.Subtotal().String())
	assert.Equal(t, "USD 0.00", order.Total().String())
	assert.Zero(t, order.ItemCount())
	assert.Nil(t, order.UpdatedAt())

	_, err := NewOrder("", "ORD-TEST0001")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)

	_, err = NewOrder("cust-1", "  ")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)
}

func TestAddItemRecalculatesTotals(t *testing.T) {
	order := newTestOrder(t)

	require.NoError(t, order.AddItem(newTestItem(t, "p1", 10, 2)))
	require.NoError(t, order.AddItem(newTestItem(t, "p2", 5.50, 1)))

	assert.Equal(t, 2, order.ItemCount())
	assert.Equal(t, "USD 25.50", order.Subtotal().String())
	assert.Equal(t, "USD 25.50", order.Total().String())
}

func TestAddItemMergesSameProduct(t *testing.T) {
	order := newTestOrder(t)

	require.NoError(t, order.AddItem(newTestItem(t, "p1", 10, 2)))
	require.NoError(t, order.AddItem(newTestItem(t, "p1", 10, 3)))

	require.Equal(t, 1, order.ItemCount())
	assert.Equal(t, 5, order.Items()[0].Quantity())
	assert.Equal(t, "USD 50.00", order.Subtotal().String())
}

func TestTotalIsSubtotalPlusShippingPlusTax(t *testing.T) {
	order := newTestOrder(t)
	require.NoError(t, order.AddItem(newTestItem(t, "p1", 10, 2)))

	require.NoError(t, order.SetShippingCost(usd(t, 10)))
	require.NoError(t, order.SetTax(usd(t, 2)))

	assert.Equal(t, "USD 20.00", order.Subtotal().String())
	assert.Equal(t, "USD 32.00", order.Total().String())

	// the invariant holds after further item mutation too
	require.NoError(t, order.AddItem(newTestItem(t, "p2", 7, 1)))
	assert.Equal(t, "USD 27.00", order.Subtotal().String())
	assert.Equal(t, "USD 39.00", order.Total().String())
}

func TestRemoveItem(t *testing.T) {
	order := newTestOrder(t)
	first := newTestItem(t, "p1", 10, 1)
	first.SetID("item-1")
	second := newTestItem(t, "p2", 20, 1)
	second.SetID("item-2")
	require.NoError(t, order.AddItem(first))
	require.NoError(t, order.AddItem(second))

	require.NoError(t, order.RemoveItem("item-1"))
	assert.Equal(t, 1, order.ItemCount())
	assert.Equal(t, "USD 20.00", order.Subtotal().String())

	// unknown id is a no-op
	require.NoError(t, order.RemoveItem("missing"))
	assert.Equal(t, 1, order.ItemCount())
}

func TestItemMutationLockedAfterConfirm(t *testing.T) {
	order := newTestOrder(t)
	item := newTestItem(t, "p1", 10, 1)
	item.SetID("item-1")
	require.NoError(t, order.AddItem(item))
	order.SetShippingAddress(&shared.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US"})
	require.NoError(t, order.Confirm())

	err := order.AddItem(newTestItem(t, "p2", 5, 1))
	assert.ErrorIs(t, err, shared.ErrInvalidValue)

	err = order.RemoveItem("item-1")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)
	assert.Equal(t, 1, order.ItemCount())
	assert.Equal(t, "USD 10.00", order.Subtotal().String())
}

func TestConfirmGuards(t *testing.T) {
	order := newTestOrder(t)

	// no items yet
	assert.ErrorIs(t, order.Confirm(), shared.ErrInvalidValue)

	require.NoError(t, order.AddItem(newTestItem(t, "p1", 10, 1)))

	// no shipping address yet
	assert.ErrorIs(t, order.Confirm(), shared.ErrInvalidValue)

	order.SetShippingAddress(&shared.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US"})
	require.NoError(t, order.Confirm())
	assert.Equal(t, StatusConfirmed, order.Status())
	assert.NotNil(t, order.UpdatedAt())

	// confirming twice is invalid
	assert.ErrorIs(t, order.Confirm(), shared.ErrInvalidValue)
}

func TestLifecycleTransitions(t *testing.T) {
	order := newTestOrder(t)
	require.NoError(t, order.AddItem(newTestItem(t, "p1", 10, 1)))
	order.SetShippingAddress(&shared.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US"})

	require.NoError(t, order.Confirm())
	require.NoError(t, order.MarkAsProcessing())
	require.NoError(t, order.MarkAsShipped())

	// shipped orders cannot be cancelled
	assert.ErrorIs(t, order.Cancel(), shared.ErrInvalidValue)

	require.NoError(t, order.MarkAsDelivered())
	assert.Equal(t, StatusDelivered, order.Status())

	// delivered is terminal
	assert.ErrorIs(t, order.MarkAsProcessing(), shared.ErrInvalidValue)
	assert.ErrorIs(t, order.Cancel(), shared.ErrInvalidValue)
}

func TestCancelFromProcessing(t *testing.T) {
	order := newTestOrder(t)
	require.NoError(t, order.AddItem(newTestItem(t, "p1", 10, 1)))
	order.SetShippingAddress(&shared.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US"})
	require.NoError(t, order.Confirm())
	require.NoError(t, order.MarkAsProcessing())

	require.NoError(t, order.Cancel())
	assert.Equal(t, StatusCancelled, order.Status())
	assert.ErrorIs(t, order.Confirm(), shared.ErrInvalidValue)
}

func TestSkippingStatesRejected(t *testing.T) {
	order := newTestOrder(t)
	require.NoError(t, order.AddItem(newTestItem(t, "p1", 10, 1)))

	assert.ErrorIs(t, order.MarkAsShipped(), shared.ErrInvalidValue)
	assert.ErrorIs(t, order.MarkAsDelivered(), shared.ErrInvalidValue)
	assert.Equal(t, StatusPending, order.Status())
}

func TestRestoreItemsMatchesAddItemTotals(t *testing.T) {
	built := newTestOrder(t)
	require.NoError(t, built.AddItem(newTestItem(t, "p1", 10, 2)))
	require.NoError(t, built.AddItem(newTestItem(t, "p2", 5, 3)))
	require.NoError(t, built.SetShippingCost(usd(t, 10)))
	require.NoError(t, built.SetTax(usd(t, 3.50)))

	restored := newTestOrder(t)
	restored.SetStatus(StatusShipped)
	require.NoError(t, restored.SetShippingCost(usd(t, 10)))
	require.NoError(t, restored.SetTax(usd(t, 3.50)))
	require.NoError(t, restored.RestoreItems([]*OrderItem{
		newTestItem(t, "p1", 10, 2),
		newTestItem(t, "p2", 5, 3),
	}))

	// restore bypasses the pending-only guard but derives the same totals
	assert.Equal(t, StatusShipped, restored.Status())
	assert.True(t, restored.Subtotal().Equals(built.Subtotal()))
	assert.True(t, restored.Total().Equals(built.Total()))
}
