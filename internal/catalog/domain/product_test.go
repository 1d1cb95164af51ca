package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

func newTestProduct(t *testing.T, stock int) *Product {
	t.Helper()
	price, err := shared.NewMoneyFromFloat(19.99, "USD")
	require.NoError(t, err)
	product, err := NewProduct("Wireless Mouse", "A mouse without a tail", price, stock)
	require.NoError(t, err)
	return product
}

func TestNewProduct(t *testing.T) {
	product := newTestProduct(t, 5)
	assert.Equal(t, ProductDraft, product.Status())
	assert.Equal(t, 5, product.StockQuantity())

	price, _ := shared.NewMoneyFromFloat(1, "USD")
	_, err := NewProduct("", "", price, 1)
	assert.ErrorIs(t, err, shared.ErrInvalidValue)

	_, err = NewProduct("Mouse", "", price, -1)
	assert.ErrorIs(t, err, shared.ErrInvalidValue)
}

func TestProductAvailability(t *testing.T) {
	product := newTestProduct(t, 1)

	// drafts are never sellable
	assert.False(t, product.IsAvailable())

	require.NoError(t, product.SetSKU("WM-1"))
	require.NoError(t, product.Publish())
	assert.True(t, product.IsAvailable())

	require.NoError(t, product.ReduceStock(1))
	assert.False(t, product.IsAvailable())

	product.Unpublish()
	require.NoError(t, product.IncreaseStock(3))
	assert.False(t, product.IsAvailable())
}

func TestPublishRequiresSKU(t *testing.T) {
	product := newTestProduct(t, 1)
	assert.ErrorIs(t, product.Publish(), shared.ErrInvalidValue)

	require.NoError(t, product.SetSKU("WM-1"))
	assert.NoError(t, product.Publish())
}

func TestStockChanges(t *testing.T) {
	product := newTestProduct(t, 5)

	require.NoError(t, product.ReduceStock(3))
	assert.Equal(t, 2, product.StockQuantity())

	assert.ErrorIs(t, product.ReduceStock(3), shared.ErrInvalidValue)
	assert.Equal(t, 2, product.StockQuantity())

	assert.ErrorIs(t, product.ReduceStock(0), shared.ErrInvalidValue)
	assert.ErrorIs(t, product.IncreaseStock(-1), shared.ErrInvalidValue)

	require.NoError(t, product.IncreaseStock(10))
	assert.Equal(t, 12, product.StockQuantity())
}

func TestProductImages(t *testing.T) {
	product := newTestProduct(t, 1)

	require.NoError(t, product.AddImage("https://cdn.example.com/mouse.png"))
	require.NoError(t, product.AddImage("https://cdn.example.com/mouse-side.png"))

	// duplicates are ignored
	require.NoError(t, product.AddImage("https://cdn.example.com/mouse.png"))
	assert.Len(t, product.Images(), 2)

	assert.ErrorIs(t, product.AddImage("not a url"), shared.ErrInvalidValue)
	assert.ErrorIs(t, product.AddImage("/relative/path.png"), shared.ErrInvalidValue)

	product.RemoveImage("https://cdn.example.com/mouse.png")
	assert.Equal(t, []string{"https://cdn.example.com/mouse-side.png"}, product.Images())
}
