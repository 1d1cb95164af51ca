package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/Harish120/go-commerce/internal/catalog/domain"
	"github.com/Harish120/go-commerce/internal/ordering/application"
	"github.com/Harish120/go-commerce/internal/ordering/domain"
	shared "github.com/Harish120/go-commerce/internal/shared/domain"
	"github.com/Harish120/go-commerce/pkg/events"
)

type memOrderRepo struct {
	orders map[string]*domain.Order
	seq    int
}

func (r *memOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	return r.orders[id], nil
}

func (r *memOrderRepo) FindByOrderNumber(_ context.Context, number string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.OrderNumber() == number {
			return o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) FindByCustomerID(_ context.Context, customerID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if o.CustomerID() == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) Save(_ context.Context, order *domain.Order) error {
	r.orders[order.ID()] = order
	return nil
}

func (r *memOrderRepo) Delete(_ context.Context, order *domain.Order) error {
	delete(r.orders, order.ID())
	return nil
}

func (r *memOrderRepo) GenerateOrderNumber(_ context.Context) (string, error) {
	r.seq++
	return fmt.Sprintf("ORD-%08d", r.seq), nil
}

type memCatalog struct {
	products map[string]*catalogdomain.Product
}

func (c *memCatalog) FindByID(_ context.Context, id string) (*catalogdomain.Product, error) {
	return c.products[id], nil
}

func (c *memCatalog) Save(_ context.Context, product *catalogdomain.Product) error {
	c.products[product.ID()] = product
	return nil
}

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type nopBus struct{}

func (nopBus) Publish(context.Context, events.Event) {}

func newTestRouter(t *testing.T) (chi.Router, *memCatalog) {
	t.Helper()
	repo := &memOrderRepo{orders: map[string]*domain.Order{}}
	catalog := &memCatalog{products: map[string]*catalogdomain.Product{}}

	price, err := shared.NewMoneyFromFloat(10, "USD")
	require.NoError(t, err)
	product, err := catalogdomain.NewProduct("Keyboard", "", price, 5)
	require.NoError(t, err)
	product.SetID("p1")
	require.NoError(t, product.SetSKU("KB-100"))
	require.NoError(t, product.Publish())
	catalog.products["p1"] = product

	svc := application.NewService(slog.New(slog.DiscardHandler), repo, catalog, &seqIDs{}, nopBus{})
	r := chi.NewRouter()
	NewHandler(slog.New(slog.DiscardHandler), svc).Register(r)
	return r, catalog
}

const createOrderBody = `{
	"customer_id": "cust-1",
	"items": [{"product_id": "p1", "quantity": 2}],
	"shipping_address": {"street": "1 Main St", "city": "Springfield", "state": "IL", "zip_code": "62701", "country": "US"}
}`

func TestCreateOrderEndpoint(t *testing.T) {
	router, catalog := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(createOrderBody)))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"order_number":"ORD-`)
	assert.Contains(t, body, `"status":"pending"`)
	assert.Contains(t, body, `"amount":32`)
	assert.Equal(t, 3, catalog.products["p1"].StockQuantity())
}

func TestCreateOrderEndpointValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"customer_id": "cust-1", "items": []}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderEndpointDomainErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	// unknown product
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders",
		strings.NewReader(`{"customer_id": "cust-1", "items": [{"product_id": "missing", "quantity": 1}]}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// more than the 5 in stock
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders",
		strings.NewReader(`{"customer_id": "cust-1", "items": [{"product_id": "p1", "quantity": 6}]}`)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetAndConfirmOrderEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(createOrderBody)))
	require.Equal(t, http.StatusCreated, rec.Code)

	// ids come from the sequential generator; the order itself is id-1
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/id-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders/id-1/confirm", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
