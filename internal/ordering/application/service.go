package application

import (
	"context"
	"fmt"
	"log/slog"

	catalogdomain "github.com/Harish120/go-commerce/internal/catalog/domain"
	"github.com/Harish120/go-commerce/internal/ordering/domain"
	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

// Defaults applied during order assembly unless a later shipping/tax service
// overrides them.
const (
	defaultShippingCost = 10.00
	taxRate             = 0.10
)

type OrderLineInput struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	CustomerID      string
	Items           []OrderLineInput
	ShippingAddress *shared.Address
	BillingAddress  *shared.Address
	Notes           string
}

type Service struct {
	log     *slog.Logger
	orders  OrderRepository
	catalog ProductLookup
	ids     IDGenerator
	bus     EventPublisher
}

func NewService(log *slog.Logger, orders OrderRepository, catalog ProductLookup, ids IDGenerator, bus EventPublisher) *Service {
	return &Service{log: log, orders: orders, catalog: catalog, ids: ids, bus: bus}
}

// CreateOrder builds an order from the requested lines, snapshotting product
// name, sku and price into each item and reducing catalog stock as it goes.
// Stock reduction and the final save are not wrapped in one transaction: a
// failure partway leaves earlier reductions in place and persists no order.
// Closing that gap belongs to the persistence boundary, not this service.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	number, err := s.orders.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order, err := domain.NewOrder(in.CustomerID, number)
	if err != nil {
		return nil, err
	}
	order.SetID(s.ids.NewID())
	order.SetShippingAddress(in.ShippingAddress)
	order.SetBillingAddress(in.BillingAddress)
	order.SetNotes(in.Notes)

	for _, line := range in.Items {
		product, err := s.catalog.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: product with identifier %q", shared.ErrNotFound, line.ProductID)
		}
		if !product.IsAvailable() {
			return nil, fmt.Errorf("%w: product %q is not available", shared.ErrUnavailable, product.Name())
		}
		if product.StockQuantity() < line.Quantity {
			return nil, fmt.Errorf("%w: product %q", shared.ErrInsufficientStock, product.Name())
		}

		item, err := domain.NewOrderItem(product.ID(), product.Name(), product.SKU(), product.Price(), line.Quantity)
		if err != nil {
			return nil, err
		}
		item.SetID(s.ids.NewID())
		if err := order.AddItem(item); err != nil {
			return nil, err
		}

		if err := product.ReduceStock(line.Quantity); err != nil {
			return nil, err
		}
		if err := s.catalog.Save(ctx, product); err != nil {
			return nil, err
		}
		s.bus.Publish(ctx, catalogdomain.ProductStockReduced{
			ProductID: product.ID(),
			Quantity:  line.Quantity,
			Remaining: product.StockQuantity(),
		})
	}

	shipping, err := shared.NewMoneyFromFloat(defaultShippingCost, shared.DefaultCurrency)
	if err != nil {
		return nil, err
	}
	if err := order.SetShippingCost(shipping); err != nil {
		return nil, err
	}
	tax, err := order.Subtotal().Multiply(taxRate)
	if err != nil {
		return nil, err
	}
	if err := order.SetTax(tax); err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("order created",
		"order_id", order.ID(),
		"order_number", order.OrderNumber(),
		"customer_id", order.CustomerID(),
		"total", order.Total().String(),
	)
	s.bus.Publish(ctx, domain.OrderCreated{
		OrderID:     order.ID(),
		OrderNumber: order.OrderNumber(),
		CustomerID:  order.CustomerID(),
		Total:       order.Total(),
		ItemCount:   order.ItemCount(),
	})
	return order, nil
}

func (s *Service) ConfirmOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Confirm(); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	s.log.Info("order confirmed", "order_id", order.ID(), "order_number", order.OrderNumber())
	s.bus.Publish(ctx, domain.OrderConfirmed{
		OrderID:     order.ID(),
		OrderNumber: order.OrderNumber(),
		CustomerID:  order.CustomerID(),
	})
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.loadOrder(ctx, orderID)
}

func (s *Service) ListCustomerOrders(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return s.orders.FindByCustomerID(ctx, customerID)
}

func (s *Service) loadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order with identifier %q", shared.ErrNotFound, orderID)
	}
	return order, nil
}
