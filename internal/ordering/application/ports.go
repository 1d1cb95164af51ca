package application

import (
	"context"

	catalogdomain "github.com/Harish120/go-commerce/internal/catalog/domain"
	"github.com/Harish120/go-commerce/internal/ordering/domain"
	"github.com/Harish120/go-commerce/pkg/events"
)

// OrderRepository is the persistence port for the order aggregate. Find
// methods return (nil, nil) when nothing matches.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByOrderNumber(ctx context.Context, number string) (*domain.Order, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, order *domain.Order) error
	GenerateOrderNumber(ctx context.Context) (string, error)
}

// ProductLookup resolves and updates catalog products during order assembly.
// Satisfied in-process by the catalog repository.
type ProductLookup interface {
	FindByID(ctx context.Context, id string) (*catalogdomain.Product, error)
	Save(ctx context.Context, product *catalogdomain.Product) error
}

// IDGenerator supplies identifiers for new aggregates; the domain never
// generates its own.
type IDGenerator interface {
	NewID() string
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}
