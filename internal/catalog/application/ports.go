package application

import (
	"context"

	"github.com/Harish120/go-commerce/internal/catalog/domain"
	"github.com/Harish120/go-commerce/pkg/events"
)

// ProductRepository is the persistence port for catalog products. Find
// methods return (nil, nil) when nothing matches.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindBySKU(ctx context.Context, sku string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindActive(ctx context.Context) ([]*domain.Product, error)
	Save(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, product *domain.Product) error
}

type IDGenerator interface {
	NewID() string
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}
