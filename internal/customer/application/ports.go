package application

import (
	"context"

	"github.com/Harish120/go-commerce/internal/customer/domain"
	"github.com/Harish120/go-commerce/pkg/events"
)

type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Save(ctx context.Context, customer *domain.Customer) error
}

type IDGenerator interface {
	NewID() string
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}
