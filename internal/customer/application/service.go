package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Harish120/go-commerce/internal/customer/domain"
	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

type CustomerInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

type Service struct {
	log       *slog.Logger
	customers CustomerRepository
	ids       IDGenerator
	bus       EventPublisher
}

func NewService(log *slog.Logger, customers CustomerRepository, ids IDGenerator, bus EventPublisher) *Service {
	return &Service{log: log, customers: customers, ids: ids, bus: bus}
}

func (s *Service) CreateCustomer(ctx context.Context, in CustomerInput) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(in.Email, in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}
	if in.Phone != "" {
		customer.SetPhone(in.Phone)
	}

	existing, err := s.customers.FindByEmail(ctx, customer.Email())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: customer with email %q already exists", shared.ErrInvalidValue, customer.Email())
	}

	customer.SetID(s.ids.NewID())
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	s.log.Info("customer created", "customer_id", customer.ID(), "email", customer.Email())
	s.bus.Publish(ctx, domain.CustomerCreated{CustomerID: customer.ID(), Email: customer.Email()})
	return customer, nil
}

func (s *Service) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer with identifier %q", shared.ErrNotFound, id)
	}
	return customer, nil
}
