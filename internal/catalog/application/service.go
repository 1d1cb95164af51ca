package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/Harish120/go-commerce/internal/catalog/domain"
	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

type ProductInput struct {
	SKU           string
	Name          string
	Description   string
	Price         float64
	Currency      string
	StockQuantity int
	CategoryID    string
}

type Service struct {
	log      *slog.Logger
	products ProductRepository
	ids      IDGenerator
	bus      EventPublisher
}

func NewService(log *slog.Logger, products ProductRepository, ids IDGenerator, bus EventPublisher) *Service {
	return &Service{log: log, products: products, ids: ids, bus: bus}
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	price, err := s.priceOf(in)
	if err != nil {
		return nil, err
	}
	product, err := domain.NewProduct(in.Name, in.Description, price, in.StockQuantity)
	if err != nil {
		return nil, err
	}

	sku := in.SKU
	if sku == "" {
		sku = generateSKU(in.Name)
	}
	if err := product.SetSKU(sku); err != nil {
		return nil, err
	}
	if in.CategoryID != "" {
		product.SetCategoryID(in.CategoryID)
	}
	product.SetID(s.ids.NewID())

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	s.log.Info("product created", "product_id", product.ID(), "sku", product.SKU())
	s.bus.Publish(ctx, domain.ProductCreated{ProductID: product.ID(), SKU: product.SKU(), Name: product.Name()})
	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.loadProduct(ctx, id)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (*domain.Product, error) {
	product, err := s.loadProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.SetName(in.Name); err != nil {
		return nil, err
	}
	product.SetDescription(in.Description)
	price, err := s.priceOf(in)
	if err != nil {
		return nil, err
	}
	product.SetPrice(price)
	if err := product.SetStockQuantity(in.StockQuantity); err != nil {
		return nil, err
	}
	if in.SKU != "" {
		if err := product.SetSKU(in.SKU); err != nil {
			return nil, err
		}
	}
	if in.CategoryID != "" {
		product.SetCategoryID(in.CategoryID)
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Service) PublishProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.loadProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.Publish(); err != nil {
		return nil, err
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	s.log.Info("product published", "product_id", product.ID(), "sku", product.SKU())
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *Service) ListActiveProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.FindActive(ctx)
}

func (s *Service) loadProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product with identifier %q", shared.ErrNotFound, id)
	}
	return product, nil
}

func (s *Service) priceOf(in ProductInput) (shared.Money, error) {
	currency := in.Currency
	if currency == "" {
		currency = shared.DefaultCurrency
	}
	return shared.NewMoneyFromFloat(in.Price, currency)
}

const skuAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateSKU derives a base from the product name plus a random suffix,
// e.g. "Wireless Mouse" -> "WIRELESSMO-X4T9".
func generateSKU(name string) string {
	var base strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			base.WriteRune(r)
		}
		if base.Len() == 10 {
			break
		}
	}
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = skuAlphabet[rand.IntN(len(skuAlphabet))]
	}
	return base.String() + "-" + string(suffix)
}
