package domain

import (
	"fmt"
	"net/url"
	"strings"

	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

// Product is the catalog entity orders snapshot their lines from. A product
// is sellable only while active with stock on hand.
type Product struct {
	id            string
	sku           string
	name          string
	description   string
	price         shared.Money
	stockQuantity int
	status        ProductStatus
	categoryID    string
	images        []string
}

func NewProduct(name, description string, price shared.Money, stockQuantity int) (*Product, error) {
	p := &Product{status: ProductDraft}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	p.SetDescription(description)
	p.SetPrice(price)
	if err := p.SetStockQuantity(stockQuantity); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) ID() string           { return p.id }
func (p *Product) SetID(id string)      { p.id = id }
func (p *Product) SKU() string          { return p.sku }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Price() shared.Money  { return p.price }
func (p *Product) StockQuantity() int   { return p.stockQuantity }
func (p *Product) Status() ProductStatus { return p.status }
func (p *Product) CategoryID() string   { return p.categoryID }
func (p *Product) Images() []string     { return p.images }

func (p *Product) SetSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return fmt.Errorf("%w: sku cannot be empty", shared.ErrInvalidValue)
	}
	p.sku = sku
	return nil
}

func (p *Product) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: product name cannot be empty", shared.ErrInvalidValue)
	}
	p.name = strings.TrimSpace(name)
	return nil
}

func (p *Product) SetDescription(description string) {
	p.description = strings.TrimSpace(description)
}

func (p *Product) SetPrice(price shared.Money) { p.price = price }

func (p *Product) SetStockQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: stock quantity cannot be negative", shared.ErrInvalidValue)
	}
	p.stockQuantity = quantity
	return nil
}

func (p *Product) SetStatus(status ProductStatus) { p.status = status }
func (p *Product) SetCategoryID(id string)        { p.categoryID = id }

func (p *Product) AddImage(imageURL string) error {
	u, err := url.ParseRequestURI(imageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: invalid image url", shared.ErrInvalidValue)
	}
	for _, existing := range p.images {
		if existing == imageURL {
			return nil
		}
	}
	p.images = append(p.images, imageURL)
	return nil
}

func (p *Product) RemoveImage(imageURL string) {
	kept := p.images[:0]
	for _, img := range p.images {
		if img != imageURL {
			kept = append(kept, img)
		}
	}
	p.images = kept
}

// RestoreImages replaces the image list during rehydration from storage.
func (p *Product) RestoreImages(images []string) { p.images = images }

func (p *Product) IsAvailable() bool {
	return p.status == ProductActive && p.stockQuantity > 0
}

func (p *Product) ReduceStock(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", shared.ErrInvalidValue)
	}
	if p.stockQuantity < quantity {
		return fmt.Errorf("%w: insufficient stock", shared.ErrInvalidValue)
	}
	p.stockQuantity -= quantity
	return nil
}

func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", shared.ErrInvalidValue)
	}
	p.stockQuantity += quantity
	return nil
}

func (p *Product) Publish() error {
	if p.sku == "" {
		return fmt.Errorf("%w: product must have a sku before publishing", shared.ErrInvalidValue)
	}
	p.status = ProductActive
	return nil
}

func (p *Product) Unpublish() { p.status = ProductDraft }
