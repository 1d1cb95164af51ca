package domain

import (
	"fmt"

	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

type ProductStatus string

const (
	ProductDraft    ProductStatus = "draft"
	ProductActive   ProductStatus = "active"
	ProductArchived ProductStatus = "archived"
)

func (s ProductStatus) String() string { return string(s) }

func ParseProductStatus(raw string) (ProductStatus, error) {
	switch ProductStatus(raw) {
	case ProductDraft, ProductActive, ProductArchived:
		return ProductStatus(raw), nil
	default:
		return "", fmt.Errorf("%w: invalid product status %q", shared.ErrInvalidValue, raw)
	}
}
