package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Harish120/go-commerce/internal/catalog/domain"
	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

// Repository persists catalog products. It also serves as the ordering
// context's ProductLookup port.
type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

const productColumns = `id, sku, name, description,
	price_amount::text, price_currency, stock_quantity, status, category_id, images`

func (r *Repository) Save(ctx context.Context, p *domain.Product) error {
	images, err := json.Marshal(p.Images())
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO products (
			id, sku, name, description, price_amount, price_currency,
			stock_quantity, status, category_id, images, updated_at
		) VALUES ($1,$2,$3,$4,$5::numeric,$6,$7,$8,$9,$10::jsonb,now())
		ON CONFLICT (id) DO UPDATE SET
			sku=$2, name=$3, description=$4,
			price_amount=$5::numeric, price_currency=$6,
			stock_quantity=$7, status=$8, category_id=$9, images=$10::jsonb,
			updated_at=now()`,
		p.ID(), nullString(p.SKU()), p.Name(), p.Description(),
		p.Price().Amount().StringFixed(2), p.Price().Currency(),
		p.StockQuantity(), p.Status().String(), nullString(p.CategoryID()), string(images),
	)
	return err
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id)
}

func (r *Repository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE sku=$1`, sku)
}

func (r *Repository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	return r.findMany(ctx, `SELECT `+productColumns+` FROM products ORDER BY name`)
}

func (r *Repository) FindActive(ctx context.Context) ([]*domain.Product, error) {
	return r.findMany(ctx, `SELECT `+productColumns+` FROM products WHERE status='active' ORDER BY name`)
}

func (r *Repository) Delete(ctx context.Context, p *domain.Product) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, p.ID())
	return err
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *Repository) findMany(ctx context.Context, query string) ([]*domain.Product, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		id, name, description, status string
		sku, categoryID               *string
		priceAmt, priceCur            string
		stockQuantity                 int
		images                        []byte
	)
	err := row.Scan(&id, &sku, &name, &description, &priceAmt, &priceCur, &stockQuantity, &status, &categoryID, &images)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(priceAmt)
	if err != nil {
		return nil, err
	}
	price, err := shared.NewMoney(amount, priceCur)
	if err != nil {
		return nil, err
	}

	p, err := domain.NewProduct(name, description, price, stockQuantity)
	if err != nil {
		return nil, err
	}
	p.SetID(id)
	if sku != nil {
		if err := p.SetSKU(*sku); err != nil {
			return nil, err
		}
	}
	st, err := domain.ParseProductStatus(status)
	if err != nil {
		return nil, err
	}
	p.SetStatus(st)
	if categoryID != nil {
		p.SetCategoryID(*categoryID)
	}
	if len(images) > 0 {
		var urls []string
		if err := json.Unmarshal(images, &urls); err != nil {
			return nil, err
		}
		p.RestoreImages(urls)
	}
	return p, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
