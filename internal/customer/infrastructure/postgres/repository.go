package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Harish120/go-commerce/internal/customer/domain"
	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

const customerColumns = `id, email, first_name, last_name, phone, billing_address, shipping_address, is_active`

func (r *Repository) Save(ctx context.Context, c *domain.Customer) error {
	billing, err := encodeAddress(c.BillingAddress())
	if err != nil {
		return err
	}
	shipping, err := encodeAddress(c.ShippingAddress())
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO customers (
			id, email, first_name, last_name, phone, billing_address, shipping_address, is_active, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6::jsonb,$7::jsonb,$8,now())
		ON CONFLICT (id) DO UPDATE SET
			email=$2, first_name=$3, last_name=$4, phone=$5,
			billing_address=$6::jsonb, shipping_address=$7::jsonb, is_active=$8,
			updated_at=now()`,
		c.ID(), c.Email(), c.FirstName(), c.LastName(), nullString(c.Phone()), billing, shipping, c.IsActive(),
	)
	return err
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	return r.findOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id=$1`, id)
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.findOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE email=$1`, email)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	var (
		id, email, firstName, lastName string
		phone                          *string
		billing, shipping              []byte
		active                         bool
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(&id, &email, &firstName, &lastName, &phone, &billing, &shipping, &active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	c, err := domain.NewCustomer(email, firstName, lastName)
	if err != nil {
		return nil, err
	}
	c.SetID(id)
	if phone != nil {
		c.SetPhone(*phone)
	}
	if addr, err := decodeAddress(billing); err != nil {
		return nil, err
	} else if addr != nil {
		c.SetBillingAddress(addr)
	}
	if addr, err := decodeAddress(shipping); err != nil {
		return nil, err
	} else if addr != nil {
		c.SetShippingAddress(addr)
	}
	if !active {
		c.Deactivate()
	}
	return c, nil
}

func encodeAddress(a *shared.Address) (*string, error) {
	if a == nil {
		return nil, nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func decodeAddress(raw []byte) (*shared.Address, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var a shared.Address
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
