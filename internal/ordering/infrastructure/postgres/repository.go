package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Harish120/go-commerce/internal/ordering/domain"
	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

const orderColumns = `id, customer_id, order_number, status,
	subtotal_amount::text, subtotal_currency,
	shipping_cost_amount::text, shipping_cost_currency,
	tax_amount::text, tax_currency,
	total_amount::text, total_currency,
	shipping_address, billing_address, notes, created_at, updated_at`

// Save upserts the order row and replaces its item rows inside one
// transaction. Items carry no independent lifecycle outside their order, so
// delete-and-reinsert keeps the mapping trivial.
func (r *Repository) Save(ctx context.Context, o *domain.Order) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	shippingAddr, err := encodeAddress(o.ShippingAddress())
	if err != nil {
		return err
	}
	billingAddr, err := encodeAddress(o.BillingAddress())
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `INSERT INTO orders (
			id, customer_id, order_number, status,
			subtotal_amount, subtotal_currency,
			shipping_cost_amount, shipping_cost_currency,
			tax_amount, tax_currency,
			total_amount, total_currency,
			shipping_address, billing_address, notes, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5::numeric,$6,$7::numeric,$8,$9::numeric,$10,$11::numeric,$12,$13::jsonb,$14::jsonb,$15,$16,$17)
		ON CONFLICT (id) DO UPDATE SET
			status=$4,
			subtotal_amount=$5::numeric, subtotal_currency=$6,
			shipping_cost_amount=$7::numeric, shipping_cost_currency=$8,
			tax_amount=$9::numeric, tax_currency=$10,
			total_amount=$11::numeric, total_currency=$12,
			shipping_address=$13::jsonb, billing_address=$14::jsonb,
			notes=$15, updated_at=$17`,
		o.ID(), o.CustomerID(), o.OrderNumber(), o.Status().String(),
		o.Subtotal().Amount().StringFixed(2), o.Subtotal().Currency(),
		o.ShippingCost().Amount().StringFixed(2), o.ShippingCost().Currency(),
		o.Tax().Amount().StringFixed(2), o.Tax().Currency(),
		o.Total().Amount().StringFixed(2), o.Total().Currency(),
		shippingAddr, billingAddr, nullString(o.Notes()), o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM order_items WHERE order_id=$1`, o.ID()); err != nil {
		return err
	}
	batch := &pgx.Batch{}
	for pos, item := range o.Items() {
		batch.Queue(`INSERT INTO order_items (
				id, order_id, product_id, product_name, product_sku, position,
				unit_price_amount, unit_price_currency, quantity,
				total_price_amount, total_price_currency
			) VALUES ($1,$2,$3,$4,$5,$6,$7::numeric,$8,$9,$10::numeric,$11)`,
			item.ID(), o.ID(), item.ProductID(), item.ProductName(), item.ProductSKU(), pos,
			item.UnitPrice().Amount().StringFixed(2), item.UnitPrice().Currency(), item.Quantity(),
			item.TotalPrice().Amount().StringFixed(2), item.TotalPrice().Currency(),
		)
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return r.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id)
}

func (r *Repository) FindByOrderNumber(ctx context.Context, number string) (*domain.Order, error) {
	return r.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number=$1`, number)
}

func (r *Repository) FindByCustomerID(ctx context.Context, customerID string) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE customer_id=$1 ORDER BY created_at`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if err := r.loadItems(ctx, o); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *Repository) Delete(ctx context.Context, o *domain.Order) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, o.ID())
	return err
}

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateOrderNumber draws ORD-XXXXXXXX candidates until one is unused.
func (r *Repository) GenerateOrderNumber(ctx context.Context) (string, error) {
	for {
		suffix := make([]byte, 8)
		for i := range suffix {
			suffix[i] = orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))]
		}
		candidate := "ORD-" + string(suffix)

		var taken bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE order_number=$1)`, candidate).Scan(&taken); err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		r.log.Debug("order number collision, retrying", "order_number", candidate)
	}
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Order, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	o, err := r.scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *Repository) scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		id, customerID, orderNumber, status string
		subAmt, subCur                      string
		shipAmt, shipCur                    string
		taxAmt, taxCur                      string
		totalAmt, totalCur                  string
		shippingAddr, billingAddr           []byte
		notes                               *string
		createdAt                           time.Time
		updatedAt                           *time.Time
	)
	err := row.Scan(&id, &customerID, &orderNumber, &status,
		&subAmt, &subCur, &shipAmt, &shipCur, &taxAmt, &taxCur, &totalAmt, &totalCur,
		&shippingAddr, &billingAddr, &notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	o, err := domain.NewOrder(customerID, orderNumber)
	if err != nil {
		return nil, err
	}
	o.SetID(id)

	st, err := domain.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}
	o.SetStatus(st)

	if addr, err := decodeAddress(shippingAddr); err != nil {
		return nil, err
	} else if addr != nil {
		o.SetShippingAddress(addr)
	}
	if addr, err := decodeAddress(billingAddr); err != nil {
		return nil, err
	} else if addr != nil {
		o.SetBillingAddress(addr)
	}
	if notes != nil {
		o.SetNotes(*notes)
	}

	shipping, err := money(shipAmt, shipCur)
	if err != nil {
		return nil, err
	}
	if err := o.SetShippingCost(shipping); err != nil {
		return nil, err
	}
	tax, err := money(taxAmt, taxCur)
	if err != nil {
		return nil, err
	}
	if err := o.SetTax(tax); err != nil {
		return nil, err
	}
	o.SetTimestamps(createdAt, updatedAt)
	return o, nil
}

func (r *Repository) loadItems(ctx context.Context, o *domain.Order) error {
	rows, err := r.pool.Query(ctx, `SELECT id, product_id, product_name, product_sku,
			unit_price_amount::text, unit_price_currency, quantity
		FROM order_items WHERE order_id=$1 ORDER BY position`, o.ID())
	if err != nil {
		return err
	}
	defer rows.Close()

	var items []*domain.OrderItem
	for rows.Next() {
		var (
			id, productID, productName, productSKU string
			priceAmt, priceCur                     string
			quantity                               int
		)
		if err := rows.Scan(&id, &productID, &productName, &productSKU, &priceAmt, &priceCur, &quantity); err != nil {
			return err
		}
		price, err := money(priceAmt, priceCur)
		if err != nil {
			return err
		}
		item, err := domain.NewOrderItem(productID, productName, productSKU, price, quantity)
		if err != nil {
			return err
		}
		item.SetID(id)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return o.RestoreItems(items)
}

func money(amount, currency string) (shared.Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return shared.Money{}, err
	}
	return shared.NewMoney(d, currency)
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
