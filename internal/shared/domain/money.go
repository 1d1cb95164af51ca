package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "USD"

// Money is an immutable amount plus a 3-letter currency code. Every operation
// returns a new value; arithmetic across currencies is rejected.
type Money struct {
	amount   decimal.Decimal
	currency string
}

func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount cannot be negative", ErrInvalidValue)
	}
	if len(currency) != 3 {
		return Money{}, fmt.Errorf("%w: currency must be a 3-letter code", ErrInvalidValue)
	}
	return Money{amount: amount, currency: strings.ToUpper(currency)}, nil
}

func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// ZeroMoney is the additive identity for the given currency.
func ZeroMoney(currency string) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() string        { return m.currency }
func (m Money) IsZero() bool            { return m.amount.IsZero() }

func (m Money) Add(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

func (m Money) Subtract(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount cannot be negative", ErrInvalidValue)
	}
	return Money{amount: result, currency: m.currency}, nil
}

// Multiply scales by a possibly fractional factor, e.g. a tax rate.
func (m Money) Multiply(factor float64) (Money, error) {
	result := m.amount.Mul(decimal.NewFromFloat(factor))
	if result.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount cannot be negative", ErrInvalidValue)
	}
	return Money{amount: result, currency: m.currency}, nil
}

// Times scales by a non-negative count, e.g. a line item quantity.
func (m Money) Times(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))), currency: m.currency}
}

func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

func (m Money) LessThan(other Money) (bool, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency, m.amount.StringFixed(2))
}

func (m Money) assertSameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: cannot operate on %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}
