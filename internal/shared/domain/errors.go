package domain

import "errors"

// Error kinds surfaced by the domain and application layers. Callers dispatch
// on these with errors.Is; the HTTP layer maps them to status codes.
var (
	ErrInvalidValue      = errors.New("invalid value")
	ErrCurrencyMismatch  = errors.New("currency mismatch")
	ErrNotFound          = errors.New("not found")
	ErrUnavailable       = errors.New("unavailable")
	ErrInsufficientStock = errors.New("insufficient stock")
)
