package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: order with identifier %q", shared.ErrNotFound, "x"), http.StatusNotFound},
		{fmt.Errorf("%w: product %q is not available", shared.ErrUnavailable, "x"), http.StatusConflict},
		{fmt.Errorf("%w: product %q", shared.ErrInsufficientStock, "x"), http.StatusConflict},
		{fmt.Errorf("%w: quantity must be greater than zero", shared.ErrInvalidValue), http.StatusBadRequest},
		{fmt.Errorf("%w: cannot operate on USD and EUR", shared.ErrCurrencyMismatch), http.StatusBadRequest},
		{errors.New("pool exhausted"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteError(rec, tc.err)
		assert.Equalf(t, tc.want, rec.Code, "error %v", tc.err)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

func TestWriteErrorHidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}
