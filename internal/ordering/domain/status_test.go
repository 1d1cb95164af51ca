package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusProcessing, false},
		{StatusPending, StatusDelivered, false},
		{StatusConfirmed, StatusProcessing, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusShipped, false},
		{StatusConfirmed, StatusPending, false},
		{StatusProcessing, StatusShipped, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusDelivered, false},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusCancelled, false},
		{StatusShipped, StatusConfirmed, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	all := []OrderStatus{StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
	for _, target := range all {
		assert.False(t, StatusDelivered.CanTransitionTo(target))
		assert.False(t, StatusCancelled.CanTransitionTo(target))
	}
}

func TestParseOrderStatus(t *testing.T) {
	s, err := ParseOrderStatus("processing")
	assert.NoError(t, err)
	assert.Equal(t, StatusProcessing, s)

	_, err = ParseOrderStatus("on_hold")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)

	_, err = ParseOrderStatus("")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)
}
