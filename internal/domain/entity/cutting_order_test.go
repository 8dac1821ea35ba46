package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tabla exhaustiva de la máquina de estados: solo avanza, los terminales no salen.
func TestCuttingOrder_CanTransition(t *testing.T) {
	cases := []struct {
		from string
		to   string
		ok   bool
	}{
		{OrderStatusPending, OrderStatusInProcess, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusPending, OrderStatusPending, false},

		{OrderStatusInProcess, OrderStatusCompleted, true},
		{OrderStatusInProcess, OrderStatusCancelled, true},
		{OrderStatusInProcess, OrderStatusPending, false},
		{OrderStatusInProcess, OrderStatusInProcess, false},

		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusInProcess, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},

		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusInProcess, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
	}

	for _, tc := range cases {
		order := &CuttingOrder{Status: tc.from}
		assert.Equal(t, tc.ok, order.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCuttingOrder_IsTerminal(t *testing.T) {
	assert.False(t, (&CuttingOrder{Status: OrderStatusPending}).IsTerminal())
	assert.False(t, (&CuttingOrder{Status: OrderStatusInProcess}).IsTerminal())
	assert.True(t, (&CuttingOrder{Status: OrderStatusCompleted}).IsTerminal())
	assert.True(t, (&CuttingOrder{Status: OrderStatusCancelled}).IsTerminal())
}
