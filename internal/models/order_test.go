package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	allowed := [][2]string{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusConfirmed, OrderStatusBaking},
		{OrderStatusConfirmed, OrderStatusCancelled},
		{OrderStatusBaking, OrderStatusReady},
		{OrderStatusReady, OrderStatusDelivered},
	}
	for _, pair := range allowed {
		assert.True(t, CanTransitionOrderStatus(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}

	denied := [][2]string{
		{OrderStatusPending, OrderStatusBaking},
		{OrderStatusPending, OrderStatusDelivered},
		{OrderStatusBaking, OrderStatusPending},
		{OrderStatusDelivered, OrderStatusCancelled},
		{OrderStatusCancelled, OrderStatusConfirmed},
		{OrderStatusDelivered, OrderStatusPending},
	}
	for _, pair := range denied {
		assert.False(t, CanTransitionOrderStatus(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}
}
