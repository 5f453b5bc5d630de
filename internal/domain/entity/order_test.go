package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNumber(t *testing.T) {
	date := time.Date(2025, 7, 3, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "25-07-03-0001", FormatOrderNumber(date, 1))
	assert.Equal(t, "25-07-03-0042", FormatOrderNumber(date, 42))
	assert.Equal(t, "25-07-03-1234", FormatOrderNumber(date, 1234))
}

func TestValidOrderTransition(t *testing.T) {
	assert.True(t, ValidOrderTransition(OrderStatusPending, OrderStatusProcessing))
	assert.True(t, ValidOrderTransition(OrderStatusPending, OrderStatusCanceled))
	assert.True(t, ValidOrderTransition(OrderStatusProcessing, OrderStatusShipped))
	assert.True(t, ValidOrderTransition(OrderStatusShipped, OrderStatusDelivered))
	assert.True(t, ValidOrderTransition(OrderStatusShipped, OrderStatusCanceled))

	// No skipping stages, no leaving terminal states.
	assert.False(t, ValidOrderTransition(OrderStatusPending, OrderStatusShipped))
	assert.False(t, ValidOrderTransition(OrderStatusPending, OrderStatusDelivered))
	assert.False(t, ValidOrderTransition(OrderStatusDelivered, OrderStatusPending))
	assert.False(t, ValidOrderTransition(OrderStatusCanceled, OrderStatusProcessing))
}

func TestValidOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "processing", "shipped", "delivered", "canceled"} {
		assert.True(t, ValidOrderStatus(valid), valid)
	}
	assert.False(t, ValidOrderStatus("returned"))
}
