package orders

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetAll(t *testing.T) {
	store := NewSeededStore(0)

	all, err := store.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ORD001", all[0].ID)
}

func TestStoreGetByID(t *testing.T) {
	store := NewSeededStore(0)

	order, err := store.GetByID(context.Background(), "ORD002")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, order.Status)
	assert.Equal(t, 4, order.Item.ID)
	assert.True(t, order.Invoice.Subtotal.Equal(decimal.RequireFromString("4.5")))
	assert.True(t, order.Invoice.ServiceFee.Equal(decimal.RequireFromString("0.5")))
	assert.True(t, order.Invoice.Total.Equal(decimal.RequireFromString("5")))

	_, err = store.GetByID(context.Background(), "ORD999")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestSeedStatuses(t *testing.T) {
	byStatus := map[string]string{}
	for _, o := range SeedOrders() {
		byStatus[o.Status] = o.ID
	}
	assert.Equal(t, "ORD001", byStatus[StatusCompleted])
	assert.Equal(t, "ORD002", byStatus[StatusActive])
	assert.Equal(t, "ORD003", byStatus[StatusCancelled])
}
