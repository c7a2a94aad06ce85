package orders

import (
	"context"
	"testing"

	"github.com/agrimart/agrimart-backend/internal/cart"
	"github.com/agrimart/agrimart-backend/pkg/enums"
	"github.com/agrimart/agrimart-backend/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewRepository(kv.NewMemory(), "orders")
	ctx := context.Background()

	history, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	order := Order{
		ID:        "1741343400000",
		DisplayID: "#ORD12345",
		Date:      "07/03/25",
		Month:     "March",
		Year:      "2025",
		Status:    enums.OrderStatusProcessing,
		Lines: []cart.Line{
			{ID: "groc-2", Name: "Basmati Rice", UnitPrice: 120, Quantity: 2, Source: enums.LineSourceGroceries},
		},
		TotalAmount: 240,
		Address:     testAddress,
	}

	require.NoError(t, repo.Save(ctx, []Order{order}))

	reloaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, order, reloaded[0])
}

func TestRepositoryLoadCorruptPayload(t *testing.T) {
	t.Parallel()

	store := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "orders", "not-json"))

	repo := NewRepository(store, "orders")
	_, err := repo.Load(ctx)
	assert.Error(t, err)
}

func TestRepositorySaveNilWritesEmptyArray(t *testing.T) {
	t.Parallel()

	store := kv.NewMemory()
	ctx := context.Background()
	repo := NewRepository(store, "orders")

	require.NoError(t, repo.Save(ctx, nil))

	payload, err := store.Get(ctx, "orders")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, payload)
}
