package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/agrimart/agrimart-backend/pkg/kv"
)

// Repository persists the order history as a JSON array under a single kv
// key, most recent first.
type Repository struct {
	store kv.Store
	key   string
}

// NewRepository binds an order repository to the provided storage capability.
func NewRepository(store kv.Store, key string) *Repository {
	return &Repository{store: store, key: key}
}

// Load returns the persisted order list. A key that has never been written is
// an empty history, not an error.
func (r *Repository) Load(ctx context.Context) ([]Order, error) {
	payload, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []Order{}, nil
		}
		return nil, fmt.Errorf("read orders: %w", err)
	}

	var history []Order
	if err := json.Unmarshal([]byte(payload), &history); err != nil {
		return nil, fmt.Errorf("decode orders payload: %w", err)
	}
	if history == nil {
		history = []Order{}
	}
	return history, nil
}

// Save writes the full order list back.
func (r *Repository) Save(ctx context.Context, history []Order) error {
	if history == nil {
		history = []Order{}
	}
	payload, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode orders payload: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(payload)); err != nil {
		return fmt.Errorf("write orders: %w", err)
	}
	return nil
}
