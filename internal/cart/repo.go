package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/agrimart/agrimart-backend/pkg/kv"
)

// Repository persists the cart as a JSON array under a single kv key.
type Repository struct {
	store kv.Store
	key   string
}

// NewRepository binds a cart repository to the provided storage capability.
func NewRepository(store kv.Store, key string) *Repository {
	return &Repository{store: store, key: key}
}

// Load returns the persisted cart. A key that has never been written is an
// empty cart, not an error.
func (r *Repository) Load(ctx context.Context) ([]Line, error) {
	payload, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []Line{}, nil
		}
		return nil, fmt.Errorf("read cart: %w", err)
	}

	var lines []Line
	if err := json.Unmarshal([]byte(payload), &lines); err != nil {
		return nil, fmt.Errorf("decode cart payload: %w", err)
	}
	if lines == nil {
		lines = []Line{}
	}
	return lines, nil
}

// Save overwrites the persisted cart with the given full snapshot.
func (r *Repository) Save(ctx context.Context, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart payload: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(payload)); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}
