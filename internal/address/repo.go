package address

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/agrimart/agrimart-backend/pkg/kv"
	"github.com/agrimart/agrimart-backend/pkg/types"
)

// Repository persists the address book as a JSON array under a single kv key.
type Repository struct {
	store kv.Store
	key   string
}

// NewRepository binds an address repository to the provided storage capability.
func NewRepository(store kv.Store, key string) *Repository {
	return &Repository{store: store, key: key}
}

// Load returns the persisted address book, empty when never written.
func (r *Repository) Load(ctx context.Context) ([]types.Address, error) {
	payload, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []types.Address{}, nil
		}
		return nil, fmt.Errorf("read addresses: %w", err)
	}

	var book []types.Address
	if err := json.Unmarshal([]byte(payload), &book); err != nil {
		return nil, fmt.Errorf("decode addresses payload: %w", err)
	}
	if book == nil {
		book = []types.Address{}
	}
	return book, nil
}

// Save writes the full address book back.
func (r *Repository) Save(ctx context.Context, book []types.Address) error {
	if book == nil {
		book = []types.Address{}
	}
	payload, err := json.Marshal(book)
	if err != nil {
		return fmt.Errorf("encode addresses payload: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(payload)); err != nil {
		return fmt.Errorf("write addresses: %w", err)
	}
	return nil
}
