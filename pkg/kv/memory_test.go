package kv

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	ctx := context.Background()

	if _, err := store.Get(ctx, "cart_items"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on fresh store, got %v", err)
	}

	if err := store.Set(ctx, "cart_items", `[]`); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	got, err := store.Get(ctx, "cart_items")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if got != `[]` {
		t.Fatalf("unexpected payload %q", got)
	}

	if err := store.Del(ctx, "cart_items"); err != nil {
		t.Fatalf("unexpected del error: %v", err)
	}
	if _, err := store.Get(ctx, "cart_items"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryFaultInjection(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	store := NewMemory()
	store.FailWrites = boom

	if err := store.Set(context.Background(), "orders", `[]`); !errors.Is(err, boom) {
		t.Fatalf("expected injected write failure, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("failed write must not mutate the store")
	}

	store.FailWrites = nil
	store.FailReads = boom
	if _, err := store.Get(context.Background(), "orders"); !errors.Is(err, boom) {
		t.Fatalf("expected injected read failure, got %v", err)
	}
}
