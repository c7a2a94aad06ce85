package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	addresssvc "github.com/agrimart/agrimart-backend/internal/address"
	cartsvc "github.com/agrimart/agrimart-backend/internal/cart"
	orderssvc "github.com/agrimart/agrimart-backend/internal/orders"
	"github.com/agrimart/agrimart-backend/pkg/kv"
	"github.com/agrimart/agrimart-backend/pkg/types"
)

type checkoutFixture struct {
	carts     cartsvc.Service
	orders    orderssvc.Service
	addresses addresssvc.Service
}

func newCheckoutFixture(t *testing.T) checkoutFixture {
	t.Helper()
	store := kv.NewMemory()

	carts, err := cartsvc.NewService(cartsvc.ServiceParams{
		Repo: cartsvc.NewRepository(store, "cart_items"),
	})
	if err != nil {
		t.Fatalf("failed to build cart service: %v", err)
	}

	orders, err := orderssvc.NewService(orderssvc.ServiceParams{
		Repo:    orderssvc.NewRepository(store, "orders"),
		Now:     func() time.Time { return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC) },
		RandInt: func(int) int { return 42 },
	})
	if err != nil {
		t.Fatalf("failed to build order service: %v", err)
	}

	addresses, err := addresssvc.NewService(addresssvc.ServiceParams{
		Repo: addresssvc.NewRepository(store, "addresses"),
	})
	if err != nil {
		t.Fatalf("failed to build address service: %v", err)
	}

	return checkoutFixture{carts: carts, orders: orders, addresses: addresses}
}

func TestCheckoutMaterializesOrderAndClearsCart(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	if _, err := fx.addresses.Add(ctx, types.Address{
		Kind: "Home", AddressText: "12 Green Lane", Pincode: "560100", Phone: "+91 9123456789",
	}); err != nil {
		t.Fatalf("failed to seed address: %v", err)
	}
	fx.carts.Replace(ctx, []cartsvc.Line{
		{ID: "groc-1", Name: "Fresh Tomatoes", UnitPrice: 40, Quantity: 2},
		{ID: "groc-2", Name: "Organic Spinach", UnitPrice: 30, Quantity: 1},
	})

	rec := httptest.NewRecorder()
	Checkout(fx.carts, fx.orders, fx.addresses, nil).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data orderssvc.Order `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode order: %v", err)
	}
	order := envelope.Data
	if order.DisplayID != "#ORD00042" {
		t.Fatalf("unexpected display id %q", order.DisplayID)
	}
	if order.TotalAmount != 110 {
		t.Fatalf("expected total 110, got %v", order.TotalAmount)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("expected 2 snapshot lines, got %d", len(order.Lines))
	}
	if order.Month != "March" || order.Year != "2024" {
		t.Fatalf("unexpected date decomposition %s %s", order.Month, order.Year)
	}

	if got := fx.carts.Load(ctx); len(got) != 0 {
		t.Fatalf("expected cart cleared after checkout, got %v", got)
	}
	if history := fx.orders.Load(ctx); len(history) != 1 {
		t.Fatalf("expected 1 order in history, got %d", len(history))
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	fx := newCheckoutFixture(t)

	rec := httptest.NewRecorder()
	Checkout(fx.carts, fx.orders, fx.addresses, nil).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", rec.Code)
	}
}

func TestCheckoutRequiresAnAddress(t *testing.T) {
	fx := newCheckoutFixture(t)
	fx.carts.Replace(context.Background(), []cartsvc.Line{{ID: "a", Name: "A", UnitPrice: 10, Quantity: 1}})

	rec := httptest.NewRecorder()
	Checkout(fx.carts, fx.orders, fx.addresses, nil).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when no address is saved, got %d", rec.Code)
	}
}
