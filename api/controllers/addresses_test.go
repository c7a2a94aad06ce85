package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	addresssvc "github.com/agrimart/agrimart-backend/internal/address"
	"github.com/agrimart/agrimart-backend/pkg/kv"
	"github.com/agrimart/agrimart-backend/pkg/types"
)

func newAddressService(t *testing.T) addresssvc.Service {
	t.Helper()
	svc, err := addresssvc.NewService(addresssvc.ServiceParams{
		Repo: addresssvc.NewRepository(kv.NewMemory(), "addresses"),
	})
	if err != nil {
		t.Fatalf("failed to build address service: %v", err)
	}
	return svc
}

func decodeAddressBook(t *testing.T, rec *httptest.ResponseRecorder) []types.Address {
	t.Helper()
	var envelope struct {
		Data addressBookResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode address book: %v", err)
	}
	return envelope.Data.Addresses
}

func TestAddressAddAndList(t *testing.T) {
	svc := newAddressService(t)

	body := `{"type":"Home","address":"12 Green Lane","pincode":"560100","phone":"+91 9123456789"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/addresses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	AddressAdd(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	book := decodeAddressBook(t, rec)
	if len(book) != 1 || book[0].Kind != "Home" {
		t.Fatalf("unexpected book %+v", book)
	}
	if book[0].IsDefault {
		t.Fatal("new addresses must not be default")
	}

	rec = httptest.NewRecorder()
	AddressList(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/addresses", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on list, got %d", rec.Code)
	}
	if book := decodeAddressBook(t, rec); len(book) != 1 {
		t.Fatalf("expected 1 address in list, got %d", len(book))
	}
}

func TestAddressAddRejectsIncompleteEntry(t *testing.T) {
	svc := newAddressService(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/addresses", strings.NewReader(`{"type":"Home"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	AddressAdd(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddressSelectDefaultIsExclusive(t *testing.T) {
	svc := newAddressService(t)
	ctx := context.Background()
	for _, addr := range []types.Address{
		{Kind: "Home", AddressText: "12 Green Lane", Pincode: "560100", Phone: "+91 9123456789"},
		{Kind: "Work", AddressText: "4 Tech Park", Pincode: "560037", Phone: "+91 9123456780"},
	} {
		if _, err := svc.Add(ctx, addr); err != nil {
			t.Fatalf("failed to seed address: %v", err)
		}
	}

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("index", "1")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/addresses/1/default", nil).
		WithContext(context.WithValue(ctx, chi.RouteCtxKey, routeCtx))
	rec := httptest.NewRecorder()
	AddressSelectDefault(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	book := decodeAddressBook(t, rec)
	if book[0].IsDefault || !book[1].IsDefault {
		t.Fatalf("expected only index 1 to be default, got %+v", book)
	}
}

func TestAddressUpdateRejectsBadIndex(t *testing.T) {
	svc := newAddressService(t)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("index", "not-a-number")
	body := `{"type":"Home","address":"12 Green Lane","pincode":"560100","phone":"+91 9123456789"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/addresses/x", strings.NewReader(body)).
		WithContext(context.WithValue(context.Background(), chi.RouteCtxKey, routeCtx))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	AddressUpdate(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric index, got %d", rec.Code)
	}
}
