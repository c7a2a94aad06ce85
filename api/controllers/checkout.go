package controllers

import (
	"net/http"

	"github.com/agrimart/agrimart-backend/api/responses"
	addresssvc "github.com/agrimart/agrimart-backend/internal/address"
	cartsvc "github.com/agrimart/agrimart-backend/internal/cart"
	orderssvc "github.com/agrimart/agrimart-backend/internal/orders"
	pkgerrors "github.com/agrimart/agrimart-backend/pkg/errors"
	"github.com/agrimart/agrimart-backend/pkg/logger"
)

// Checkout snapshots the current cart and the default address into a new
// order, then empties the cart. An empty cart is rejected.
func Checkout(carts cartsvc.Service, orders orderssvc.Service, addresses addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if carts == nil || orders == nil || addresses == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout services unavailable"))
			return
		}

		lines := carts.Load(r.Context())
		if len(lines) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty"))
			return
		}

		addr, err := addresses.Default(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		total, _ := cartsvc.Subtotal(lines).Float64()
		order := orders.MaterializeFromCart(r.Context(), lines, total, addr)
		carts.Clear(r.Context())

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
