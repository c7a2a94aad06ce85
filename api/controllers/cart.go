package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agrimart/agrimart-backend/api/responses"
	"github.com/agrimart/agrimart-backend/api/validators"
	cartsvc "github.com/agrimart/agrimart-backend/internal/cart"
	"github.com/agrimart/agrimart-backend/pkg/enums"
	pkgerrors "github.com/agrimart/agrimart-backend/pkg/errors"
	"github.com/agrimart/agrimart-backend/pkg/logger"
)

// CartGet returns the live cart plus its derived subtotal.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		lines := svc.Load(r.Context())
		responses.WriteSuccess(w, newCartResponse(lines))
	}
}

// CartReplace overwrites the cart with the submitted lines.
func CartReplace(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload cartLinesRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, err := payload.toLines()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.Replace(r.Context(), lines)
		responses.WriteSuccess(w, newCartResponse(svc.Load(r.Context())))
	}
}

// CartMerge folds the submitted lines into the stored cart, last write wins
// per line id.
func CartMerge(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload cartLinesRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, err := payload.toLines()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		merged := svc.Merge(r.Context(), lines)
		responses.WriteSuccess(w, newCartResponse(merged))
	}
}

// CartAdjust shifts one line's quantity by a signed delta. Reaching zero
// removes the line.
func CartAdjust(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		lineID := chi.URLParam(r, "id")
		if lineID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line id required"))
			return
		}

		var payload adjustQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Delta == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "delta must be non-zero"))
			return
		}

		lines := svc.AdjustQuantity(r.Context(), lineID, payload.Delta)
		responses.WriteSuccess(w, newCartResponse(lines))
	}
}

// CartRemoveLine drops a line from the cart regardless of quantity.
func CartRemoveLine(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		lineID := chi.URLParam(r, "id")
		if lineID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line id required"))
			return
		}

		lines := svc.RemoveLine(r.Context(), lineID)
		responses.WriteSuccess(w, newCartResponse(lines))
	}
}

// CartClear empties the cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		svc.Clear(r.Context())
		responses.WriteSuccess(w, newCartResponse(nil))
	}
}

type cartLinesRequest struct {
	Items []cartLinePayload `json:"items" validate:"required,dive"`
}

type cartLinePayload struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" validate:"required,min=1"`
	Source      string  `json:"source"`
}

type adjustQuantityRequest struct {
	Delta int `json:"delta"`
}

func (r cartLinesRequest) toLines() ([]cartsvc.Line, error) {
	lines := make([]cartsvc.Line, len(r.Items))
	for i, payload := range r.Items {
		source := enums.LineSourceUnspecified
		if payload.Source != "" {
			parsed, err := enums.ParseLineSource(payload.Source)
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid line source")
			}
			source = parsed
		}
		lines[i] = cartsvc.Line{
			ID:          payload.ID,
			Name:        payload.Name,
			UnitPrice:   payload.Price,
			ImageRef:    payload.Image,
			Description: payload.Description,
			Quantity:    payload.Quantity,
			Source:      source,
		}
	}
	return lines, nil
}

type cartResponse struct {
	Items    []cartsvc.Line `json:"items"`
	Subtotal string         `json:"subtotal"`
}

func newCartResponse(lines []cartsvc.Line) cartResponse {
	if lines == nil {
		lines = []cartsvc.Line{}
	}
	return cartResponse{
		Items:    lines,
		Subtotal: cartsvc.Subtotal(lines).StringFixed(2),
	}
}
