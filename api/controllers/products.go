package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agrimart/agrimart-backend/api/responses"
	catalogsvc "github.com/agrimart/agrimart-backend/internal/catalog"
	"github.com/agrimart/agrimart-backend/pkg/enums"
	pkgerrors "github.com/agrimart/agrimart-backend/pkg/errors"
	"github.com/agrimart/agrimart-backend/pkg/logger"
)

// ProductsList returns the catalog, optionally filtered by source and a
// free-text query.
func ProductsList(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		source := enums.LineSourceUnspecified
		if raw := r.URL.Query().Get("source"); raw != "" {
			parsed, err := enums.ParseLineSource(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid source"))
				return
			}
			source = parsed
		}

		var products []catalogsvc.Product
		if query := r.URL.Query().Get("q"); query != "" {
			products = svc.Search(source, query)
		} else {
			products = svc.List(source)
		}

		responses.WriteSuccess(w, productsResponse{Products: products})
	}
}

// ProductsGet returns one catalog entry by id.
func ProductsGet(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.Get(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

type productsResponse struct {
	Products []catalogsvc.Product `json:"products"`
}
