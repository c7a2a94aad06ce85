package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/agrimart/agrimart-backend/api/responses"
	"github.com/agrimart/agrimart-backend/api/validators"
	addresssvc "github.com/agrimart/agrimart-backend/internal/address"
	pkgerrors "github.com/agrimart/agrimart-backend/pkg/errors"
	"github.com/agrimart/agrimart-backend/pkg/logger"
	"github.com/agrimart/agrimart-backend/pkg/types"
)

// AddressList returns the saved address book.
func AddressList(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		book, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newAddressBookResponse(book))
	}
}

// AddressAdd appends a new address. The new entry is never the default.
func AddressAdd(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		var payload addressPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		book, err := svc.Add(r.Context(), payload.toAddress())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newAddressBookResponse(book))
	}
}

// AddressUpdate rewrites the entry at the given position. The default flag
// is owned by select-default and left untouched here.
func AddressUpdate(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		index, err := addressIndex(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addressPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		book, err := svc.Update(r.Context(), index, payload.toAddress())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newAddressBookResponse(book))
	}
}

// AddressSelectDefault promotes one entry to default, demoting the rest.
func AddressSelectDefault(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		index, err := addressIndex(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		book, err := svc.SelectDefault(r.Context(), index)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newAddressBookResponse(book))
	}
}

func addressIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid address index")
	}
	return index, nil
}

type addressPayload struct {
	Kind        string `json:"type" validate:"required"`
	AddressText string `json:"address" validate:"required"`
	Pincode     string `json:"pincode" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
}

func (p addressPayload) toAddress() types.Address {
	return types.Address{
		Kind:        p.Kind,
		AddressText: p.AddressText,
		Pincode:     p.Pincode,
		Phone:       p.Phone,
	}
}

type addressBookResponse struct {
	Addresses []types.Address `json:"addresses"`
}

func newAddressBookResponse(book []types.Address) addressBookResponse {
	if book == nil {
		book = []types.Address{}
	}
	return addressBookResponse{Addresses: book}
}
