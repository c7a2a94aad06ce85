package controllers

import (
	"net/http"

	"github.com/agrimart/agrimart-backend/api/responses"
	orderssvc "github.com/agrimart/agrimart-backend/internal/orders"
	pkgerrors "github.com/agrimart/agrimart-backend/pkg/errors"
	"github.com/agrimart/agrimart-backend/pkg/logger"
)

// OrdersList returns the order history, most recent first, plus the
// month/year groups the history screen renders as section headers.
func OrdersList(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		history := svc.Load(r.Context())
		responses.WriteSuccess(w, newOrdersResponse(history))
	}
}

type ordersResponse struct {
	Orders []orderssvc.Order `json:"orders"`
	Groups []orderGroup      `json:"groups"`
}

type orderGroup struct {
	Month  string            `json:"month"`
	Year   string            `json:"year"`
	Orders []orderssvc.Order `json:"orders"`
}

// newOrdersResponse buckets consecutive orders sharing a month and year.
// History is already newest-first, so one pass preserves that ordering
// inside each group.
func newOrdersResponse(history []orderssvc.Order) ordersResponse {
	if history == nil {
		history = []orderssvc.Order{}
	}

	groups := []orderGroup{}
	for _, order := range history {
		n := len(groups)
		if n > 0 && groups[n-1].Month == order.Month && groups[n-1].Year == order.Year {
			groups[n-1].Orders = append(groups[n-1].Orders, order)
			continue
		}
		groups = append(groups, orderGroup{
			Month:  order.Month,
			Year:   order.Year,
			Orders: []orderssvc.Order{order},
		})
	}

	return ordersResponse{Orders: history, Groups: groups}
}
