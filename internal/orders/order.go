package orders

import (
	"github.com/agrimart/agrimart-backend/internal/cart"
	"github.com/agrimart/agrimart-backend/pkg/enums"
	"github.com/agrimart/agrimart-backend/pkg/types"
)

// Order is an immutable snapshot of a cart, address, and total taken at
// checkout. Lines and totalAmount never change after creation; only status
// may transition later. The json keys match the records the mobile app
// persisted.
type Order struct {
	ID          string            `json:"id"`
	DisplayID   string            `json:"orderId"`
	Date        string            `json:"date"`
	Month       string            `json:"month"`
	Year        string            `json:"year"`
	Status      enums.OrderStatus `json:"status"`
	Lines       []cart.Line       `json:"items"`
	TotalAmount float64           `json:"totalAmount"`
	Address     types.Address     `json:"address"`
}
