package cart

import (
	"github.com/shopspring/decimal"
)

// Subtotal sums unit price times quantity across the cart without binary
// float drift; the result is what checkout passes through to the order.
func Subtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		price := decimal.NewFromFloat(line.UnitPrice)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
