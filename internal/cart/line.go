package cart

import (
	"github.com/agrimart/agrimart-backend/pkg/enums"
)

// Line is one product entry in the live cart. The json keys match the records
// the mobile app persisted to device storage.
type Line struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	UnitPrice   float64          `json:"price"`
	ImageRef    string           `json:"image,omitempty"`
	Description string           `json:"description,omitempty"`
	Quantity    int              `json:"quantity"`
	Source      enums.LineSource `json:"source,omitempty"`
}

// CloneLines deep-copies a cart snapshot so later mutation of the live cart
// cannot leak into order history.
func CloneLines(lines []Line) []Line {
	if lines == nil {
		return nil
	}
	cloned := make([]Line, len(lines))
	copy(cloned, lines)
	return cloned
}
