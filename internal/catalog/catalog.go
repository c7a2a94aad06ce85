package catalog

import (
	"strings"

	"github.com/agrimart/agrimart-backend/internal/cart"
	pkgerrors "github.com/agrimart/agrimart-backend/pkg/errors"
	"github.com/agrimart/agrimart-backend/pkg/enums"
)

// Product is one catalog entry the browse screens render.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	ImageRef    string           `json:"image,omitempty"`
	Description string           `json:"description,omitempty"`
	Source      enums.LineSource `json:"source"`
}

// ToLine converts the product into a cart line with the given quantity.
func (p Product) ToLine(quantity int) cart.Line {
	return cart.Line{
		ID:          p.ID,
		Name:        p.Name,
		UnitPrice:   p.Price,
		ImageRef:    p.ImageRef,
		Description: p.Description,
		Quantity:    quantity,
		Source:      p.Source,
	}
}

// Service serves the static sample catalog.
type Service interface {
	List(source enums.LineSource) []Product
	Search(source enums.LineSource, query string) []Product
	Get(id string) (Product, error)
}

type service struct {
	products []Product
}

// NewService builds a catalog service over the sample data.
func NewService() Service {
	return &service{products: sampleProducts()}
}

// List returns every product for the given source, or the full catalog for
// the unspecified source.
func (s *service) List(source enums.LineSource) []Product {
	listed := make([]Product, 0, len(s.products))
	for _, product := range s.products {
		if source != enums.LineSourceUnspecified && product.Source != source {
			continue
		}
		listed = append(listed, product)
	}
	return listed
}

// Search filters the source's products by a case-insensitive name match.
func (s *service) Search(source enums.LineSource, query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.List(source)
	}

	matched := make([]Product, 0)
	for _, product := range s.List(source) {
		if strings.Contains(strings.ToLower(product.Name), query) {
			matched = append(matched, product)
		}
	}
	return matched
}

// Get looks a product up by id.
func (s *service) Get(id string) (Product, error) {
	for _, product := range s.products {
		if product.ID == id {
			return product, nil
		}
	}
	return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}
