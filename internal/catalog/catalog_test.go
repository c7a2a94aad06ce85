package catalog

import (
	"testing"

	pkgerrors "github.com/agrimart/agrimart-backend/pkg/errors"
	"github.com/agrimart/agrimart-backend/pkg/enums"
)

func TestListFiltersBySource(t *testing.T) {
	t.Parallel()

	svc := NewService()

	groceries := svc.List(enums.LineSourceGroceries)
	if len(groceries) == 0 {
		t.Fatal("expected grocery products")
	}
	for _, product := range groceries {
		if product.Source != enums.LineSourceGroceries {
			t.Fatalf("unexpected source in grocery list: %+v", product)
		}
	}

	all := svc.List(enums.LineSourceUnspecified)
	agri := svc.List(enums.LineSourceAgriInput)
	if len(all) != len(groceries)+len(agri) {
		t.Fatalf("full catalog should cover both sources: %d != %d + %d", len(all), len(groceries), len(agri))
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	svc := NewService()

	matched := svc.Search(enums.LineSourceGroceries, "rice")
	if len(matched) != 1 || matched[0].ID != "groc-2" {
		t.Fatalf("expected basmati rice, got %+v", matched)
	}

	if matched := svc.Search(enums.LineSourceGroceries, ""); len(matched) != len(svc.List(enums.LineSourceGroceries)) {
		t.Fatalf("blank query must return the full list")
	}

	if matched := svc.Search(enums.LineSourceGroceries, "urea"); len(matched) != 0 {
		t.Fatalf("agri products must not match grocery searches, got %+v", matched)
	}
}

func TestGetAndToLine(t *testing.T) {
	t.Parallel()

	svc := NewService()

	product, err := svc.Get("agri-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := product.ToLine(3)
	if line.ID != "agri-1" || line.Quantity != 3 || line.UnitPrice != product.Price {
		t.Fatalf("unexpected line %+v", line)
	}
	if line.Source != enums.LineSourceAgriInput {
		t.Fatalf("line must carry the product source, got %s", line.Source)
	}

	_, err = svc.Get("missing")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
