package cart

import (
	"testing"

	"github.com/agrimart/agrimart-backend/pkg/enums"
)

func TestMergeEmptyIncomingIsIdentity(t *testing.T) {
	t.Parallel()

	current := []Line{
		{ID: "groc-1", Name: "Fresh Tomatoes", UnitPrice: 50, Quantity: 2},
		{ID: "groc-2", Name: "Basmati Rice", UnitPrice: 120, Quantity: 1},
	}

	merged := mergeLines(current, nil)
	if len(merged) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(merged))
	}
	for i := range current {
		if merged[i] != current[i] {
			t.Fatalf("line %d changed: %+v != %+v", i, merged[i], current[i])
		}
	}
}

func TestMergeLastWriteWins(t *testing.T) {
	t.Parallel()

	current := []Line{{ID: "groc-1", Quantity: 2}}
	incoming := []Line{{ID: "groc-1", Quantity: 5}}

	merged := mergeLines(current, incoming)
	if len(merged) != 1 {
		t.Fatalf("expected 1 line, got %d", len(merged))
	}
	if merged[0].Quantity != 5 {
		t.Fatalf("quantities must be replaced, not summed; got %d", merged[0].Quantity)
	}
}

func TestMergePreservesFirstSeenOrdering(t *testing.T) {
	t.Parallel()

	current := []Line{
		{ID: "a", Quantity: 1},
		{ID: "b", Quantity: 1},
	}
	incoming := []Line{
		{ID: "c", Quantity: 1},
		{ID: "a", Quantity: 9},
	}

	merged := mergeLines(current, incoming)
	want := []struct {
		id  string
		qty int
	}{{"a", 9}, {"b", 1}, {"c", 1}}

	if len(merged) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(merged))
	}
	for i, w := range want {
		if merged[i].ID != w.id || merged[i].Quantity != w.qty {
			t.Fatalf("position %d: expected %s/%d got %s/%d", i, w.id, w.qty, merged[i].ID, merged[i].Quantity)
		}
	}
}

func TestMergeReplacesWholeLine(t *testing.T) {
	t.Parallel()

	current := []Line{{ID: "agri-1", Name: "Urea", UnitPrice: 300, Quantity: 1, Source: enums.LineSourceAgriInput}}
	incoming := []Line{{ID: "agri-1", Name: "Urea 45kg", UnitPrice: 320, Quantity: 2, Source: enums.LineSourceAgriInput}}

	merged := mergeLines(current, incoming)
	if merged[0].Name != "Urea 45kg" || merged[0].UnitPrice != 320 {
		t.Fatalf("incoming line must replace existing line verbatim, got %+v", merged[0])
	}
}

func TestMergeDropsZeroQuantityLines(t *testing.T) {
	t.Parallel()

	current := []Line{{ID: "a", Quantity: 2}, {ID: "b", Quantity: 1}}
	incoming := []Line{{ID: "a", Quantity: 0}}

	merged := mergeLines(current, incoming)
	if len(merged) != 1 || merged[0].ID != "b" {
		t.Fatalf("zero-quantity lines must not be retained, got %+v", merged)
	}
}

func TestAdjustLineRemovesAtZero(t *testing.T) {
	t.Parallel()

	lines := []Line{{ID: "a", Quantity: 3}, {ID: "b", Quantity: 1}}

	adjusted := adjustLine(lines, "a", -3)
	if len(adjusted) != 1 || adjusted[0].ID != "b" {
		t.Fatalf("line reaching zero must be removed, got %+v", adjusted)
	}
}

func TestAdjustLineClampsAtZero(t *testing.T) {
	t.Parallel()

	lines := []Line{{ID: "a", Quantity: 3}}

	adjusted := adjustLine(lines, "a", -1000)
	if len(adjusted) != 0 {
		t.Fatalf("large negative delta must clamp to zero and remove, got %+v", adjusted)
	}
}

func TestAdjustLineUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	lines := []Line{{ID: "a", Quantity: 3}}

	adjusted := adjustLine(lines, "missing", 2)
	if len(adjusted) != 1 || adjusted[0].Quantity != 3 {
		t.Fatalf("unknown id must be a no-op, got %+v", adjusted)
	}
}

func TestRemoveLine(t *testing.T) {
	t.Parallel()

	lines := []Line{{ID: "a", Quantity: 1}, {ID: "b", Quantity: 2}}

	if kept := removeLine(lines, "a"); len(kept) != 1 || kept[0].ID != "b" {
		t.Fatalf("expected only b to remain, got %+v", kept)
	}
	if kept := removeLine(lines, "missing"); len(kept) != 2 {
		t.Fatalf("removing an absent id must keep the cart intact, got %+v", kept)
	}
}
