package derive

import (
	"testing"
	"time"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
)

func filterFixture(now time.Time) []model.Product {
	return []model.Product{
		{ID: "a", Division: "Dairy", Brand: "Meadow Creek", MinExpiry: now.AddDate(0, 0, 12), QuantityOnHand: 80, CommittedQuantity: 10},
		{ID: "b", Division: "Bakery", Brand: "Hearthstone", MinExpiry: now.AddDate(0, 0, 45), QuantityOnHand: 150, CommittedQuantity: 150},
		{ID: "c", Division: "Dairy", Brand: "Meadow Creek", MinExpiry: now.AddDate(0, 0, 120), QuantityOnHand: 200, CommittedQuantity: 50},
		{ID: "d", Division: "Frozen", Brand: "Forno Antico", MinExpiry: now.AddDate(0, 0, 5), QuantityOnHand: 40, CommittedQuantity: 40},
	}
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func assertIDs(t *testing.T, got []model.Product, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestFilterNoCriteriaIsNoOp(t *testing.T) {
	in := filterFixture(testNow)
	assertIDs(t, Filter(in, FilterCriteria{}, testNow), "a", "b", "c", "d")
	assertIDs(t, Filter(in, FilterCriteria{Division: FilterAll, Brand: FilterAll, Status: FilterAll}, testNow), "a", "b", "c", "d")
}

func TestFilterByDivisionAndBrand(t *testing.T) {
	in := filterFixture(testNow)
	assertIDs(t, Filter(in, FilterCriteria{Division: "Dairy"}, testNow), "a", "c")
	assertIDs(t, Filter(in, FilterCriteria{Brand: "Forno Antico"}, testNow), "d")
	assertIDs(t, Filter(in, FilterCriteria{Division: "Dairy", Brand: "Hearthstone"}, testNow))
}

func TestFilterByStatus(t *testing.T) {
	in := filterFixture(testNow)
	assertIDs(t, Filter(in, FilterCriteria{Status: string(StatusExpiringSoon)}, testNow), "a", "d")
	assertIDs(t, Filter(in, FilterCriteria{Status: string(StatusAtRisk)}, testNow), "b")
	assertIDs(t, Filter(in, FilterCriteria{Status: string(StatusHealthy)}, testNow), "c")
}

func TestFilterAvailableOnly(t *testing.T) {
	in := filterFixture(testNow)
	// b and d are fully committed.
	assertIDs(t, Filter(in, FilterCriteria{AvailableOnly: true}, testNow), "a", "c")
}

func TestFilterIsIdempotent(t *testing.T) {
	in := filterFixture(testNow)
	c := FilterCriteria{Division: "Dairy", AvailableOnly: true}

	once := Filter(in, c, testNow)
	twice := Filter(once, c, testNow)
	assertIDs(t, twice, ids(once)...)
}

func TestFilterEmptyResultIsValid(t *testing.T) {
	got := Filter(filterFixture(testNow), FilterCriteria{Division: "Seafood"}, testNow)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", got)
	}
}
