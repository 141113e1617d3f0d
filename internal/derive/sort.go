package derive

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
)

// SortKey selects the dashboard ordering. The zero value and any
// unrecognized key leave the list in its incoming order, so a stale
// preference stored by a client never breaks the view.
type SortKey string

const (
	SortSellOutAsc      SortKey = "sell-out-asc"
	SortSellOutDesc     SortKey = "sell-out-desc"
	SortDescriptionAsc  SortKey = "description-asc"
	SortDescriptionDesc SortKey = "description-desc"
	SortBrandAsc        SortKey = "brand-asc"
	SortBrandDesc       SortKey = "brand-desc"
	SortAvailableAsc    SortKey = "available-asc"
	SortAvailableDesc   SortKey = "available-desc"
)

// Sort returns a new slice ordered by key. The input is never
// mutated. Sorting is stable: equal keys keep their relative input
// order, and sorting twice with the same key is idempotent.
func Sort(products []model.Product, key SortKey) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)

	// Text comparisons are locale-aware, matching how the browser UI
	// collated them. A Collator is not safe for concurrent use, so
	// each sort gets its own.
	textCollator := collate.New(language.English)

	var less func(a, b model.Product) bool
	switch key {
	case SortSellOutAsc:
		less = func(a, b model.Product) bool { return a.ProjectedSellOut.Before(b.ProjectedSellOut) }
	case SortSellOutDesc:
		less = func(a, b model.Product) bool { return b.ProjectedSellOut.Before(a.ProjectedSellOut) }
	case SortDescriptionAsc:
		less = func(a, b model.Product) bool { return textCollator.CompareString(a.Description, b.Description) < 0 }
	case SortDescriptionDesc:
		less = func(a, b model.Product) bool { return textCollator.CompareString(b.Description, a.Description) < 0 }
	case SortBrandAsc:
		less = func(a, b model.Product) bool { return textCollator.CompareString(a.Brand, b.Brand) < 0 }
	case SortBrandDesc:
		less = func(a, b model.Product) bool { return textCollator.CompareString(b.Brand, a.Brand) < 0 }
	case SortAvailableAsc:
		less = func(a, b model.Product) bool {
			return ComputeAvailability(a).Available < ComputeAvailability(b).Available
		}
	case SortAvailableDesc:
		less = func(a, b model.Product) bool {
			return ComputeAvailability(b).Available < ComputeAvailability(a).Available
		}
	default:
		// Unknown key: identity sort.
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
