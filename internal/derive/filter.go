package derive

import (
	"time"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
)

// FilterAll is the wildcard criterion value: it matches everything.
// An empty string behaves the same so unset query params are no-ops.
const FilterAll = "all"

// FilterCriteria narrows the product list. Every specified criterion
// must match; unspecified ones ("all"/empty/false) are no-ops.
type FilterCriteria struct {
	Division      string
	Brand         string
	Status        string // one of the Status values, or "all"
	AvailableOnly bool
}

func criterionSet(v string) bool {
	return v != "" && v != FilterAll
}

// Filter returns the order-preserving subsequence of products matching
// every set criterion. Status is recomputed against now, never read
// from storage. An empty result is valid.
func Filter(products []model.Product, c FilterCriteria, now time.Time) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if criterionSet(c.Division) && p.Division != c.Division {
			continue
		}
		if criterionSet(c.Brand) && p.Brand != c.Brand {
			continue
		}
		if criterionSet(c.Status) && string(ClassifyStatus(p, now)) != c.Status {
			continue
		}
		if c.AvailableOnly && p.QuantityOnHand <= p.CommittedQuantity {
			continue
		}
		out = append(out, p)
	}
	return out
}
