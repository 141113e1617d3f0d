package derive

import "github.com/schilling3003/shelflife-sales-app/internal/model"

// Availability is the sellable remainder of a product plus how much of
// the on-hand stock is already spoken for.
type Availability struct {
	// Available may be negative if the committed counter has been
	// pushed past on-hand stock upstream; callers must not assume
	// non-negativity.
	Available int
	// CommitmentPercent is committed/on-hand as a percentage, clamped
	// to [0,100]. Zero on-hand stock yields 0, not a division error.
	CommitmentPercent float64
}

// ComputeAvailability derives the remaining sellable quantity and
// commitment percentage for a product.
func ComputeAvailability(p model.Product) Availability {
	a := Availability{Available: p.QuantityOnHand - p.CommittedQuantity}
	if p.QuantityOnHand > 0 {
		pct := float64(p.CommittedQuantity) / float64(p.QuantityOnHand) * 100
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		a.CommitmentPercent = pct
	}
	return a
}
