// Package derive holds the pure product derivations behind the
// dashboard: freshness status, availability arithmetic, commitment
// validation, and the filter/sort/paginate pipeline. Nothing here
// touches the database, the HTTP layer, or the ambient clock — "now"
// is always an explicit argument so every function is deterministic.
package derive

import (
	"time"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
)

// Status is the freshness/risk bucket derived from a product's
// earliest expiry date. It is recomputed on every read, never stored.
type Status string

const (
	StatusHealthy      Status = "healthy"
	StatusAtRisk       Status = "at-risk"
	StatusExpiringSoon Status = "expiring-soon"
)

// Expiry horizons in days. Boundary values fall into the less urgent
// bucket (strict less-than).
const (
	expiringSoonDays = 30
	atRiskDays       = 90
)

// DaysUntil returns whole days from now until t, truncating toward
// zero. A t earlier than now yields a negative count.
func DaysUntil(now, t time.Time) int {
	return int(t.Sub(now).Hours() / 24)
}

// ClassifyStatus buckets a product by days remaining until MinExpiry.
// Total for any valid date: exactly one of the three statuses.
func ClassifyStatus(p model.Product, now time.Time) Status {
	daysToExpiry := DaysUntil(now, p.MinExpiry)
	if daysToExpiry < expiringSoonDays {
		return StatusExpiringSoon
	}
	if daysToExpiry < atRiskDays {
		return StatusAtRisk
	}
	return StatusHealthy
}
