package derive

import (
	"fmt"
	"math"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
)

// RejectReason identifies why a proposed commitment quantity was
// turned down.
type RejectReason string

const (
	RejectNotPositive      RejectReason = "not-positive"
	RejectNotInteger       RejectReason = "not-integer"
	RejectExceedsAvailable RejectReason = "exceeds-available"
)

// RejectionError is returned when a proposed commitment fails
// validation. Remaining always carries the exact sellable quantity at
// validation time so callers can show it to the user.
type RejectionError struct {
	Reason    RejectReason
	Remaining int
}

func (e *RejectionError) Error() string {
	switch e.Reason {
	case RejectNotPositive:
		return "quantity must be positive"
	case RejectNotInteger:
		return "quantity must be a whole number"
	default:
		return fmt.Sprintf("commitment cannot exceed remaining quantity of %d", e.Remaining)
	}
}

// ValidateCommitment checks a proposed commit quantity against the
// product's availability at this moment. The quantity arrives as a
// float64 because it crosses the JSON boundary; a fractional value is
// rejected rather than truncated. On success the integral quantity is
// returned. Validation reads the current snapshot only — it reserves
// nothing (the storage layer re-checks on write).
func ValidateCommitment(p model.Product, quantity float64) (int, error) {
	remaining := ComputeAvailability(p).Available

	if quantity != math.Trunc(quantity) || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return 0, &RejectionError{Reason: RejectNotInteger, Remaining: remaining}
	}
	qty := int(quantity)
	if qty <= 0 {
		return 0, &RejectionError{Reason: RejectNotPositive, Remaining: remaining}
	}
	if qty > remaining {
		return 0, &RejectionError{Reason: RejectExceedsAvailable, Remaining: remaining}
	}
	return qty, nil
}
