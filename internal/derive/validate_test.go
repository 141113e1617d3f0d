package derive

import (
	"errors"
	"testing"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
)

func stocked(onHand, committed int) model.Product {
	return model.Product{ID: "p", QuantityOnHand: onHand, CommittedQuantity: committed}
}

func assertRejected(t *testing.T, err error, reason RejectReason, remaining int) {
	t.Helper()
	var rej *RejectionError
	if !errors.As(err, &rej) {
		t.Fatalf("expected RejectionError, got %v", err)
	}
	if rej.Reason != reason {
		t.Fatalf("reason: got %q, want %q", rej.Reason, reason)
	}
	if rej.Remaining != remaining {
		t.Fatalf("remaining: got %d, want %d", rej.Remaining, remaining)
	}
}

func TestValidateCommitmentRejectsNonPositive(t *testing.T) {
	p := stocked(150, 25)

	_, err := ValidateCommitment(p, 0)
	assertRejected(t, err, RejectNotPositive, 125)

	_, err = ValidateCommitment(p, -5)
	assertRejected(t, err, RejectNotPositive, 125)
}

func TestValidateCommitmentRejectsNonInteger(t *testing.T) {
	_, err := ValidateCommitment(stocked(150, 25), 2.5)
	assertRejected(t, err, RejectNotInteger, 125)
}

func TestValidateCommitmentRejectsExceedsAvailable(t *testing.T) {
	_, err := ValidateCommitment(stocked(150, 25), 126)
	assertRejected(t, err, RejectExceedsAvailable, 125)
}

func TestValidateCommitmentAcceptsExactRemaining(t *testing.T) {
	qty, err := ValidateCommitment(stocked(150, 25), 125)
	if err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if qty != 125 {
		t.Fatalf("got %d, want 125", qty)
	}
}

func TestValidateCommitmentFullyCommittedProduct(t *testing.T) {
	// Every positive quantity is rejected with remaining 0.
	p := stocked(450, 450)
	for _, q := range []float64{1, 10, 450} {
		_, err := ValidateCommitment(p, q)
		assertRejected(t, err, RejectExceedsAvailable, 0)
	}
}
