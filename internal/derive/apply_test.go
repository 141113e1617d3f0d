package derive

import (
	"testing"

	"github.com/google/uuid"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
)

func TestApplyCommitmentReturnsUpdatedCopy(t *testing.T) {
	p := model.Product{ID: "prod_1", QuantityOnHand: 150, CommittedQuantity: 25}

	updated := ApplyCommitment(p, 10)
	if updated.CommittedQuantity != 35 {
		t.Fatalf("got %d, want 35", updated.CommittedQuantity)
	}
	if p.CommittedQuantity != 25 {
		t.Fatalf("input mutated: %d", p.CommittedQuantity)
	}
	if updated.QuantityOnHand != 150 {
		t.Fatalf("on-hand changed: %d", updated.QuantityOnHand)
	}
}

func TestNewCommitmentRecord(t *testing.T) {
	p := model.Product{ID: "prod_1"}
	userID := uuid.New()

	rec := NewCommitmentRecord(p, 10, userID, testNow)
	if rec.ProductID != "prod_1" || rec.UserID != userID || rec.Quantity != 10 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if !rec.CommitmentDate.Equal(testNow) {
		t.Fatalf("unexpected date: %v", rec.CommitmentDate)
	}
}
