package derive

import (
	"time"

	"github.com/google/uuid"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
)

// ApplyCommitment returns a copy of the product with the accepted
// quantity folded into its committed counter. This is the optimistic
// in-memory transition; the persisted increment happens separately at
// the storage boundary.
func ApplyCommitment(p model.Product, quantity int) model.Product {
	p.CommittedQuantity += quantity
	return p
}

// NewCommitmentRecord builds the append-only log entry for an
// accepted commitment, in the shape written to the store.
func NewCommitmentRecord(p model.Product, quantity int, userID uuid.UUID, at time.Time) model.SalesCommitment {
	return model.SalesCommitment{
		UserID:         userID,
		ProductID:      p.ID,
		Quantity:       quantity,
		CommitmentDate: at,
	}
}
