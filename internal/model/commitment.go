package model

import (
	"time"

	"github.com/google/uuid"
)

// SalesCommitment is one user action pledging to sell a quantity of a
// product. Rows are append-only: the log is never updated or deleted,
// independent of the aggregate counter on Product.
type SalesCommitment struct {
	BaseModel
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"userId" validate:"uuid_required"`
	User           *User     `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	ProductID      string    `gorm:"type:varchar(50);not null;index" json:"productId" validate:"required"`
	Quantity       int       `gorm:"not null" json:"committedQuantity" validate:"required,gt=0"`
	CommitmentDate time.Time `gorm:"not null" json:"commitmentDate"`
}
