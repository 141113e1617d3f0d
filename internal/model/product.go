package model

import "time"

// Product is one perishable catalog line. Ids are assigned by the seed
// (e.g. "prod_1"), not generated here. CommittedQuantity is a
// denormalized counter: it is expected to equal the sum of the
// product's SalesCommitment quantities, maintained by increment on
// write rather than recomputed from the log.
type Product struct {
	ID                string    `gorm:"type:varchar(50);primary_key" json:"id"`
	Division          string    `gorm:"type:varchar(100);not null" json:"division" validate:"required"`
	ItemCode          string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"itemCode" validate:"required"`
	Brand             string    `gorm:"type:varchar(100)" json:"brand"`
	Description       string    `gorm:"type:varchar(255);not null" json:"description" validate:"required"`
	PackSize          int       `gorm:"default:1" json:"packSize"`
	Size              string    `gorm:"type:varchar(50)" json:"size"`
	MinExpiry         time.Time `gorm:"not null" json:"minExpiry"`
	MaxExpiry         time.Time `gorm:"not null" json:"maxExpiry"`
	ProjectedSellOut  time.Time `gorm:"not null" json:"projectedSellOut"`
	QuantityOnHand    int       `gorm:"default:0" json:"quantityOnHand" validate:"gte=0"`
	CommittedQuantity int       `gorm:"default:0" json:"committedQuantity" validate:"gte=0"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
