package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
)

type CommitmentRepository interface {
	Create(tx *gorm.DB, commitment *model.SalesCommitment) error
	FindByUser(userID uuid.UUID) ([]model.SalesCommitment, error)
}

type commitmentRepo struct {
	db *gorm.DB
}

func NewCommitmentRepo(db *gorm.DB) CommitmentRepository {
	return &commitmentRepo{db}
}

// Create appends one commitment to the log. It takes the caller's tx
// so the append rides in the same transaction as the counter update.
func (r *commitmentRepo) Create(tx *gorm.DB, commitment *model.SalesCommitment) error {
	return tx.Create(commitment).Error
}

func (r *commitmentRepo) FindByUser(userID uuid.UUID) ([]model.SalesCommitment, error) {
	var commitments []model.SalesCommitment
	err := r.db.Where("user_id = ?", userID).Order("commitment_date DESC").Find(&commitments).Error
	return commitments, err
}
