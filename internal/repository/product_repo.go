package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
)

// ErrInsufficientStock is returned by CommitStock when the requested
// quantity no longer fits the product's remaining availability at
// write time.
var ErrInsufficientStock = errors.New("insufficient available quantity")

type ProductRepository interface {
	UpsertAll(products []model.Product) (int, error)
	FindAll() ([]model.Product, error)
	FindByID(id string) (*model.Product, error)
	CommitStock(tx *gorm.DB, id string, quantity int) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// UpsertAll writes the catalog in one batch, overwriting existing rows
// by id so seeding is idempotent.
func (r *productRepo) UpsertAll(products []model.Product) (int, error) {
	if len(products) == 0 {
		return 0, errors.New("no product data to seed")
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&products).Error
	if err != nil {
		return 0, err
	}
	return len(products), nil
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("id").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CommitStock performs the guarded increment that closes the
// overcommit window: the committed counter only moves if the quantity
// still fits the remaining availability, in a single conditional
// UPDATE. Zero rows affected means another writer got there first (or
// the product is gone) and the commit must be rejected.
func (r *productRepo) CommitStock(tx *gorm.DB, id string, quantity int) error {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND quantity_on_hand - committed_quantity >= ?", id, quantity).
		Update("committed_quantity", gorm.Expr("committed_quantity + ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}
