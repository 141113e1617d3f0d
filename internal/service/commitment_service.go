package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/schilling3003/shelflife-sales-app/internal/derive"
	"github.com/schilling3003/shelflife-sales-app/internal/model"
	"github.com/schilling3003/shelflife-sales-app/internal/repository"
	"github.com/schilling3003/shelflife-sales-app/internal/ws"
)

var ErrProductNotFound = errors.New("product not found")

// CommitmentView is one row of a user's commitment history. A
// commitment whose product has left the catalog still renders, with
// placeholder text, rather than failing the whole view.
type CommitmentView struct {
	ID             uuid.UUID `json:"id"`
	ProductID      string    `json:"productId"`
	Description    string    `json:"description"`
	Brand          string    `json:"brand"`
	Quantity       int       `json:"committedQuantity"`
	CommitmentDate time.Time `json:"commitmentDate"`
}

type CommitmentService interface {
	Commit(productID string, quantity float64, user *model.User, now time.Time) (*model.Product, error)
	ListForUser(userID uuid.UUID) ([]CommitmentView, error)
}

type commitmentService struct {
	productRepo    repository.ProductRepository
	commitmentRepo repository.CommitmentRepository
	db             *gorm.DB
	wsHub          *ws.Hub
}

func NewCommitmentService(pRepo repository.ProductRepository, cRepo repository.CommitmentRepository, db *gorm.DB, hub *ws.Hub) CommitmentService {
	return &commitmentService{
		productRepo:    pRepo,
		commitmentRepo: cRepo,
		db:             db,
		wsHub:          hub,
	}
}

// Commit validates a proposed quantity against the caller's snapshot,
// then applies it with a guarded increment and appends the log entry
// in one transaction. The guard re-checks availability at write time,
// so two racing commits can no longer jointly overshoot on-hand
// stock; the loser is rejected with the then-current remainder.
func (s *commitmentService) Commit(productID string, quantity float64, user *model.User, now time.Time) (*model.Product, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// Local validation first: a bad quantity never reaches the store.
	qty, err := derive.ValidateCommitment(*product, quantity)
	if err != nil {
		return nil, err
	}

	record := derive.NewCommitmentRecord(*product, qty, user.ID, now)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.CommitStock(tx, productID, qty); err != nil {
			return err
		}
		return s.commitmentRepo.Create(tx, &record)
	})
	if errors.Is(err, repository.ErrInsufficientStock) {
		// Lost the race: report the remainder as it stands now.
		remaining := 0
		if current, ferr := s.productRepo.FindByID(productID); ferr == nil {
			remaining = derive.ComputeAvailability(*current).Available
		}
		return nil, &derive.RejectionError{Reason: derive.RejectExceedsAvailable, Remaining: remaining}
	}
	if err != nil {
		return nil, err
	}

	updated := derive.ApplyCommitment(*product, qty)

	go s.wsHub.BroadcastCommitment(ws.CommitmentEvent{
		ProductID:         updated.ID,
		Description:       updated.Description,
		Quantity:          qty,
		CommittedQuantity: updated.CommittedQuantity,
		UserID:            user.ID.String(),
		UserName:          user.DisplayName(),
	})

	return &updated, nil
}

// ListForUser joins a user's commitment log against the catalog.
func (s *commitmentService) ListForUser(userID uuid.UUID) ([]CommitmentView, error) {
	commitments, err := s.commitmentRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	views := make([]CommitmentView, len(commitments))
	for i, c := range commitments {
		view := CommitmentView{
			ID:             c.ID,
			ProductID:      c.ProductID,
			Description:    "Unknown Product",
			Brand:          "-",
			Quantity:       c.Quantity,
			CommitmentDate: c.CommitmentDate,
		}
		if p, ok := byID[c.ProductID]; ok {
			view.Description = p.Description
			view.Brand = p.Brand
		}
		views[i] = view
	}
	return views, nil
}
