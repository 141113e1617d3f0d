package service

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/schilling3003/shelflife-sales-app/internal/repository"
	"github.com/schilling3003/shelflife-sales-app/internal/seed"
)

type AdminService interface {
	SeedProducts(now time.Time) (int, error)
	SetAdmin(uid string) error
}

type adminService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewAdminService(productRepo repository.ProductRepository, userRepo repository.UserRepository) AdminService {
	return &adminService{productRepo: productRepo, userRepo: userRepo}
}

// SeedProducts bulk-loads the canonical catalog, overwriting existing
// rows by id so repeated seeding converges on the same state.
func (s *adminService) SeedProducts(now time.Time) (int, error) {
	count, err := s.productRepo.UpsertAll(seed.Products(now))
	if err != nil {
		return 0, err
	}
	log.Printf("Seeded %d products", count)
	return count, nil
}

// SetAdmin grants the elevated capability flag to the target user.
func (s *adminService) SetAdmin(uid string) error {
	id, err := uuid.Parse(uid)
	if err != nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.SetAdmin(id, true); err != nil {
		return ErrUserNotFound
	}
	log.Printf("Granted admin capability to user %s", uid)
	return nil
}
