package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
	"github.com/schilling3003/shelflife-sales-app/internal/repository"
)

type UserHandler struct {
	userRepo repository.UserRepository
}

func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// GetUsers lists all sales representatives.
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return c.JSON(responses)
}
