package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/schilling3003/shelflife-sales-app/internal/derive"
	"github.com/schilling3003/shelflife-sales-app/internal/middleware"
	"github.com/schilling3003/shelflife-sales-app/internal/service"
)

type CommitmentHandler struct {
	service service.CommitmentService
}

func NewCommitmentHandler(s service.CommitmentService) *CommitmentHandler {
	return &CommitmentHandler{service: s}
}

type commitRequest struct {
	// float64 on purpose: a fractional quantity must be rejected with
	// its own reason, not silently truncated by integer decoding.
	Quantity float64 `json:"quantity"`
}

// CreateCommitment records a pledge to sell against a product and
// returns the updated product snapshot for immediate re-render.
func (h *CommitmentHandler) CreateCommitment(c *fiber.Ctx) error {
	var req commitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
	}

	updated, err := h.service.Commit(c.Params("id"), req.Quantity, user, time.Now())
	if err != nil {
		var rejection *derive.RejectionError
		switch {
		case errors.As(err, &rejection):
			return c.Status(422).JSON(fiber.Map{
				"error":     rejection.Error(),
				"reason":    rejection.Reason,
				"remaining": rejection.Remaining,
			})
		case errors.Is(err, service.ErrProductNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(201).JSON(fiber.Map{"message": "Commitment recorded", "data": updated})
}

// GetUserCommitments lists the commitment history for one user.
func (h *CommitmentHandler) GetUserCommitments(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	views, err := h.service.ListForUser(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(views)
}
