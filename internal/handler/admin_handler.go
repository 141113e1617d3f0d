package handler

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/schilling3003/shelflife-sales-app/internal/service"
)

type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(s service.AdminService) *AdminHandler {
	return &AdminHandler{service: s}
}

// SeedData bulk-loads the canonical catalog. Failures come back as
// plain text so a client never tries to parse an error page as JSON.
func (h *AdminHandler) SeedData(c *fiber.Ctx) error {
	count, err := h.service.SeedProducts(time.Now())
	if err != nil {
		log.Printf("Error seeding data: %v", err)
		c.Set("Content-Type", "text/plain")
		return c.Status(500).SendString(err.Error())
	}
	return c.JSON(fiber.Map{"message": "Seeding successful", "count": count})
}

// SetAdmin grants the admin capability to the user named in the body.
// The caller only needs to be authenticated; its own admin-ness is not
// checked, mirroring the trust-the-client gap in the original app.
func (h *AdminHandler) SetAdmin(c *fiber.Ctx) error {
	var req struct {
		UID string `json:"uid"`
	}
	if err := c.BodyParser(&req); err != nil || req.UID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Bad Request: Missing uid in request body."})
	}

	if err := h.service.SetAdmin(req.UID); err != nil {
		log.Printf("Error setting admin for %s: %v", req.UID, err)
		c.Set("Content-Type", "text/plain")
		return c.Status(500).SendString(err.Error())
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("Successfully set admin claim for user %s", req.UID)})
}
