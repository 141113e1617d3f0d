package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/schilling3003/shelflife-sales-app/internal/derive"
	"github.com/schilling3003/shelflife-sales-app/internal/service"
)

type DashboardHandler struct {
	service service.CatalogService
}

func NewDashboardHandler(s service.CatalogService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetProducts renders one page of the product table. All derivations
// run against a single "now" captured at the top of the request.
func (h *DashboardHandler) GetProducts(c *fiber.Ctx) error {
	query := service.DashboardQuery{
		Filter: derive.FilterCriteria{
			Division:      c.Query("division", derive.FilterAll),
			Brand:         c.Query("brand", derive.FilterAll),
			Status:        c.Query("status", derive.FilterAll),
			AvailableOnly: c.QueryBool("availableOnly", false),
		},
		Sort:    derive.SortKey(c.Query("sort", string(derive.SortSellOutAsc))),
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("perPage", derive.DefaultPerPage),
	}

	page, err := h.service.GetDashboard(query, time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(page)
}
