// Package seed holds the canonical sample catalog loaded by the
// admin seeding endpoint. Expiry and sell-out dates are computed
// relative to the seed moment so the dashboard's status buckets stay
// meaningful no matter when the data is loaded.
package seed

import (
	"time"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
)

// Products builds the eight-product sample catalog with dates offset
// from now.
func Products(now time.Time) []model.Product {
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	return []model.Product{
		{
			ID:                "prod_1",
			Division:          "Bakery",
			ItemCode:          "BK-001",
			Brand:             "Hearthstone Mills",
			Description:       "Artisan Sourdough Loaf",
			PackSize:          12,
			Size:              "800g",
			MinExpiry:         day(15), // expiring-soon
			MaxExpiry:         day(25),
			ProjectedSellOut:  day(10),
			QuantityOnHand:    150,
			CommittedQuantity: 25,
		},
		{
			ID:                "prod_2",
			Division:          "Dairy",
			ItemCode:          "DY-015",
			Brand:             "Meadow Creek",
			Description:       "Organic Greek Yogurt",
			PackSize:          6,
			Size:              "150g",
			MinExpiry:         day(45), // at-risk
			MaxExpiry:         day(60),
			ProjectedSellOut:  day(40),
			QuantityOnHand:    200,
			CommittedQuantity: 150,
		},
		{
			ID:                "prod_3",
			Division:          "Produce",
			ItemCode:          "PR-052",
			Brand:             "Verde Farms",
			Description:       "Avocado Hass",
			PackSize:          1,
			Size:              "each",
			MinExpiry:         day(5), // expiring-soon
			MaxExpiry:         day(9),
			ProjectedSellOut:  day(3),
			QuantityOnHand:    300,
			CommittedQuantity: 100,
		},
		{
			ID:                "prod_4",
			Division:          "Beverages",
			ItemCode:          "BV-101",
			Brand:             "Alpine Springs",
			Description:       "Sparkling Mineral Water",
			PackSize:          24,
			Size:              "330ml",
			MinExpiry:         day(180), // healthy
			MaxExpiry:         day(365),
			ProjectedSellOut:  day(150),
			QuantityOnHand:    500,
			CommittedQuantity: 50,
		},
		{
			ID:                "prod_5",
			Division:          "Frozen",
			ItemCode:          "FZ-033",
			Brand:             "Forno Antico",
			Description:       "Neapolitan Pizza",
			PackSize:          1,
			Size:              "450g",
			MinExpiry:         day(88), // at-risk
			MaxExpiry:         day(120),
			ProjectedSellOut:  day(95),
			QuantityOnHand:    120,
			CommittedQuantity: 80,
		},
		{
			ID:                "prod_6",
			Division:          "Snacks",
			ItemCode:          "SN-089",
			Brand:             "Coastline Snacks",
			Description:       "Sea Salt Potato Chips",
			PackSize:          30,
			Size:              "40g",
			MinExpiry:         day(92), // healthy
			MaxExpiry:         day(150),
			ProjectedSellOut:  day(70),
			QuantityOnHand:    450,
			CommittedQuantity: 450, // fully committed
		},
		{
			ID:                "prod_7",
			Division:          "Dairy",
			ItemCode:          "DY-004",
			Brand:             "Meadow Creek",
			Description:       "Whole Milk Gallon",
			PackSize:          1,
			Size:              "1gal",
			MinExpiry:         day(12), // expiring-soon
			MaxExpiry:         day(18),
			ProjectedSellOut:  day(8),
			QuantityOnHand:    80,
			CommittedQuantity: 10,
		},
		{
			ID:                "prod_8",
			Division:          "Meat",
			ItemCode:          "MT-007",
			Brand:             "Highland Pastures",
			Description:       "Grass-fed Ribeye Steak",
			PackSize:          2,
			Size:              "12oz",
			MinExpiry:         day(8), // expiring-soon
			MaxExpiry:         day(14),
			ProjectedSellOut:  day(-2), // past sell-out date
			QuantityOnHand:    40,
			CommittedQuantity: 5,
		},
	}
}
