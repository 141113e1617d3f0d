package service

import (
	"time"

	"github.com/schilling3003/shelflife-sales-app/internal/derive"
	"github.com/schilling3003/shelflife-sales-app/internal/model"
	"github.com/schilling3003/shelflife-sales-app/internal/repository"
)

// DashboardQuery carries the caller's filter, sort, and paging choices
// for one render of the product table.
type DashboardQuery struct {
	Filter  derive.FilterCriteria
	Sort    derive.SortKey
	Page    int
	PerPage int
}

// ProductView is one table row: the raw product plus every derived
// field the dashboard paints. Derived values are recomputed per
// request because status is a function of wall-clock time.
type ProductView struct {
	model.Product
	Status               derive.Status `json:"status"`
	AvailableQuantity    int           `json:"availableQuantity"`
	CommitmentPercentage float64       `json:"commitmentPercentage"`
	DaysToSellOut        int           `json:"daysToSellOut"`
}

// DashboardPage is the rendered page plus its "page X of Y" metadata.
type DashboardPage struct {
	Items    []ProductView   `json:"items"`
	PageInfo derive.PageInfo `json:"pageInfo"`
}

type CatalogService interface {
	GetDashboard(q DashboardQuery, now time.Time) (*DashboardPage, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

// GetDashboard runs the filter → sort → paginate pipeline over the
// current catalog and decorates the surviving rows with their derived
// fields.
func (s *catalogService) GetDashboard(q DashboardQuery, now time.Time) (*DashboardPage, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	filtered := derive.Filter(products, q.Filter, now)
	sorted := derive.Sort(filtered, q.Sort)
	page, info := derive.Paginate(sorted, q.PerPage, q.Page)

	items := make([]ProductView, len(page))
	for i, p := range page {
		items[i] = NewProductView(p, now)
	}
	return &DashboardPage{Items: items, PageInfo: info}, nil
}

// NewProductView decorates a product with its derived fields.
func NewProductView(p model.Product, now time.Time) ProductView {
	avail := derive.ComputeAvailability(p)
	return ProductView{
		Product:              p,
		Status:               derive.ClassifyStatus(p, now),
		AvailableQuantity:    avail.Available,
		CommitmentPercentage: avail.CommitmentPercent,
		DaysToSellOut:        derive.DaysUntil(now, p.ProjectedSellOut),
	}
}
