package derive

import "github.com/schilling3003/shelflife-sales-app/internal/model"

// DefaultPerPage is used when a requested page size is not one of the
// supported options.
const DefaultPerPage = 10

// PerPageOptions are the page sizes the dashboard offers.
var PerPageOptions = []int{10, 20, 50}

// PageInfo describes the slice returned by Paginate, matching the
// "Page X of Y" display. TotalPages is at least 1 so an empty list
// still renders "page 1 of 1", and Page is always within
// [1, TotalPages].
type PageInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// NormalizePerPage snaps a requested page size onto the supported
// options, falling back to DefaultPerPage.
func NormalizePerPage(perPage int) int {
	for _, opt := range PerPageOptions {
		if perPage == opt {
			return perPage
		}
	}
	return DefaultPerPage
}

// Paginate slices a 1-based page out of an ordered list. Out-of-range
// pages clamp into [1, totalPages] rather than erroring, so the pages
// concatenated in order always reconstruct the input exactly once.
func Paginate(products []model.Product, perPage, page int) ([]model.Product, PageInfo) {
	perPage = NormalizePerPage(perPage)

	totalItems := len(products)
	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	info := PageInfo{
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
	return products[start:end], info
}
