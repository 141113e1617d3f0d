package derive

import (
	"fmt"
	"testing"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
)

func numberedProducts(n int) []model.Product {
	out := make([]model.Product, n)
	for i := range out {
		out[i] = model.Product{ID: fmt.Sprintf("p%02d", i+1)}
	}
	return out
}

func TestPaginateSlices(t *testing.T) {
	in := numberedProducts(25)

	page, info := Paginate(in, 10, 1)
	if len(page) != 10 || page[0].ID != "p01" || page[9].ID != "p10" {
		t.Fatalf("unexpected page 1: %v", ids(page))
	}
	if info.TotalPages != 3 || info.TotalItems != 25 || info.Page != 1 {
		t.Fatalf("unexpected info: %+v", info)
	}

	page, info = Paginate(in, 10, 3)
	if len(page) != 5 || page[0].ID != "p21" {
		t.Fatalf("unexpected page 3: %v", ids(page))
	}
	if info.Page != 3 {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestPaginateClampsOutOfRangePages(t *testing.T) {
	in := numberedProducts(25)

	_, info := Paginate(in, 10, 0)
	if info.Page != 1 {
		t.Fatalf("page 0 should clamp to 1, got %d", info.Page)
	}

	_, info = Paginate(in, 10, -3)
	if info.Page != 1 {
		t.Fatalf("negative page should clamp to 1, got %d", info.Page)
	}

	page, info := Paginate(in, 10, 99)
	if info.Page != 3 {
		t.Fatalf("page 99 should clamp to 3, got %d", info.Page)
	}
	if len(page) != 5 {
		t.Fatalf("clamped page should hold the tail, got %d items", len(page))
	}
}

func TestPaginateEmptyList(t *testing.T) {
	page, info := Paginate(nil, 10, 1)
	if len(page) != 0 {
		t.Fatalf("expected empty page, got %v", ids(page))
	}
	// "Page 1 of 1" even with nothing to show.
	if info.Page != 1 || info.TotalPages != 1 || info.TotalItems != 0 {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestPaginateConcatenationReconstructsInput(t *testing.T) {
	for _, perPage := range PerPageOptions {
		in := numberedProducts(53)
		var all []model.Product
		_, info := Paginate(in, perPage, 1)
		for p := 1; p <= info.TotalPages; p++ {
			page, _ := Paginate(in, perPage, p)
			all = append(all, page...)
		}
		assertIDs(t, all, ids(in)...)
	}
}

func TestNormalizePerPage(t *testing.T) {
	cases := map[int]int{10: 10, 20: 20, 50: 50, 0: 10, -1: 10, 7: 10, 1000: 10}
	for in, want := range cases {
		if got := NormalizePerPage(in); got != want {
			t.Errorf("NormalizePerPage(%d): got %d, want %d", in, got, want)
		}
	}
}
