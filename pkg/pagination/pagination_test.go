package pagination

import "testing"

func TestNormalize(t *testing.T) {
	p := Normalize(Params{Page: 0, PageSize: 0})
	if p.Page != 1 {
		t.Fatalf("expected page 1, got %d", p.Page)
	}
	if p.PageSize != DefaultPageSize {
		t.Fatalf("expected page size %d, got %d", DefaultPageSize, p.PageSize)
	}

	p = Normalize(Params{Page: 3, PageSize: 1000})
	if p.PageSize != MaxPageSize {
		t.Fatalf("expected page size capped at %d, got %d", MaxPageSize, p.PageSize)
	}
	if p.Offset() != 2*MaxPageSize {
		t.Fatalf("expected offset %d, got %d", 2*MaxPageSize, p.Offset())
	}
}

func TestNewPage(t *testing.T) {
	page := NewPage(Params{Page: 2, PageSize: 50}, 120)
	if page.CurrentPage != 2 {
		t.Fatalf("expected current page 2, got %d", page.CurrentPage)
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", page.TotalPages)
	}
	if page.TotalItems != 120 {
		t.Fatalf("expected 120 total items, got %d", page.TotalItems)
	}
	if page.ItemsPerPage != 50 {
		t.Fatalf("expected items per page 50, got %d", page.ItemsPerPage)
	}
	if !page.HasNextPage {
		t.Fatal("expected next page")
	}
	if !page.HasPreviousPage {
		t.Fatal("expected previous page")
	}
}

func TestNewPageEmpty(t *testing.T) {
	page := NewPage(Params{Page: 1, PageSize: 50}, 0)
	if page.TotalPages != 0 {
		t.Fatalf("expected 0 total pages, got %d", page.TotalPages)
	}
	if page.HasNextPage || page.HasPreviousPage {
		t.Fatal("expected no navigation for an empty listing")
	}
}

func TestNewPagePastTheEnd(t *testing.T) {
	page := NewPage(Params{Page: 9, PageSize: 50}, 120)
	if page.CurrentPage != 9 {
		t.Fatalf("expected current page 9, got %d", page.CurrentPage)
	}
	if page.HasNextPage {
		t.Fatal("expected no next page past the end")
	}
	if !page.HasPreviousPage {
		t.Fatal("expected previous page past the end")
	}
}
