package listing

import (
	"fmt"
	"testing"
)

type rec struct {
	name   string
	phone  string
	status string
}

func fields(r rec) Fields {
	return Fields{
		Searchable: []string{r.name, r.phone},
		Filterable: map[string]string{"status": r.status},
	}
}

func sample() []rec {
	return []rec{
		{name: "Arun Kumar", phone: "9876543210", status: "New"},
		{name: "Bhavna Shah", phone: "9123456780", status: "Contacted"},
		{name: "Chetan Rao", phone: "9988776655", status: "New"},
		{name: "Divya Menon", phone: "9000011111", status: "Confirmed"},
	}
}

func TestApply_Search(t *testing.T) {
	t.Run("case-insensitive substring over all fields", func(t *testing.T) {
		got, meta := Apply(sample(), Query{Search: "arun"}, fields)
		if len(got) != 1 || got[0].name != "Arun Kumar" {
			t.Fatalf("unexpected result: %+v", got)
		}
		if meta.Total != 1 {
			t.Fatalf("expected total 1, got %d", meta.Total)
		}
	})

	t.Run("matches phone numbers", func(t *testing.T) {
		got, _ := Apply(sample(), Query{Search: "99887"}, fields)
		if len(got) != 1 || got[0].name != "Chetan Rao" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("empty search keeps everything", func(t *testing.T) {
		got, _ := Apply(sample(), Query{}, fields)
		if len(got) != 4 {
			t.Fatalf("expected 4, got %d", len(got))
		}
	})
}

func TestApply_Filters(t *testing.T) {
	t.Run("equality filter returns exact subset", func(t *testing.T) {
		got, _ := Apply(sample(), Query{Filters: map[string]string{"status": "New"}}, fields)
		if len(got) != 2 {
			t.Fatalf("expected 2, got %d", len(got))
		}
		for _, r := range got {
			if r.status != "New" {
				t.Fatalf("record %q leaked through status filter", r.name)
			}
		}
	})

	t.Run("All sentinel disables the filter but keeps search", func(t *testing.T) {
		got, _ := Apply(sample(), Query{Search: "shah", Filters: map[string]string{"status": FilterAll}}, fields)
		if len(got) != 1 || got[0].name != "Bhavna Shah" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("search and filter combine", func(t *testing.T) {
		got, _ := Apply(sample(), Query{Search: "a", Filters: map[string]string{"status": "Confirmed"}}, fields)
		if len(got) != 1 || got[0].name != "Divya Menon" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestPaginate(t *testing.T) {
	items := make([]int, 0, 50)
	for i := 0; i < 50; i++ {
		items = append(items, i)
	}

	t.Run("first page slices pageSize items", func(t *testing.T) {
		page, meta := Paginate(items, 1, DefaultPageSize)
		if len(page) != 24 || page[0] != 0 || page[23] != 23 {
			t.Fatalf("unexpected page: len=%d", len(page))
		}
		if meta.TotalPages != 3 || meta.Total != 50 {
			t.Fatalf("unexpected meta: %+v", meta)
		}
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		page, _ := Paginate(items, 3, DefaultPageSize)
		if len(page) != 2 || page[0] != 48 {
			t.Fatalf("unexpected page: %+v", page)
		}
	})

	t.Run("beyond the last page is empty but meta keeps totals", func(t *testing.T) {
		page, meta := Paginate(items, 9, DefaultPageSize)
		if len(page) != 0 {
			t.Fatalf("expected empty page, got %d items", len(page))
		}
		if meta.TotalPages != 3 {
			t.Fatalf("expected 3 total pages, got %d", meta.TotalPages)
		}
	})

	t.Run("page below one clamps to one", func(t *testing.T) {
		page, meta := Paginate(items, 0, DefaultPageSize)
		if len(page) != 24 || meta.Page != 1 {
			t.Fatalf("unexpected clamp: len=%d meta=%+v", len(page), meta)
		}
	})

	t.Run("zero page size falls back to default", func(t *testing.T) {
		_, meta := Paginate(items, 1, 0)
		if meta.PageSize != DefaultPageSize {
			t.Fatalf("expected default page size, got %d", meta.PageSize)
		}
	})

	t.Run("empty input yields zero pages", func(t *testing.T) {
		page, meta := Paginate([]int{}, 1, DefaultPageSize)
		if len(page) != 0 || meta.TotalPages != 0 {
			t.Fatalf("unexpected: %+v", meta)
		}
	})
}

func TestApply_FilterChangeRestartsAtFirstPage(t *testing.T) {
	// The page is an input here, so the reset lives with the caller; what the
	// projection must guarantee is that a narrowed result set reports totals
	// the controls can clamp to.
	var many []rec
	for i := 0; i < 60; i++ {
		status := "New"
		if i%2 == 0 {
			status = "Contacted"
		}
		many = append(many, rec{name: fmt.Sprintf("Lead %02d", i), status: status})
	}

	_, meta := Apply(many, Query{Page: 3}, fields)
	if meta.TotalPages != 3 {
		t.Fatalf("expected 3 pages unfiltered, got %d", meta.TotalPages)
	}

	_, meta = Apply(many, Query{Page: 3, Filters: map[string]string{"status": "New"}}, fields)
	if meta.TotalPages != 2 {
		t.Fatalf("expected 2 pages filtered, got %d", meta.TotalPages)
	}
	if meta.Total != 30 {
		t.Fatalf("expected 30 filtered records, got %d", meta.Total)
	}
}
