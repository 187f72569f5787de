package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

func paramsForQuery(t *testing.T, query string) PaginationParams {
	t.Helper()

	app := fiber.New()
	var got PaginationParams
	app.Get("/", func(c *fiber.Ctx) error {
		got = GetPaginationParams(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/"+query, nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return got
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int64
		wantLimit int64
		wantSort  string
	}{
		{name: "Defaults", query: "", wantPage: 1, wantLimit: 10, wantSort: "-created_at"},
		{name: "Explicit Values", query: "?page=3&limit=25&sort=price", wantPage: 3, wantLimit: 25, wantSort: "price"},
		{name: "Page Floor", query: "?page=0", wantPage: 1, wantLimit: 10, wantSort: "-created_at"},
		{name: "Negative Page", query: "?page=-5", wantPage: 1, wantLimit: 10, wantSort: "-created_at"},
		{name: "Limit Clamped High", query: "?limit=500", wantPage: 1, wantLimit: 100, wantSort: "-created_at"},
		{name: "Limit Clamped Low", query: "?limit=0", wantPage: 1, wantLimit: 1, wantSort: "-created_at"},
		{name: "Garbage Values", query: "?page=abc&limit=xyz", wantPage: 1, wantLimit: 10, wantSort: "-created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paramsForQuery(t, tt.query)
			if got.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", got.Limit, tt.wantLimit)
			}
			if got.Sort != tt.wantSort {
				t.Errorf("Sort = %q, want %q", got.Sort, tt.wantSort)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	p := PaginationParams{Page: 3, Limit: 10}
	if got := p.Skip(); got != 20 {
		t.Errorf("Skip() = %d, want 20", got)
	}
}

func TestSortSpec(t *testing.T) {
	tests := []struct {
		name string
		sort string
		want bson.D
	}{
		{name: "Descending", sort: "-created_at", want: bson.D{{Key: "created_at", Value: -1}}},
		{name: "Ascending", sort: "price_per_unit", want: bson.D{{Key: "price_per_unit", Value: 1}}},
		{name: "Bare Dash", sort: "-", want: bson.D{{Key: "created_at", Value: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaginationParams{Sort: tt.sort}.SortSpec()
			if len(got) != 1 || got[0].Key != tt.want[0].Key || got[0].Value != tt.want[0].Value {
				t.Errorf("SortSpec() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPaginationResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page           int64
		limit          int64
		wantTotalPages int64
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{name: "Middle Page", total: 25, page: 2, limit: 10, wantTotalPages: 3, wantHasNext: true, wantHasPrev: true},
		{name: "First Page", total: 25, page: 1, limit: 10, wantTotalPages: 3, wantHasNext: true, wantHasPrev: false},
		{name: "Last Page", total: 25, page: 3, limit: 10, wantTotalPages: 3, wantHasNext: false, wantHasPrev: true},
		{name: "Exact Fit", total: 30, page: 3, limit: 10, wantTotalPages: 3, wantHasNext: false, wantHasPrev: true},
		{name: "Empty", total: 0, page: 1, limit: 10, wantTotalPages: 0, wantHasNext: false, wantHasPrev: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewPaginationResult(nil, tt.total, tt.page, tt.limit)
			p := res.Pagination
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantHasNext)
			}
			if p.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.wantHasPrev)
			}
		})
	}
}
