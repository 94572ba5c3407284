package pagination_test

import (
	"net/url"
	"testing"

	"github.com/JaimeStill/image-processing/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestPageRequestFromQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
		wantSearch   string
	}{
		{"empty", "", 1, 20, ""},
		{"explicit", "page=3&page_size=10", 3, 10, ""},
		{"clamped", "page=-1&page_size=1000", 1, 100, ""},
		{"search", "search=report", 1, 20, "report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req := pagination.PageRequestFromQuery(values, cfg)

			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}

			got := ""
			if req.Search != nil {
				got = *req.Search
			}
			if got != tt.wantSearch {
				t.Errorf("Search = %q, want %q", got, tt.wantSearch)
			}
		})
	}
}

func TestPageRequest_Query(t *testing.T) {
	search := "png"
	req := pagination.PageRequest{Page: 2, PageSize: 5, Search: &search}

	if got := req.Query().Encode(); got != "page=2&page_size=5&search=png" {
		t.Errorf("Query().Encode() = %q", got)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		pageSize  int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"empty", 0, 1, 10, 1, false, false},
		{"exact", 20, 1, 10, 2, true, false},
		{"remainder", 21, 3, 10, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult[int](nil, tt.total, tt.page, tt.pageSize)

			if result.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantPages)
			}
			if result.HasNext() != tt.wantNext {
				t.Errorf("HasNext() = %v, want %v", result.HasNext(), tt.wantNext)
			}
			if result.HasPrevious() != tt.wantPrev {
				t.Errorf("HasPrevious() = %v, want %v", result.HasPrevious(), tt.wantPrev)
			}
			if result.Data == nil {
				t.Error("Data is nil, want empty slice")
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	c := pagination.Config{DefaultPageSize: 50, MaxPageSize: 10}
	if err := c.Finalize(nil); err == nil {
		t.Error("Finalize() succeeded with default > max, want error")
	}

	c = pagination.Config{}
	if err := c.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if c.DefaultPageSize != 20 || c.MaxPageSize != 100 {
		t.Errorf("defaults = %d/%d, want 20/100", c.DefaultPageSize, c.MaxPageSize)
	}
}
