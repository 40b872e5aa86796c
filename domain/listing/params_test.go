package listing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/cryptobazaar/goapi/domain"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		params      SearchParams
		wantFilters int
		wantSortBy  string
		wantSortDir domain.SortDir
		wantPage    int32
		wantLimit   int32
	}{
		{
			name:        "defaults",
			params:      SearchParams{},
			wantFilters: 1, // status defaults to active
			wantSortBy:  "createdAt",
			wantSortDir: domain.SortDirDesc,
			wantPage:    1,
			wantLimit:   10,
		},
		{
			name: "all filters",
			params: SearchParams{
				Keyword:  "keyboard",
				MinPrice: "0.5",
				MaxPrice: "2",
				Status:   "sold",
				Seller:   "0xAB",
				Buyer:    "0xCD",
			},
			wantFilters: 6,
			wantSortBy:  "createdAt",
			wantSortDir: domain.SortDirDesc,
			wantPage:    1,
			wantLimit:   10,
		},
		{
			name:        "malformed prices are dropped",
			params:      SearchParams{MinPrice: "cheap", MaxPrice: "1e"},
			wantFilters: 1,
			wantSortBy:  "createdAt",
			wantSortDir: domain.SortDirDesc,
			wantPage:    1,
			wantLimit:   10,
		},
		{
			name:        "ascending sort on price",
			params:      SearchParams{SortBy: "price", SortOrder: "asc"},
			wantFilters: 1,
			wantSortBy:  "price",
			wantSortDir: domain.SortDirAsc,
			wantPage:    1,
			wantLimit:   10,
		},
		{
			name:        "explicit desc",
			params:      SearchParams{SortOrder: "desc"},
			wantFilters: 1,
			wantSortBy:  "createdAt",
			wantSortDir: domain.SortDirDesc,
			wantPage:    1,
			wantLimit:   10,
		},
		{
			name:        "paging",
			params:      SearchParams{Page: "3", Limit: "25"},
			wantFilters: 1,
			wantSortBy:  "createdAt",
			wantSortDir: domain.SortDirDesc,
			wantPage:    3,
			wantLimit:   25,
		},
		{
			name:        "malformed paging falls back",
			params:      SearchParams{Page: "zero", Limit: "-5"},
			wantFilters: 1,
			wantSortBy:  "createdAt",
			wantSortDir: domain.SortDirDesc,
			wantPage:    1,
			wantLimit:   10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			q := tt.params.Compile()
			req.Len(q.Filters, tt.wantFilters)
			req.Equal(tt.wantSortBy, q.SortBy)
			req.Equal(tt.wantSortDir, q.SortDir)
			req.Equal(tt.wantPage, q.Page)
			req.Equal(tt.wantLimit, q.Limit)
		})
	}
}

func TestCompileFilterValues(t *testing.T) {
	req := require.New(t)

	p := SearchParams{
		Keyword:  "keyboard",
		MinPrice: "0.5",
		MaxPrice: "2",
		Seller:   "0xAB",
	}
	opts, err := GetFindAllOptions(p.Compile().Filters...)
	req.NoError(err)
	req.Equal("keyboard", *opts.Keyword)
	req.Equal(0.5, *opts.PriceGTE)
	req.Equal(float64(2), *opts.PriceLTE)
	req.Equal(StatusActive, *opts.Status)
	req.Equal(domain.Address("0xab"), *opts.Seller)
	req.Nil(opts.Buyer)
}

func TestOffset(t *testing.T) {
	q := CompiledQuery{Page: 3, Limit: 25}
	if got := q.Offset(); got != 50 {
		t.Errorf("Offset() = %v, want %v", got, 50)
	}

	// a huge page must not wrap into a negative skip
	q = CompiledQuery{Page: 300000000, Limit: 10}
	if got := q.Offset(); got != math.MaxInt32 {
		t.Errorf("Offset() = %v, want %v", got, int32(math.MaxInt32))
	}
}
