package listing

import (
	"math"
	"strconv"

	"github.com/cryptobazaar/goapi/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	defaultSortBy = "createdAt"
)

// SearchParams are the raw, optional, stringly-typed query parameters of a
// listing search. Binding happens at the transport layer; compilation never
// fails, malformed values fall back to defaults.
type SearchParams struct {
	Keyword   string `query:"keyword"`
	MinPrice  string `query:"minPrice"`
	MaxPrice  string `query:"maxPrice"`
	Status    string `query:"status"`
	Seller    string `query:"seller"`
	Buyer     string `query:"buyer"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
	Page      string `query:"page"`
	Limit     string `query:"limit"`
}

// CompiledQuery is the filter + sort + pagination spec produced from
// SearchParams. Filters excludes pagination so it can drive Count as well.
type CompiledQuery struct {
	Filters []FindAllOptionsFunc
	SortBy  string
	SortDir domain.SortDir
	Page    int32
	Limit   int32
}

// Offset computes in int64 so an absurd page cannot wrap into a
// negative skip. Anything past int32 is just an empty page anyway.
func (q *CompiledQuery) Offset() int32 {
	offset := int64(q.Page-1) * int64(q.Limit)
	if offset > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(offset)
}

// FindAllOptions returns the full option set for a paged FindAll.
func (q *CompiledQuery) FindAllOptions() []FindAllOptionsFunc {
	opts := make([]FindAllOptionsFunc, len(q.Filters), len(q.Filters)+2)
	copy(opts, q.Filters)
	opts = append(opts, WithSort(q.SortBy, q.SortDir))
	opts = append(opts, WithPagination(q.Offset(), q.Limit))
	return opts
}

// Compile translates the raw parameters into a CompiledQuery. Search is
// best-effort: malformed numeric inputs are replaced by defaults or
// dropped, never rejected.
func (p *SearchParams) Compile() *CompiledQuery {
	q := &CompiledQuery{
		SortBy:  defaultSortBy,
		SortDir: domain.SortDirDesc,
		Page:    DefaultPage,
		Limit:   DefaultLimit,
	}

	if p.Keyword != "" {
		q.Filters = append(q.Filters, WithKeyword(p.Keyword))
	}

	if min, err := strconv.ParseFloat(p.MinPrice, 64); err == nil {
		q.Filters = append(q.Filters, WithPriceGTE(min))
	}

	if max, err := strconv.ParseFloat(p.MaxPrice, 64); err == nil {
		q.Filters = append(q.Filters, WithPriceLTE(max))
	}

	// a public search defaults to active listings, an explicitly supplied
	// status is passed through uninterpreted
	if p.Status != "" {
		q.Filters = append(q.Filters, WithStatus(Status(p.Status)))
	} else {
		q.Filters = append(q.Filters, WithStatus(StatusActive))
	}

	if p.Seller != "" {
		q.Filters = append(q.Filters, WithSeller(domain.Address(p.Seller)))
	}

	if p.Buyer != "" {
		q.Filters = append(q.Filters, WithBuyer(domain.Address(p.Buyer)))
	}

	if p.SortBy != "" {
		q.SortBy = p.SortBy
	}

	// desc is the default, any other token sorts ascending
	if p.SortOrder != "" && p.SortOrder != "desc" {
		q.SortDir = domain.SortDirAsc
	}

	q.Page = parsePositiveInt(p.Page, DefaultPage)
	q.Limit = parsePositiveInt(p.Limit, DefaultLimit)

	return q
}

func parsePositiveInt(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n <= 0 {
		return fallback
	}
	return int32(n)
}
