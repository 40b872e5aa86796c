package listing

import (
	"time"

	"github.com/cryptobazaar/goapi/base/ctx"
	"github.com/cryptobazaar/goapi/domain"
)

// Status is the lifecycle state of a listing
type Status string

const (
	StatusActive    Status = "active"
	StatusSold      Status = "sold"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSold, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted
func (s Status) IsTerminal() bool {
	return s == StatusSold || s == StatusCancelled
}

// CanTransitionTo reports whether s -> next is a legal transition.
// Only active -> sold and active -> cancelled are permitted.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	return s == StatusActive && next.IsValid()
}

// Currency is the crypto currency a listing is priced in
type Currency string

const (
	CurrencyEth  Currency = "ETH"
	CurrencyUsdt Currency = "USDT"
	CurrencyDai  Currency = "DAI"

	DefaultCurrency = CurrencyEth
)

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyEth, CurrencyUsdt, CurrencyDai:
		return true
	}
	return false
}

const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 2000
)

type Listing struct {
	Id          string         `json:"id" bson:"id"`
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description" bson:"description"`
	Price       float64        `json:"price" bson:"price"`
	Currency    Currency       `json:"currency" bson:"currency"`
	Images      []string       `json:"images" bson:"images"`
	Seller      domain.Address `json:"seller" bson:"seller"`
	Buyer       domain.Address `json:"buyer,omitempty" bson:"buyer,omitempty"`
	Status      Status         `json:"status" bson:"status"`
	DealId      string         `json:"dealId,omitempty" bson:"dealId,omitempty"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// Updater carries the whitelist of mutable fields for a partial update.
// Seller, id and createdAt are deliberately absent.
type Updater struct {
	Title       *string         `bson:"title"`
	Description *string         `bson:"description"`
	Price       *float64        `bson:"price"`
	Currency    *Currency       `bson:"currency"`
	Images      *[]string       `bson:"images"`
	Status      *Status         `bson:"status"`
	Buyer       *domain.Address `bson:"buyer"`
	DealId      *string         `bson:"dealId"`
	UpdatedAt   *time.Time      `bson:"updatedAt"`
}

type FindAllOptions struct {
	Keyword  *string
	PriceGTE *float64
	PriceLTE *float64
	Status   *Status
	Seller   *domain.Address
	Buyer    *domain.Address
	SortBy   *string
	SortDir  *domain.SortDir
	Offset   *int32
	Limit    *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithKeyword(keyword string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Keyword = &keyword
		return nil
	}
}

func WithPriceGTE(price float64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.PriceGTE = &price
		return nil
	}
}

func WithPriceLTE(price float64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.PriceLTE = &price
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithBuyer(buyer domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Buyer = buyer.ToLowerPtr()
		return nil
	}
}

func WithSort(sortBy string, sortDir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortBy
		options.SortDir = &sortDir
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

// UpdateOptions carries preconditions of an update
type UpdateOptions struct {
	UpdatedAt *time.Time
}

type UpdateOptionsFunc func(*UpdateOptions) error

func GetUpdateOptions(opts ...UpdateOptionsFunc) (UpdateOptions, error) {
	res := UpdateOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

// WithUpdatedAt makes the update apply only if the stored document still
// carries the given updatedAt. Used as an optimistic concurrency check.
func WithUpdatedAt(updatedAt time.Time) UpdateOptionsFunc {
	return func(options *UpdateOptions) error {
		options.UpdatedAt = &updatedAt
		return nil
	}
}

type SearchResult struct {
	Items       []*Listing `json:"items"`
	TotalCount  int        `json:"totalCount"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
}

type Repo interface {
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	FindById(c ctx.Ctx, id string) (*Listing, error)
	Insert(c ctx.Ctx, l *Listing) error
	Update(c ctx.Ctx, id string, updater *Updater, opts ...UpdateOptionsFunc) error
	Delete(c ctx.Ctx, id string) error
}

// CreatePayload is the validated input of a create request
type CreatePayload struct {
	Title       string         `json:"title" validate:"required,max=100"`
	Description string         `json:"description" validate:"required,max=2000"`
	Price       *float64       `json:"price" validate:"required,gte=0"`
	Currency    Currency       `json:"currency" validate:"omitempty,oneof=ETH USDT DAI"`
	Images      []string       `json:"images"`
	Seller      domain.Address `json:"seller"`
}

// UpdatePayload is the validated input of an update request. Only the
// fields present are applied; seller is never accepted.
type UpdatePayload struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Price       *float64        `json:"price"`
	Currency    *Currency       `json:"currency"`
	Images      *[]string       `json:"images"`
	Status      *Status         `json:"status"`
	Buyer       *domain.Address `json:"buyer"`
	DealId      *string         `json:"dealId"`
}

type Usecase interface {
	Search(c ctx.Ctx, params *SearchParams) (*SearchResult, error)
	Get(c ctx.Ctx, id string) (*Listing, error)
	Create(c ctx.Ctx, caller domain.Address, payload *CreatePayload) (*Listing, error)
	Update(c ctx.Ctx, caller domain.Address, id string, payload *UpdatePayload) (*Listing, error)
	Delete(c ctx.Ctx, caller domain.Address, id string) error
}
