package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	bCtx "github.com/cryptobazaar/goapi/base/ctx"
	"github.com/cryptobazaar/goapi/base/ptr"
	"github.com/cryptobazaar/goapi/domain"
	"github.com/cryptobazaar/goapi/domain/listing"
	mListing "github.com/cryptobazaar/goapi/domain/listing/mocks"
)

var (
	seller = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	buyer  = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
)

func activeListing() *listing.Listing {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &listing.Listing{
		Id:          "b5ad859c-72a7-427d-9a9c-a939d0db8e3a",
		Title:       "vintage keyboard",
		Description: "barely used",
		Price:       1.5,
		Currency:    listing.CurrencyEth,
		Images:      []string{},
		Seller:      seller,
		Status:      listing.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestSearchPaging(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	mockRepo := &mListing.Repo{}

	items := []*listing.Listing{activeListing(), activeListing()}
	// default params compile into one filter plus sort and pagination
	mockRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(items, nil)
	mockRepo.On("Count", mock.Anything, mock.Anything).Return(21, nil)

	u := NewListing(mockRepo)
	res, err := u.Search(ctx, &listing.SearchParams{})
	req.NoError(err)
	req.Len(res.Items, 2)
	req.Equal(21, res.TotalCount)
	req.Equal(3, res.TotalPages)
	req.Equal(1, res.CurrentPage)
}

func TestCreate(t *testing.T) {
	price := 2.5

	tests := []struct {
		name    string
		caller  domain.Address
		payload *listing.CreatePayload
		wantErr error
	}{
		{
			name:    "unauthenticated",
			caller:  "",
			payload: &listing.CreatePayload{Title: "a", Price: &price},
			wantErr: domain.ErrUnauthenticated,
		},
		{
			name:    "seller mismatch",
			caller:  seller,
			payload: &listing.CreatePayload{Title: "a", Price: &price, Seller: buyer},
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "missing everything",
			caller:  seller,
			payload: &listing.CreatePayload{},
			wantErr: domain.NewValidationError("title", "description", "price"),
		},
		{
			name:    "missing description",
			caller:  seller,
			payload: &listing.CreatePayload{Title: "a", Price: &price},
			wantErr: domain.NewValidationError("description"),
		},
		{
			name:    "negative price",
			caller:  seller,
			payload: &listing.CreatePayload{Title: "a", Description: "b", Price: ptr.Float64(-1)},
			wantErr: domain.NewValidationError("price"),
		},
		{
			name:    "unknown currency",
			caller:  seller,
			payload: &listing.CreatePayload{Title: "a", Description: "b", Price: &price, Currency: "DOGE"},
			wantErr: domain.NewValidationError("currency"),
		},
		{
			name:    "ok",
			caller:  seller,
			payload: &listing.CreatePayload{Title: "a", Description: "b", Price: &price},
		},
		{
			// zero is a valid price, the listing is free
			name:    "free listing",
			caller:  seller,
			payload: &listing.CreatePayload{Title: "a", Description: "b", Price: ptr.Float64(0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctx := bCtx.Background()
			mockRepo := &mListing.Repo{}
			mockRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

			u := NewListing(mockRepo)
			got, err := u.Create(ctx, tt.caller, tt.payload)
			if tt.wantErr != nil {
				req.Equal(tt.wantErr, err)
				return
			}
			req.NoError(err)
			req.NotEmpty(got.Id)
			req.Equal(*tt.payload.Price, got.Price)
			req.Equal(seller, got.Seller)
			req.Equal(listing.DefaultCurrency, got.Currency)
			req.Equal(listing.StatusActive, got.Status)
			req.NotNil(got.Images)
			req.Equal(got.CreatedAt, got.UpdatedAt)
			mockRepo.AssertCalled(t, "Insert", mock.Anything, got)
		})
	}
}

func TestUpdate(t *testing.T) {
	sold := listing.StatusSold
	cancelled := listing.StatusCancelled

	tests := []struct {
		name    string
		caller  domain.Address
		current *listing.Listing
		payload *listing.UpdatePayload
		wantErr error
	}{
		{
			name:    "not the seller",
			caller:  buyer,
			current: activeListing(),
			payload: &listing.UpdatePayload{Title: ptr.String("new title")},
			wantErr: domain.ErrForbidden,
		},
		{
			name:   "terminal listing is locked",
			caller: seller,
			current: func() *listing.Listing {
				l := activeListing()
				l.Status = listing.StatusSold
				return l
			}(),
			payload: &listing.UpdatePayload{Title: ptr.String("new title")},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:    "invalid price",
			caller:  seller,
			current: activeListing(),
			payload: &listing.UpdatePayload{Price: ptr.Float64(-1)},
			wantErr: domain.NewValidationError("price"),
		},
		{
			name:    "description cannot be cleared",
			caller:  seller,
			current: activeListing(),
			payload: &listing.UpdatePayload{Description: ptr.String("")},
			wantErr: domain.NewValidationError("description"),
		},
		{
			name:    "price down to free",
			caller:  seller,
			current: activeListing(),
			payload: &listing.UpdatePayload{Price: ptr.Float64(0)},
		},
		{
			name:    "sold without buyer and deal",
			caller:  seller,
			current: activeListing(),
			payload: &listing.UpdatePayload{Status: &sold},
			wantErr: domain.NewValidationError("buyer", "dealId"),
		},
		{
			name:    "cancel",
			caller:  seller,
			current: activeListing(),
			payload: &listing.UpdatePayload{Status: &cancelled},
		},
		{
			name:    "sell",
			caller:  seller,
			current: activeListing(),
			payload: &listing.UpdatePayload{
				Status: &sold,
				Buyer:  &buyer,
				DealId: ptr.String("deal-1"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctx := bCtx.Background()
			mockRepo := &mListing.Repo{}
			mockRepo.On("FindById", mock.Anything, tt.current.Id).Return(tt.current, nil)
			mockRepo.On("Update", mock.Anything, tt.current.Id, mock.Anything, mock.Anything).Return(nil)

			u := NewListing(mockRepo)
			got, err := u.Update(ctx, tt.caller, tt.current.Id, tt.payload)
			if tt.wantErr != nil {
				req.Equal(tt.wantErr, err)
				mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			req.NoError(err)
			req.NotNil(got)

			updater := mockRepo.Calls[1].Arguments.Get(2).(*listing.Updater)
			req.Equal(tt.payload.Status, updater.Status)
			req.NotNil(updater.UpdatedAt)
			if tt.payload.Status != nil && *tt.payload.Status == listing.StatusSold {
				req.Equal(buyer.ToLower(), *updater.Buyer)
				req.Equal("deal-1", *updater.DealId)
			}
		})
	}
}

func TestUpdateConflict(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	current := activeListing()

	mockRepo := &mListing.Repo{}
	mockRepo.On("FindById", mock.Anything, current.Id).Return(current, nil)
	// the precondition on updatedAt missed, so the patch matched nothing
	mockRepo.On("Update", mock.Anything, current.Id, mock.Anything, mock.Anything).Return(domain.ErrNotFound)

	u := NewListing(mockRepo)
	_, err := u.Update(ctx, seller, current.Id, &listing.UpdatePayload{Title: ptr.String("new title")})
	req.Equal(domain.ErrConflict, err)
}

func TestDelete(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	current := activeListing()

	mockRepo := &mListing.Repo{}
	mockRepo.On("FindById", mock.Anything, current.Id).Return(current, nil)
	mockRepo.On("Delete", mock.Anything, current.Id).Return(nil)

	u := NewListing(mockRepo)
	req.Equal(domain.ErrForbidden, u.Delete(ctx, buyer, current.Id))
	req.NoError(u.Delete(ctx, seller, current.Id))
}
