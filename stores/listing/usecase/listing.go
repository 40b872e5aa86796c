package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/cryptobazaar/goapi/base/ctx"
	"github.com/cryptobazaar/goapi/domain"
	"github.com/cryptobazaar/goapi/domain/listing"
)

type listingImpl struct {
	listing listing.Repo
}

func NewListing(listing listing.Repo) listing.Usecase {
	return &listingImpl{listing}
}

func (im *listingImpl) Search(c ctx.Ctx, params *listing.SearchParams) (*listing.SearchResult, error) {
	compiled := params.Compile()

	items, err := im.listing.FindAll(c, compiled.FindAllOptions()...)
	if err != nil {
		c.WithField("err", err).Error("listing.FindAll failed")
		return nil, err
	}

	count, err := im.listing.Count(c, compiled.Filters...)
	if err != nil {
		c.WithField("err", err).Error("listing.Count failed")
		return nil, err
	}

	totalPages := (count + int(compiled.Limit) - 1) / int(compiled.Limit)

	return &listing.SearchResult{
		Items:       items,
		TotalCount:  count,
		TotalPages:  totalPages,
		CurrentPage: int(compiled.Page),
	}, nil
}

func (im *listingImpl) Get(c ctx.Ctx, id string) (*listing.Listing, error) {
	res, err := im.listing.FindById(c, id)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *listingImpl) Create(c ctx.Ctx, caller domain.Address, payload *listing.CreatePayload) (*listing.Listing, error) {
	if caller.IsEmpty() {
		return nil, domain.ErrUnauthenticated
	}

	// a seller in the payload must be the caller itself
	if !payload.Seller.IsEmpty() && !payload.Seller.Equals(caller) {
		return nil, domain.ErrForbidden
	}

	fields := []string{}
	if payload.Title == "" || len(payload.Title) > listing.TitleMaxLen {
		fields = append(fields, "title")
	}
	if payload.Description == "" || len(payload.Description) > listing.DescriptionMaxLen {
		fields = append(fields, "description")
	}
	// a price of zero is a valid free listing
	if payload.Price == nil || *payload.Price < 0 {
		fields = append(fields, "price")
	}

	currency := payload.Currency
	if currency == "" {
		currency = listing.DefaultCurrency
	} else if !currency.IsValid() {
		fields = append(fields, "currency")
	}

	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	uuid, err := uuid.NewRandom()
	if err != nil {
		c.WithField("err", err).Error("failed to uuid.NewRandom")
		return nil, err
	}

	images := payload.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	l := &listing.Listing{
		Id:          uuid.String(),
		Title:       payload.Title,
		Description: payload.Description,
		Price:       *payload.Price,
		Currency:    currency,
		Images:      images,
		Seller:      caller.ToLower(),
		Status:      listing.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := im.listing.Insert(c, l); err != nil {
		c.WithField("err", err).Error("listing.Insert failed")
		return nil, err
	}

	return l, nil
}

func (im *listingImpl) Update(c ctx.Ctx, caller domain.Address, id string, payload *listing.UpdatePayload) (*listing.Listing, error) {
	if caller.IsEmpty() {
		return nil, domain.ErrUnauthenticated
	}

	current, err := im.listing.FindById(c, id)
	if err != nil {
		return nil, err
	}

	if !current.Seller.Equals(caller) {
		return nil, domain.ErrForbidden
	}

	if current.Status.IsTerminal() {
		return nil, domain.ErrInvalidTransition
	}

	if err := validateUpdatePayload(payload); err != nil {
		return nil, err
	}

	updater := &listing.Updater{
		Title:       payload.Title,
		Description: payload.Description,
		Price:       payload.Price,
		Currency:    payload.Currency,
		Images:      payload.Images,
	}

	if payload.Status != nil && *payload.Status != current.Status {
		next := *payload.Status
		if !current.Status.CanTransitionTo(next) {
			return nil, domain.ErrInvalidTransition
		}

		if next == listing.StatusSold {
			// a sale must name the buyer and the deal it settles
			fields := []string{}
			if payload.Buyer == nil || payload.Buyer.IsEmpty() {
				fields = append(fields, "buyer")
			}
			if payload.DealId == nil || *payload.DealId == "" {
				fields = append(fields, "dealId")
			}
			if len(fields) > 0 {
				return nil, domain.NewValidationError(fields...)
			}
			updater.Buyer = payload.Buyer.ToLowerPtr()
			updater.DealId = payload.DealId
		}

		updater.Status = payload.Status
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	updater.UpdatedAt = &now

	err = im.listing.Update(c, id, updater, listing.WithUpdatedAt(current.UpdatedAt))
	if err == domain.ErrNotFound {
		// the document was there a moment ago, someone patched it in between
		return nil, domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("listing.Update failed")
		return nil, err
	}

	return im.listing.FindById(c, id)
}

func (im *listingImpl) Delete(c ctx.Ctx, caller domain.Address, id string) error {
	if caller.IsEmpty() {
		return domain.ErrUnauthenticated
	}

	current, err := im.listing.FindById(c, id)
	if err != nil {
		return err
	}

	if !current.Seller.Equals(caller) {
		return domain.ErrForbidden
	}

	if err := im.listing.Delete(c, id); err != nil {
		c.WithField("err", err).Error("listing.Delete failed")
		return err
	}

	return nil
}

func validateUpdatePayload(payload *listing.UpdatePayload) error {
	fields := []string{}

	if payload.Title != nil && (*payload.Title == "" || len(*payload.Title) > listing.TitleMaxLen) {
		fields = append(fields, "title")
	}
	if payload.Description != nil && (*payload.Description == "" || len(*payload.Description) > listing.DescriptionMaxLen) {
		fields = append(fields, "description")
	}
	if payload.Price != nil && *payload.Price < 0 {
		fields = append(fields, "price")
	}
	if payload.Currency != nil && !payload.Currency.IsValid() {
		fields = append(fields, "currency")
	}
	if payload.Status != nil && !payload.Status.IsValid() {
		fields = append(fields, "status")
	}

	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}
