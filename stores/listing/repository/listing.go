package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cryptobazaar/goapi/base/ctx"
	"github.com/cryptobazaar/goapi/base/database/mongoclient"
	"github.com/cryptobazaar/goapi/domain"
	"github.com/cryptobazaar/goapi/domain/listing"
	"github.com/cryptobazaar/goapi/service/query"
)

func makeFindQuery(optFns ...listing.FindAllOptionsFunc) (bson.M, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	query := bson.M{}

	if opts.Keyword != nil {
		keyword := primitive.Regex{Pattern: regexp.QuoteMeta(*opts.Keyword), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": keyword},
			bson.M{"description": keyword},
		}
	}

	if opts.PriceGTE != nil || opts.PriceLTE != nil {
		subQuery := bson.M{}
		if opts.PriceGTE != nil {
			subQuery["$gte"] = *opts.PriceGTE
		}
		if opts.PriceLTE != nil {
			subQuery["$lte"] = *opts.PriceLTE
		}
		query["price"] = subQuery
	}

	if opts.Status != nil {
		query["status"] = *opts.Status
	}

	if opts.Seller != nil {
		query["seller"] = *opts.Seller
	}

	if opts.Buyer != nil {
		query["buyer"] = *opts.Buyer
	}

	return query, nil
}

type listingImpl struct {
	q query.Mongo
}

func NewListing(q query.Mongo) listing.Repo {
	return &listingImpl{q}
}

func (im *listingImpl) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	res := []*listing.Listing{}

	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return res, err
	}

	offset := int(0)

	limit := int(0)

	sort := "_id"

	qry, err := makeFindQuery(optFns...)
	if err != nil {
		return res, err
	}

	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}

	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	if opts.SortBy != nil && opts.SortDir != nil {
		sort = *opts.SortBy
		if *opts.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	if err := im.q.Search(c, domain.TableListings, offset, limit, sort, qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return res, domain.ErrStorageUnavailable
	}

	return res, nil
}

func (im *listingImpl) Count(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) (int, error) {
	qry, err := makeFindQuery(optFns...)
	if err != nil {
		return 0, err
	}

	res, err := im.q.Count(c, domain.TableListings, qry)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, domain.ErrStorageUnavailable
	}

	return res, nil
}

func (im *listingImpl) FindById(c ctx.Ctx, id string) (*listing.Listing, error) {
	res := &listing.Listing{}

	if err := im.q.FindOne(c, domain.TableListings, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, domain.ErrStorageUnavailable
	}

	return res, nil
}

func (im *listingImpl) Insert(c ctx.Ctx, l *listing.Listing) error {
	if err := im.q.Insert(c, domain.TableListings, l); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return domain.ErrStorageUnavailable
	}

	return nil
}

func (im *listingImpl) Update(c ctx.Ctx, id string, updater *listing.Updater, optFns ...listing.UpdateOptionsFunc) error {
	opts, err := listing.GetUpdateOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetUpdateOptions failed")
		return err
	}

	selector := bson.M{"id": id}
	if opts.UpdatedAt != nil {
		selector["updatedAt"] = *opts.UpdatedAt
	}

	val, err := mongoclient.MakeBsonM(updater)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Patch(c, domain.TableListings, selector, val); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Patch failed")
		return domain.ErrStorageUnavailable
	}

	return nil
}

func (im *listingImpl) Delete(c ctx.Ctx, id string) error {
	if err := im.q.Remove(c, domain.TableListings, bson.M{"id": id}); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return domain.ErrStorageUnavailable
	}

	return nil
}
