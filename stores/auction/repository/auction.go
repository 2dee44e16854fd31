package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/database/mongoclient"
	"github.com/gavelauto/goapi/base/log"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/auction"
	"github.com/gavelauto/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) auction.Repo {
	return &impl{q}
}

func (im *impl) makeQuery(options auction.FindAllOptions) bson.M {
	qry := bson.M{}

	if options.Status != nil {
		qry["status"] = *options.Status
	}

	if options.SellerId != nil {
		qry["sellerId"] = *options.SellerId
	}

	if options.Category != nil {
		qry["category"] = *options.Category
	}

	if options.Country != nil {
		qry["country"] = options.Country.ToUpper()
	}

	if options.StartTimeLTE != nil {
		qry["startTime"] = bson.M{"$lte": *options.StartTimeLTE}
	}

	if options.CurrentEndTimeLTE != nil {
		qry["currentEndTime"] = bson.M{"$lte": *options.CurrentEndTimeLTE}
	}

	priceQuery := bson.M{}
	if options.PriceGTE != nil {
		priceQuery["$gte"] = *options.PriceGTE
	}
	if options.PriceLTE != nil {
		priceQuery["$lte"] = *options.PriceLTE
	}
	if len(priceQuery) > 0 {
		// the effective price is the current bid once one exists, the
		// starting price before that
		qry["$or"] = []bson.M{
			{"currentBid": priceQuery},
			{"currentBid": bson.M{"$exists": false}, "startingPrice": priceQuery},
		}
	}

	if options.SearchText != nil {
		qry["$text"] = bson.M{"$search": *options.SearchText}
	}

	return qry
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	options, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	qry := im.makeQuery(options)

	offset := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}

	limit := 0
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	sort := "-createdAt"
	if options.SortBy != nil {
		sort = *options.SortBy
	}

	res := []*auction.Auction{}
	err = im.q.Search(ctx, domain.TableAuctions, offset, limit, sort, qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *impl) Count(ctx ctx.Ctx, opts ...auction.FindAllOptionsFunc) (int, error) {
	options, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		return 0, err
	}
	qry := im.makeQuery(options)

	cnt, err := im.q.Count(ctx, domain.TableAuctions, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

func (im *impl) FindOne(ctx ctx.Ctx, id string) (*auction.Auction, error) {
	res := auction.Auction{}
	err := im.q.FindOne(ctx, domain.TableAuctions, bson.M{"id": id}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *impl) FindOneByListingId(ctx ctx.Ctx, listingId string) (*auction.Auction, error) {
	res := auction.Auction{}
	err := im.q.FindOne(ctx, domain.TableAuctions, bson.M{"listingId": listingId}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *impl) Insert(ctx ctx.Ctx, a *auction.Auction) error {
	if err := im.q.Insert(ctx, domain.TableAuctions, a); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  a.Id,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *impl) Update(ctx ctx.Ctx, id string, patchable auction.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	if err := im.q.Patch(ctx, domain.TableAuctions, bson.M{"id": id}, updater); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

func (im *impl) UpdateIfStatus(ctx ctx.Ctx, id string, from auction.Status, patchable auction.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	selector := bson.M{
		"id":     id,
		"status": from,
	}

	if err := im.q.CustomPatch(ctx, domain.TableAuctions, selector, bson.M{"$set": updater}, false); err != nil {
		if err != query.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("failed to q.CustomPatch")
		}
		return err
	}

	return nil
}

func (im *impl) ClearCurrentBid(ctx ctx.Ctx, id string, reserveMet bool) error {
	update := bson.M{
		"$unset": bson.M{"currentBid": ""},
		"$set": bson.M{
			"reserveMet": reserveMet,
			"updatedAt":  time.Now(),
		},
	}

	if err := im.q.CustomPatch(ctx, domain.TableAuctions, bson.M{"id": id}, update, false); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.CustomPatch")
		return err
	}

	return nil
}

func (im *impl) IncrementNextBidderNumber(ctx ctx.Ctx, id string) (int, error) {
	res := auction.Auction{}
	if err := im.q.Increment(ctx, domain.TableAuctions, bson.M{"id": id}, &res, "nextBidderNumber", 1); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Increment")
		return 0, err
	}
	// Increment returns the document after the bump, callers get the
	// number that was assigned
	return res.NextBidderNumber - 1, nil
}
