package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/database/mongoclient"
	"github.com/gavelauto/goapi/base/log"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/auction"
	"github.com/gavelauto/goapi/service/query"
)

type bidImpl struct {
	q query.Mongo
}

func NewBid(q query.Mongo) auction.BidRepo {
	return &bidImpl{q}
}

func (im *bidImpl) makeQuery(options auction.BidFindAllOptions) bson.M {
	qry := bson.M{}

	if options.AuctionId != nil {
		qry["auctionId"] = *options.AuctionId
	}

	if options.BidderId != nil {
		qry["bidderId"] = *options.BidderId
	}

	if options.IsWinning != nil {
		qry["isWinning"] = *options.IsWinning
	}

	if options.IsValid != nil {
		qry["isValid"] = *options.IsValid
	}

	return qry
}

func (im *bidImpl) FindAll(ctx ctx.Ctx, opts ...auction.BidFindAllOptionsFunc) ([]*auction.Bid, error) {
	options, err := auction.GetBidFindAllOptions(opts...)
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
	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []*auction.Bid{}
	err = im.q.Search(ctx, domain.TableBids, offset, limit, sort, qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *bidImpl) Count(ctx ctx.Ctx, opts ...auction.BidFindAllOptionsFunc) (int, error) {
	options, err := auction.GetBidFindAllOptions(opts...)
	if err != nil {
		return 0, err
	}
	qry := im.makeQuery(options)

	cnt, err := im.q.Count(ctx, domain.TableBids, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

func (im *bidImpl) FindOne(ctx ctx.Ctx, id string) (*auction.Bid, error) {
	res := auction.Bid{}
	err := im.q.FindOne(ctx, domain.TableBids, bson.M{"id": id}, &res)
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

func (im *bidImpl) Insert(ctx ctx.Ctx, bid *auction.Bid) error {
	if err := im.q.Insert(ctx, domain.TableBids, bid); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"auctionId": bid.AuctionId,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *bidImpl) Update(ctx ctx.Ctx, id string, patchable auction.BidPatchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	if err := im.q.Patch(ctx, domain.TableBids, bson.M{"id": id}, updater); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

func (im *bidImpl) ClearWinning(ctx ctx.Ctx, auctionId string, exceptBidId string) error {
	selector := bson.M{
		"auctionId": auctionId,
		"isWinning": true,
	}
	if exceptBidId != "" {
		selector["id"] = bson.M{"$ne": exceptBidId}
	}

	err := im.q.Patch(ctx, domain.TableBids, selector, bson.M{"isWinning": false}, query.WithPatchMany(true))
	if err != nil && err != query.ErrNotFound {
		ctx.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Error("failed to q.Patch")
		return err
	}

	// no previous winning bid is fine
	return nil
}
