package repository

import (
	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/database/mongoclient"
	"github.com/gavelauto/goapi/base/log"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/auction"
	"github.com/gavelauto/goapi/service/query"
)

type bidderNumberImpl struct {
	q query.Mongo
}

func NewBidderNumber(q query.Mongo) auction.BidderNumberRepo {
	return &bidderNumberImpl{q}
}

func (im *bidderNumberImpl) FindOne(ctx ctx.Ctx, id auction.BidderNumberId) (*auction.BidderNumber, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := auction.BidderNumber{}
	err = im.q.FindOne(ctx, domain.TableBidderNumbers, qry, &res)
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

func (im *bidderNumberImpl) Insert(ctx ctx.Ctx, assignment *auction.BidderNumber) error {
	if err := im.q.Insert(ctx, domain.TableBidderNumbers, assignment); err != nil {
		if err != query.ErrDuplicateKey {
			ctx.WithFields(log.Fields{
				"err":       err,
				"auctionId": assignment.AuctionId,
			}).Error("failed to q.Insert")
		}
		return err
	}
	return nil
}
