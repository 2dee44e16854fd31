package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/database/mongoclient"
	"github.com/gavelauto/goapi/base/log"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/listing"
	"github.com/gavelauto/goapi/service/cache"
	"github.com/gavelauto/goapi/service/cache/provider"
	"github.com/gavelauto/goapi/service/cache/provider/compound"
	"github.com/gavelauto/goapi/service/cache/provider/primitive"
	redisCache "github.com/gavelauto/goapi/service/cache/provider/redis"
	"github.com/gavelauto/goapi/service/query"
	"github.com/gavelauto/goapi/service/redis"
)

type impl struct {
	q            query.Mongo
	listingCache cache.Service
}

// New creates new listing repo
func New(q query.Mongo, redis redis.Service) listing.Repo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive("listing", 128),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &impl{
		q: q,
		listingCache: cache.New(cache.ServiceConfig{
			Ttl:   10 * time.Minute,
			Pfx:   "listing",
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (im *impl) makeQuery(options listing.FindAllOptions) bson.M {
	qry := bson.M{}

	if options.SellerId != nil {
		qry["sellerId"] = *options.SellerId
	}

	if options.Status != nil {
		qry["status"] = *options.Status
	}

	if options.Category != nil {
		qry["category"] = *options.Category
	}

	return qry
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	options, err := listing.GetFindAllOptions(opts...)
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

	res := []*listing.Listing{}
	err = im.q.Search(ctx, domain.TableListings, offset, limit, sort, qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *impl) FindOne(ctx ctx.Ctx, id string) (*listing.Listing, error) {
	res := &listing.Listing{}

	if err := im.listingCache.GetByFunc(ctx, id, res, func() (interface{}, error) {
		return im.findOne(ctx, id)
	}); err != nil {
		return nil, err
	}

	return res, nil
}

func (im *impl) findOne(ctx ctx.Ctx, id string) (*listing.Listing, error) {
	res := listing.Listing{}
	err := im.q.FindOne(ctx, domain.TableListings, bson.M{"id": id}, &res)
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

func (im *impl) Insert(ctx ctx.Ctx, l *listing.Listing) error {
	if err := im.q.Insert(ctx, domain.TableListings, l); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  l.Id,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *impl) Update(ctx ctx.Ctx, id string, patchable listing.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	if err := im.q.Patch(ctx, domain.TableListings, bson.M{"id": id}, updater); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Patch")
		return err
	}

	im.invalidateCache(ctx, id)
	return nil
}

func (im *impl) UpdateIfStatus(ctx ctx.Ctx, id string, from []listing.Status, patchable listing.Patchable) error {
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
		"status": bson.M{"$in": from},
	}

	if err := im.q.CustomPatch(ctx, domain.TableListings, selector, bson.M{"$set": updater}, false); err != nil {
		if err != query.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("failed to q.CustomPatch")
		}
		return err
	}

	im.invalidateCache(ctx, id)
	return nil
}

func (im *impl) invalidateCache(ctx ctx.Ctx, id string) {
	if err := im.listingCache.Del(ctx, id); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("listingCache.Del failed")
	}
}
