package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/database/mongoclient"
	"github.com/gavelauto/goapi/base/log"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/account"
	"github.com/gavelauto/goapi/service/cache"
	"github.com/gavelauto/goapi/service/cache/provider"
	"github.com/gavelauto/goapi/service/cache/provider/compound"
	"github.com/gavelauto/goapi/service/cache/provider/primitive"
	redisCache "github.com/gavelauto/goapi/service/cache/provider/redis"
	"github.com/gavelauto/goapi/service/query"
	"github.com/gavelauto/goapi/service/redis"
)

type impl struct {
	query        query.Mongo
	accountCache cache.Service
}

// New creates new account repo
func New(query query.Mongo, redis redis.Service) account.Repo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive("account", 128),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &impl{
		query: query,
		accountCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   "account",
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (im *impl) Get(c ctx.Ctx, userId domain.UserId) (*account.Account, error) {
	res := &account.Account{}

	if err := im.accountCache.GetByFunc(c, userId.String(), res, func() (interface{}, error) {
		return im.get(c, userId)
	}); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"userId": userId,
		}).Error("accountCache.GetByFunc failed")
		return nil, err
	}

	return res, nil
}

func (im *impl) get(c ctx.Ctx, userId domain.UserId) (*account.Account, error) {
	a := &account.Account{}
	err := im.query.FindOne(c, domain.TableAccounts, bson.M{"userId": userId}, a)
	if err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"userId": userId,
			"err":    err,
		}).Error("find account failed")
	} else if err == query.ErrNotFound {
		err = domain.ErrNotFound
	}
	return a, err
}

func (im *impl) Insert(c ctx.Ctx, a *account.Account) error {
	if err := im.query.Insert(c, domain.TableAccounts, a); err != nil {
		c.WithFields(log.Fields{
			"userId": a.UserId,
			"err":    err,
		}).Error("insert account failed")
		return err
	}
	return nil
}

func (im *impl) Update(c ctx.Ctx, userId domain.UserId, updater *account.Updater) error {
	updaterBson, err := mongoclient.MakeBsonM(updater)
	if err != nil {
		c.WithFields(log.Fields{
			"userId": userId,
			"err":    err,
		}).Error("make bsonM failed")
		return err
	}
	if err := im.query.Patch(c, domain.TableAccounts, bson.M{"userId": userId}, updaterBson); err != nil {
		c.WithFields(log.Fields{
			"userId": userId,
			"err":    err,
		}).Error("patch account failed")
		return err
	}

	if err := im.accountCache.Del(c, userId.String()); err != nil {
		c.WithFields(log.Fields{
			"userId": userId,
			"err":    err,
		}).Error("accountCache.Del failed")
	}
	return nil
}
