package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/database/mongoclient"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/moderator"
	"github.com/gavelauto/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) moderator.Repo {
	return &impl{q}
}

func (im *impl) FindAll(c ctx.Ctx) ([]*moderator.Moderator, error) {
	res := []*moderator.Moderator{}

	// to prevent scancol error
	qry := bson.M{"userId": bson.M{"$exists": true}}

	if err := im.q.Search(c, domain.TableModerators, 0, 0, "_id", qry, &res); err != nil {
		return nil, err
	}

	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, userId domain.UserId) (*moderator.Moderator, error) {
	res := &moderator.Moderator{}

	if qry, err := mongoclient.MakeBsonM(&moderator.Moderator{UserId: userId}); err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	} else if err := im.q.FindOne(c, domain.TableModerators, qry, res); err != nil && err != query.ErrNotFound {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, nil
	}
	return res, nil
}

func (im *impl) Create(c ctx.Ctx, value moderator.Moderator) error {
	if err := im.q.Insert(c, domain.TableModerators, value); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) Delete(c ctx.Ctx, userId domain.UserId) error {
	if slr, err := mongoclient.MakeBsonM(moderator.Moderator{UserId: userId}); err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	} else if err := im.q.Remove(c, domain.TableModerators, slr); err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
