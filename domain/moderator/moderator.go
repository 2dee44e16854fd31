package moderator

import (
	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/domain"
)

type Moderator struct {
	Name   string        `json:"name" bson:"name"`
	UserId domain.UserId `json:"userId" bson:"userId"`
}

type Repo interface {
	FindAll(c ctx.Ctx) ([]*Moderator, error)
	FindOne(c ctx.Ctx, userId domain.UserId) (*Moderator, error)
	Create(c ctx.Ctx, value Moderator) error
	Delete(c ctx.Ctx, userId domain.UserId) error
}

type Usecase interface {
	FindAll(c ctx.Ctx) ([]*Moderator, error)
	Add(c ctx.Ctx, userId domain.UserId, name string) error
	Remove(c ctx.Ctx, userId domain.UserId) error
	IsModerator(c ctx.Ctx, userId domain.UserId) (bool, error)
}
