package account

import (
	"time"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/domain"
)

// Account is the marketplace profile of a user. The auction engine only
// reads DisplayName and Country; everything else belongs to the account
// subsystem.
type Account struct {
	UserId      domain.UserId      `json:"userId" bson:"userId"`
	DisplayName string             `json:"displayName" bson:"displayName"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty"`
	Country     domain.CountryCode `json:"country" bson:"country"`
	IsBanned    bool               `json:"isBanned" bson:"isBanned"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Updater struct {
	DisplayName *string             `json:"displayName" bson:"displayName,omitempty"`
	Email       *string             `json:"email" bson:"email,omitempty"`
	Country     *domain.CountryCode `json:"country" bson:"country,omitempty"`
	IsBanned    *bool               `json:"-" bson:"isBanned,omitempty"`
	UpdatedAt   *time.Time          `json:"-" bson:"updatedAt,omitempty"`
}

type Repo interface {
	Get(ctx ctx.Ctx, userId domain.UserId) (*Account, error)
	Insert(ctx ctx.Ctx, account *Account) error
	Update(ctx ctx.Ctx, userId domain.UserId, updater *Updater) error
}

type Usecase interface {
	Get(ctx ctx.Ctx, userId domain.UserId) (*Account, error)
	Create(ctx ctx.Ctx, userId domain.UserId) (*Account, error)
	Update(ctx ctx.Ctx, userId domain.UserId, updater *Updater) (*Account, error)
}
