package usecase

import (
	"fmt"
	"time"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/log"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/account"
	"github.com/gavelauto/goapi/domain/keys"
)

type impl struct {
	repo account.Repo
}

// New creates new account usecase
func New(repo account.Repo) account.Usecase {
	return &impl{repo}
}

func (im *impl) Get(c ctx.Ctx, userId domain.UserId) (*account.Account, error) {
	return im.repo.Get(c, userId)
}

// Create provisions a minimal profile on first sign-in. DisplayName starts
// as a generic placeholder and Country stays empty until the user fills it
// in; bidder numbers fall back to an empty country in that window.
func (im *impl) Create(c ctx.Ctx, userId domain.UserId) (*account.Account, error) {
	now := time.Now()
	a := &account.Account{
		UserId:      userId,
		DisplayName: fmt.Sprintf("user-%s", keys.MD5(userId.String())[:8]),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := im.repo.Insert(c, a); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"userId": userId,
		}).Error("failed to repo.Insert")
		return nil, err
	}
	return a, nil
}

func (im *impl) Update(c ctx.Ctx, userId domain.UserId, updater *account.Updater) (*account.Account, error) {
	if updater.Country != nil {
		upper := updater.Country.ToUpper()
		updater.Country = &upper
	}
	now := time.Now()
	updater.UpdatedAt = &now

	if err := im.repo.Update(c, userId, updater); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"userId": userId,
		}).Error("failed to repo.Update")
		return nil, err
	}
	return im.repo.Get(c, userId)
}
