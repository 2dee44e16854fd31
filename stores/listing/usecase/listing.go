package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/log"
	"github.com/gavelauto/goapi/base/ptr"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/listing"
	"github.com/gavelauto/goapi/service/query"
)

type ListingUseCaseCfg struct {
	ListingRepo listing.Repo
}

type impl struct {
	listing listing.Repo
}

func New(cfg *ListingUseCaseCfg) listing.Usecase {
	return &impl{
		listing: cfg.ListingRepo,
	}
}

func (im *impl) Get(c ctx.Ctx, id string) (*listing.Listing, error) {
	return im.listing.FindOne(c, id)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	return im.listing.FindAll(c, opts...)
}

func (im *impl) Create(c ctx.Ctx, l *listing.Listing) (*listing.Listing, error) {
	if !l.Currency.IsValid() {
		return nil, domain.ErrInvalidCurrency
	}
	if l.StartingPrice <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if l.ReservePrice != nil && *l.ReservePrice < l.StartingPrice {
		return nil, domain.ErrBadParamInput
	}

	now := time.Now()
	l.Id = uuid.NewString()
	l.Status = listing.StatusPending
	l.Country = l.Country.ToUpper()
	l.CreatedAt = now
	l.UpdatedAt = now

	if err := im.listing.Insert(c, l); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"sellerId": l.SellerId,
		}).Error("failed to listing.Insert")
		return nil, err
	}
	return l, nil
}

func (im *impl) Approve(c ctx.Ctx, id string) (*listing.Listing, error) {
	status := listing.StatusApproved
	patchable := listing.Patchable{
		Status:    &status,
		UpdatedAt: ptr.Time(time.Now()),
	}

	err := im.listing.UpdateIfStatus(c, id, []listing.Status{listing.StatusPending}, patchable)
	if err == query.ErrNotFound {
		return nil, domain.ErrInvalidPrecondition
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listing.UpdateIfStatus")
		return nil, err
	}

	return im.listing.FindOne(c, id)
}

func (im *impl) Withdraw(c ctx.Ctx, id string, sellerId domain.UserId) (*listing.Listing, error) {
	l, err := im.listing.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if !l.SellerId.Equals(sellerId) {
		return nil, domain.ErrInvalidPrecondition
	}

	status := listing.StatusWithdrawn
	patchable := listing.Patchable{
		Status:    &status,
		UpdatedAt: ptr.Time(time.Now()),
	}

	// a listing attached to a live auction cannot be withdrawn
	err = im.listing.UpdateIfStatus(c, id, []listing.Status{
		listing.StatusDraft,
		listing.StatusPending,
		listing.StatusApproved,
	}, patchable)
	if err == query.ErrNotFound {
		return nil, domain.ErrInvalidPrecondition
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listing.UpdateIfStatus")
		return nil, err
	}

	return im.listing.FindOne(c, id)
}
