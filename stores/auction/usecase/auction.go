package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/goroutine"
	"github.com/gavelauto/goapi/base/log"
	"github.com/gavelauto/goapi/base/ptr"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/account"
	"github.com/gavelauto/goapi/domain/auction"
	"github.com/gavelauto/goapi/domain/keys"
	"github.com/gavelauto/goapi/domain/listing"
	"github.com/gavelauto/goapi/service/notifier"
	"github.com/gavelauto/goapi/service/query"
	"github.com/gavelauto/goapi/service/redis"
)

const (
	defaultBidHistoryLimit = int32(50)
	maxBidHistoryLimit     = int32(200)
	bidHistoryTtl          = 5 * time.Second
)

type AuctionUseCaseCfg struct {
	AuctionRepo      auction.Repo
	BidRepo          auction.BidRepo
	BidderNumberRepo auction.BidderNumberRepo
	ListingRepo      listing.Repo
	AccountRepo      account.Repo
	Query            query.Mongo
	Notifier         notifier.Service
	Redis            redis.Service
	Config           auction.Config
}

type impl struct {
	auction      auction.Repo
	bid          auction.BidRepo
	bidderNumber auction.BidderNumberRepo
	listing      listing.Repo
	account      account.Repo
	q            query.Mongo
	notifier     notifier.Service
	redis        redis.Service
	cfg          auction.Config
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	return &impl{
		auction:      cfg.AuctionRepo,
		bid:          cfg.BidRepo,
		bidderNumber: cfg.BidderNumberRepo,
		listing:      cfg.ListingRepo,
		account:      cfg.AccountRepo,
		q:            cfg.Query,
		notifier:     cfg.Notifier,
		redis:        cfg.Redis,
		cfg:          cfg.Config,
	}
}

func (im *impl) Create(c ctx.Ctx, params auction.CreateParams) (*auction.Auction, error) {
	l, err := im.listing.FindOne(c, params.ListingId)
	if err != nil {
		return nil, err
	}
	if l.Status != listing.StatusApproved {
		return nil, domain.ErrInvalidPrecondition
	}
	if params.DurationDays < im.cfg.MinDurationDays || params.DurationDays > im.cfg.MaxDurationDays {
		return nil, domain.ErrInvalidPrecondition
	}

	if _, err := im.auction.FindOneByListingId(c, params.ListingId); err == nil {
		return nil, domain.ErrConflict
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	now := time.Now()
	endTime := params.StartTime.AddDate(0, 0, params.DurationDays)

	status := auction.StatusScheduled
	if !params.StartTime.After(now) {
		status = auction.StatusActive
	}

	a := &auction.Auction{
		Id:               uuid.NewString(),
		ListingId:        l.Id,
		SellerId:         l.SellerId,
		Category:         l.Category,
		Country:          l.Country,
		StartTime:        params.StartTime,
		OriginalEndTime:  endTime,
		CurrentEndTime:   endTime,
		MaxExtensions:    im.cfg.MaxExtensions,
		StartingPrice:    l.StartingPrice,
		ReservePrice:     l.ReservePrice,
		Currency:         l.Currency,
		ReserveMet:       l.ReservePrice == nil,
		NextBidderNumber: im.cfg.BidderNumberBase,
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := im.auction.Insert(c, a); err != nil {
		return nil, err
	}

	liveStatus := listing.StatusLive
	err = im.listing.UpdateIfStatus(c, l.Id, []listing.Status{listing.StatusApproved}, listing.Patchable{
		Status:    &liveStatus,
		UpdatedAt: ptr.Time(now),
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": l.Id,
		}).Error("failed to listing.UpdateIfStatus")
		return nil, err
	}

	if status == auction.StatusActive {
		im.notifyAsync(func(bg ctx.Ctx) {
			im.notifier.Notify(bg, auction.RKAuctionActivated, auction.ActivatedEvent{
				AuctionId: a.Id,
				ListingId: a.ListingId,
				StartTime: a.StartTime,
				EndTime:   a.CurrentEndTime,
			})
		})
	}

	return a, nil
}

func (im *impl) PlaceBid(c ctx.Ctx, params auction.PlaceBidParams) (*auction.PlaceBidResult, error) {
	var res *auction.PlaceBidResult
	var outbid *auction.Bid

	err := im.q.RunWithTransaction(c, func(tx ctx.Ctx) error {
		var err error
		res, outbid, err = im.admitBid(tx, params)
		return err
	})
	if err != nil {
		return nil, err
	}

	im.notifyAsync(func(bg ctx.Ctx) {
		if outbid != nil && !outbid.BidderId.Equals(params.BidderId) {
			im.notifier.Notify(bg, auction.RKAuctionOutbid, auction.OutbidEvent{
				AuctionId:     res.Auction.Id,
				OutbidUserId:  outbid.BidderId,
				CurrentAmount: res.Bid.Amount,
			})
		}
		if res.Extended {
			im.notifier.Notify(bg, auction.RKAuctionExtended, auction.ExtendedEvent{
				AuctionId:      res.Auction.Id,
				BidId:          res.Bid.Id,
				CurrentEndTime: res.Auction.CurrentEndTime,
				ExtensionCount: res.Auction.ExtensionCount,
			})
		}
	})

	return res, nil
}

// admitBid runs inside a mongo transaction. Concurrent bids on the same
// auction serialize on the auction document, so the validation always sees
// the latest committed current bid. A failure at any gate aborts with zero
// side effects.
func (im *impl) admitBid(tx ctx.Ctx, params auction.PlaceBidParams) (*auction.PlaceBidResult, *auction.Bid, error) {
	a, err := im.auction.FindOne(tx, params.AuctionId)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()

	switch a.Status {
	case auction.StatusActive:
	case auction.StatusScheduled:
		return nil, nil, domain.ErrAuctionNotStarted
	case auction.StatusSold, auction.StatusNoSale:
		return nil, nil, domain.ErrAuctionEnded
	default:
		return nil, nil, domain.ErrAuctionNotActive
	}
	if now.Before(a.StartTime) {
		return nil, nil, domain.ErrAuctionNotStarted
	}
	if !now.Before(a.CurrentEndTime) {
		return nil, nil, domain.ErrAuctionEnded
	}

	if a.SellerId.Equals(params.BidderId) {
		return nil, nil, domain.ErrSelfBid
	}

	if _, err := auction.ValidateBidAmount(params.Amount, a.CurrentBid, a.StartingPrice, im.cfg.IncrementTiers); err != nil {
		return nil, nil, err
	}

	extended := auction.ShouldExtendAuction(now, a.CurrentEndTime, a.ExtensionCount, a.MaxExtensions, im.cfg.AntiSnipeWindow)
	newEndTime := a.CurrentEndTime
	if extended {
		newEndTime = auction.CalculateExtendedEndTime(a.CurrentEndTime, im.cfg.ExtensionPeriod)
	}

	reserveMet := auction.IsReserveMet(params.Amount, a.ReservePrice)

	assignment, err := im.assignBidderNumber(tx, a.Id, params.BidderId)
	if err != nil {
		return nil, nil, err
	}

	// the previous leader, kept for the outbid notification after commit
	var prev *auction.Bid
	if a.BidCount > 0 {
		winners, err := im.bid.FindAll(tx,
			auction.BidWithAuctionId(a.Id),
			auction.BidWithIsWinning(true),
		)
		if err != nil {
			return nil, nil, err
		}
		if len(winners) > 0 {
			prev = winners[0]
		}
	}

	b := &auction.Bid{
		Id:                 uuid.NewString(),
		AuctionId:          a.Id,
		BidderId:           params.BidderId,
		Amount:             params.Amount,
		BidderNumber:       assignment.Number,
		BidderCountry:      assignment.Country,
		IsWinning:          true,
		IsValid:            true,
		TriggeredExtension: extended,
		Meta:               params.Meta,
		CreatedAt:          now,
	}

	if err := im.bid.Insert(tx, b); err != nil {
		return nil, nil, err
	}
	if err := im.bid.ClearWinning(tx, a.Id, b.Id); err != nil {
		return nil, nil, err
	}

	patchable := auction.Patchable{
		CurrentBid: ptr.Int64(params.Amount),
		BidCount:   ptr.Int(a.BidCount + 1),
		ReserveMet: &reserveMet,
		UpdatedAt:  ptr.Time(now),
	}
	if extended {
		patchable.CurrentEndTime = &newEndTime
		patchable.ExtensionCount = ptr.Int(a.ExtensionCount + 1)
	}

	if err := im.auction.Update(tx, a.Id, patchable); err != nil {
		return nil, nil, err
	}

	a.CurrentBid = ptr.Int64(params.Amount)
	a.BidCount += 1
	a.ReserveMet = reserveMet
	a.UpdatedAt = now
	if extended {
		a.CurrentEndTime = newEndTime
		a.ExtensionCount += 1
	}

	return &auction.PlaceBidResult{
		Bid:      b,
		Auction:  a,
		Extended: extended,
	}, prev, nil
}

// assignBidderNumber returns the frozen anonymous identity for the pair,
// creating it on first use. The unique index over (auctionId, userId) closes
// the race between two first bids of the same user.
func (im *impl) assignBidderNumber(tx ctx.Ctx, auctionId string, userId domain.UserId) (*auction.BidderNumber, error) {
	id := auction.BidderNumberId{AuctionId: auctionId, UserId: userId}

	assignment, err := im.bidderNumber.FindOne(tx, id)
	if err == nil {
		return assignment, nil
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	number, err := im.auction.IncrementNextBidderNumber(tx, auctionId)
	if err != nil {
		return nil, err
	}

	country := domain.CountryCode("")
	if acc, err := im.account.Get(tx, userId); err == nil {
		country = acc.Country
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	assignment = &auction.BidderNumber{
		AuctionId: auctionId,
		UserId:    userId,
		Number:    number,
		Country:   country,
		CreatedAt: time.Now(),
	}

	if err := im.bidderNumber.Insert(tx, assignment); err != nil {
		if err == query.ErrDuplicateKey {
			return im.bidderNumber.FindOne(tx, id)
		}
		return nil, err
	}

	return assignment, nil
}

func (im *impl) End(c ctx.Ctx, auctionId string) (*auction.Auction, error) {
	var ended *auction.Auction
	var winning *auction.Bid

	err := im.q.RunWithTransaction(c, func(tx ctx.Ctx) error {
		var err error
		ended, winning, err = im.endAuction(tx, auctionId)
		return err
	})
	if err != nil {
		return nil, err
	}

	im.notifyAsync(func(bg ctx.Ctx) {
		im.notifier.Notify(bg, auction.RKAuctionEnded, auction.EndedEvent{
			AuctionId:    ended.Id,
			ListingId:    ended.ListingId,
			Status:       ended.Status,
			WinnerId:     ended.WinnerId,
			WinningBidId: ended.WinningBidId,
			FinalPrice:   ended.FinalPrice,
			ReserveMet:   ended.ReserveMet,
			EndedAt:      ended.UpdatedAt,
		})
		if ended.Status == auction.StatusNoSale {
			var highest *int64
			if winning != nil {
				highest = ptr.Int64(winning.Amount)
			}
			im.notifier.Notify(bg, auction.RKListingUnsold, auction.ListingUnsoldEvent{
				AuctionId:  ended.Id,
				ListingId:  ended.ListingId,
				SellerId:   ended.SellerId,
				HighestBid: highest,
			})
		}
	})

	return ended, nil
}

func (im *impl) endAuction(tx ctx.Ctx, auctionId string) (*auction.Auction, *auction.Bid, error) {
	a, err := im.auction.FindOne(tx, auctionId)
	if err != nil {
		return nil, nil, err
	}
	if a.Status != auction.StatusActive {
		return nil, nil, domain.ErrInvalidPrecondition
	}

	winning, err := im.findWinningValidBid(tx, auctionId)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	result := auction.DetermineAuctionResult(winning, a.ReservePrice)

	patchable := auction.Patchable{
		Status:    &result,
		UpdatedAt: ptr.Time(now),
	}
	if result == auction.StatusSold {
		fee := auction.CalculateBuyerFee(winning.Amount, im.cfg.Fee)
		deadline := auction.CalculatePaymentDeadline(a.CurrentEndTime, im.cfg.PaymentDeadlineOffset)
		paymentStatus := auction.PaymentStatusPending

		patchable.WinnerId = &winning.BidderId
		patchable.WinningBidId = &winning.Id
		patchable.FinalPrice = ptr.Int64(winning.Amount)
		patchable.BuyerFeeAmount = &fee
		patchable.PaymentDeadline = &deadline
		patchable.PaymentStatus = &paymentStatus

		a.WinnerId = &winning.BidderId
		a.WinningBidId = &winning.Id
		a.FinalPrice = ptr.Int64(winning.Amount)
		a.BuyerFeeAmount = &fee
		a.PaymentDeadline = &deadline
		a.PaymentStatus = paymentStatus
	}

	err = im.auction.UpdateIfStatus(tx, a.Id, auction.StatusActive, patchable)
	if err == query.ErrNotFound {
		// a concurrent end already settled it
		return nil, nil, domain.ErrInvalidPrecondition
	} else if err != nil {
		return nil, nil, err
	}

	listingStatus := listing.StatusExpired
	if result == auction.StatusSold {
		listingStatus = listing.StatusSold
	}
	err = im.listing.UpdateIfStatus(tx, a.ListingId, []listing.Status{listing.StatusLive}, listing.Patchable{
		Status:    &listingStatus,
		UpdatedAt: ptr.Time(now),
	})
	if err != nil && err != query.ErrNotFound {
		return nil, nil, err
	}

	a.Status = result
	a.UpdatedAt = now

	return a, winning, nil
}

func (im *impl) findWinningValidBid(c ctx.Ctx, auctionId string) (*auction.Bid, error) {
	bids, err := im.bid.FindAll(c,
		auction.BidWithAuctionId(auctionId),
		auction.BidWithIsWinning(true),
		auction.BidWithIsValid(true),
	)
	if err != nil {
		return nil, err
	}
	if len(bids) == 0 {
		return nil, nil
	}
	return bids[0], nil
}

func (im *impl) Cancel(c ctx.Ctx, auctionId string, reason string) (*auction.Auction, error) {
	a, err := im.auction.FindOne(c, auctionId)
	if err != nil {
		return nil, err
	}
	if !a.Status.CanCancel() {
		return nil, domain.ErrInvalidPrecondition
	}

	now := time.Now()
	status := auction.StatusCancelled
	patchable := auction.Patchable{
		Status:       &status,
		CancelReason: &reason,
		UpdatedAt:    ptr.Time(now),
	}

	err = im.auction.UpdateIfStatus(c, a.Id, a.Status, patchable)
	if err == query.ErrNotFound {
		return nil, domain.ErrInvalidPrecondition
	} else if err != nil {
		return nil, err
	}

	// release the listing so the seller can withdraw or relist
	approvedStatus := listing.StatusApproved
	err = im.listing.UpdateIfStatus(c, a.ListingId, []listing.Status{listing.StatusLive}, listing.Patchable{
		Status:    &approvedStatus,
		UpdatedAt: ptr.Time(now),
	})
	if err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": a.ListingId,
		}).Error("failed to listing.UpdateIfStatus")
	}

	a.Status = status
	a.CancelReason = reason
	a.UpdatedAt = now

	im.notifyAsync(func(bg ctx.Ctx) {
		im.notifier.Notify(bg, auction.RKAuctionCancelled, auction.CancelledEvent{
			AuctionId: a.Id,
			ListingId: a.ListingId,
			Reason:    reason,
		})
	})

	return a, nil
}

func (im *impl) ActivateScheduled(c ctx.Ctx, now time.Time) (int, error) {
	rows, err := im.auction.FindAll(c,
		auction.WithStatus(auction.StatusScheduled),
		auction.WithStartTimeLTE(now),
	)
	if err != nil {
		return 0, err
	}

	activated := 0
	for _, a := range rows {
		status := auction.StatusActive
		err := im.auction.UpdateIfStatus(c, a.Id, auction.StatusScheduled, auction.Patchable{
			Status:    &status,
			UpdatedAt: ptr.Time(time.Now()),
		})
		if err == query.ErrNotFound {
			// a concurrent sweep already flipped it, it owns the notification
			continue
		} else if err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"auctionId": a.Id,
			}).Error("failed to auction.UpdateIfStatus")
			continue
		}

		activated++

		activatedAuction := a
		im.notifyAsync(func(bg ctx.Ctx) {
			im.notifier.Notify(bg, auction.RKAuctionActivated, auction.ActivatedEvent{
				AuctionId: activatedAuction.Id,
				ListingId: activatedAuction.ListingId,
				StartTime: activatedAuction.StartTime,
				EndTime:   activatedAuction.CurrentEndTime,
			})
		})
	}

	return activated, nil
}

func (im *impl) EndExpired(c ctx.Ctx, now time.Time) (int, error) {
	rows, err := im.auction.FindAll(c,
		auction.WithStatus(auction.StatusActive),
		auction.WithCurrentEndTimeLTE(now),
	)
	if err != nil {
		return 0, err
	}

	if len(rows) == 0 {
		return 0, nil
	}

	// settle expired auctions concurrently, one failing auction must not
	// starve the rest of the batch
	b := goroutines.NewBatch(4, goroutines.WithBatchSize(len(rows)))
	defer b.Close()
	for i := 0; i < len(rows); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			if _, err := im.End(c, rows[idx].Id); err != nil {
				if err != domain.ErrInvalidPrecondition {
					c.WithFields(log.Fields{
						"err":       err,
						"auctionId": rows[idx].Id,
					}).Error("failed to End")
				}
				return false, nil
			}
			return true, nil
		})
	}
	b.QueueComplete()

	ended := 0
	for ret := range b.Results() {
		if ret.Error() != nil {
			continue
		}
		if ret.Value().(bool) {
			ended++
		}
	}

	return ended, nil
}

func (im *impl) Get(c ctx.Ctx, auctionId string) (*auction.Auction, error) {
	return im.auction.FindOne(c, auctionId)
}

func (im *impl) GetByListingId(c ctx.Ctx, listingId string) (*auction.Auction, error) {
	return im.auction.FindOneByListingId(c, listingId)
}

func (im *impl) GetBidHistory(c ctx.Ctx, auctionId string, limit int32) ([]*auction.BidView, error) {
	if limit <= 0 {
		limit = defaultBidHistoryLimit
	}
	if limit > maxBidHistoryLimit {
		limit = maxBidHistoryLimit
	}

	// hot pages are read far more often than bids arrive; a short ttl bounds
	// the staleness without an invalidation protocol
	key := keys.RedisKey(keys.PfxBidHistory, auctionId, fmt.Sprint(limit))
	if im.redis != nil {
		if raw, err := im.redis.Get(c, key); err == nil {
			views := []*auction.BidView{}
			if err := json.Unmarshal(raw, &views); err == nil {
				return views, nil
			}
		}
	}

	bids, err := im.bid.FindAll(c,
		auction.BidWithAuctionId(auctionId),
		auction.BidWithPagination(0, limit),
		auction.BidWithSort("-createdAt"),
	)
	if err != nil {
		return nil, err
	}

	views := make([]*auction.BidView, 0, len(bids))
	for _, b := range bids {
		views = append(views, b.ToView())
	}

	if im.redis != nil {
		if raw, err := json.Marshal(views); err == nil {
			if err := im.redis.Set(c, key, raw, bidHistoryTtl); err != nil {
				c.WithFields(log.Fields{
					"err": err,
					"key": key,
				}).Warn("failed to redis.Set")
			}
		}
	}

	return views, nil
}

func (im *impl) GetUserBids(c ctx.Ctx, userId domain.UserId, offset, limit int32) ([]*auction.Bid, error) {
	return im.bid.FindAll(c,
		auction.BidWithBidderId(userId),
		auction.BidWithPagination(offset, limit),
		auction.BidWithSort("-createdAt"),
	)
}

func (im *impl) Search(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, int, error) {
	rows, err := im.auction.FindAll(c, opts...)
	if err != nil {
		return nil, 0, err
	}

	cnt, err := im.auction.Count(c, opts...)
	if err != nil {
		return nil, 0, err
	}

	return rows, cnt, nil
}

func (im *impl) InvalidateBid(c ctx.Ctx, auctionId, bidId, reason string) (*auction.Bid, error) {
	var invalidated *auction.Bid

	err := im.q.RunWithTransaction(c, func(tx ctx.Ctx) error {
		var err error
		invalidated, err = im.invalidateBid(tx, auctionId, bidId, reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	return invalidated, nil
}

func (im *impl) invalidateBid(tx ctx.Ctx, auctionId, bidId, reason string) (*auction.Bid, error) {
	b, err := im.bid.FindOne(tx, bidId)
	if err != nil {
		return nil, err
	}
	if b.AuctionId != auctionId {
		return nil, domain.ErrNotFound
	}
	if !b.IsValid {
		return b, nil
	}

	err = im.bid.Update(tx, b.Id, auction.BidPatchable{
		IsWinning:         ptr.Bool(false),
		IsValid:           ptr.Bool(false),
		InvalidatedReason: &reason,
	})
	if err != nil {
		return nil, err
	}

	wasWinning := b.IsWinning
	b.IsWinning = false
	b.IsValid = false
	b.InvalidatedReason = reason

	if !wasWinning {
		return b, nil
	}

	// the lead passes to the best remaining valid bid, if any
	a, err := im.auction.FindOne(tx, auctionId)
	if err != nil {
		return nil, err
	}

	candidates, err := im.bid.FindAll(tx,
		auction.BidWithAuctionId(auctionId),
		auction.BidWithIsValid(true),
		auction.BidWithSort("-amount"),
		auction.BidWithPagination(0, 1),
	)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		if err := im.auction.ClearCurrentBid(tx, auctionId, a.ReservePrice == nil); err != nil {
			return nil, err
		}
		return b, nil
	}

	next := candidates[0]
	if err := im.bid.Update(tx, next.Id, auction.BidPatchable{IsWinning: ptr.Bool(true)}); err != nil {
		return nil, err
	}

	reserveMet := auction.IsReserveMet(next.Amount, a.ReservePrice)
	err = im.auction.Update(tx, auctionId, auction.Patchable{
		CurrentBid: ptr.Int64(next.Amount),
		ReserveMet: &reserveMet,
		UpdatedAt:  ptr.Time(time.Now()),
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

// notifyAsync detaches the notification from the request so a slow broker
// cannot hold a committed state change hostage.
func (im *impl) notifyAsync(fn func(ctx.Ctx)) {
	bg := ctx.Background()
	goroutine.RecoverableGo(func() {
		fn(bg)
	})
}
