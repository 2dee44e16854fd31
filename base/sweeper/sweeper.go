package sweeper

import (
	"time"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/log"
	"github.com/gavelauto/goapi/domain/auction"
)

// AuctionSweeper periodically activates scheduled auctions that are due to
// start and ends active auctions whose close time has passed. Both entry
// points are idempotent, so overlapping deployments of the sweeper are safe.
type AuctionSweeper struct {
	auction   auction.UseCase
	interval  time.Duration
	errorCh   chan error
	stoppedCh chan interface{}
}

func NewAuctionSweeper(auctionUseCase auction.UseCase, errCh chan error) *AuctionSweeper {
	return &AuctionSweeper{
		auction:   auctionUseCase,
		errorCh:   errCh,
		stoppedCh: make(chan interface{}),
	}
}

func (im *AuctionSweeper) SetInterval(interval time.Duration) *AuctionSweeper {
	im.interval = interval
	return im
}

func (im *AuctionSweeper) Start(ctx ctx.Ctx) {
	go im.loop(ctx)
}

func (im *AuctionSweeper) loop(ctx ctx.Ctx) {
	errAndStop := func(err error) {
		im.errorCh <- err
		close(im.stoppedCh)
	}

	nextTick := time.Second * 0

	for {
		select {
		case <-ctx.Done():
			close(im.stoppedCh)
			return
		case <-time.After(nextTick):
			now := time.Now()

			activated, err := im.auction.ActivateScheduled(ctx, now)
			if err != nil {
				ctx.WithField("err", err).Error("im.auction.ActivateScheduled failed")
				errAndStop(err)
				return
			}

			ended, err := im.auction.EndExpired(ctx, now)
			if err != nil {
				ctx.WithField("err", err).Error("im.auction.EndExpired failed")
				errAndStop(err)
				return
			}

			if activated > 0 || ended > 0 {
				ctx.WithFields(log.Fields{
					"activated": activated,
					"ended":     ended,
				}).Info("sweep done")
			}

			nextTick = im.interval
		}
	}
}

func (im *AuctionSweeper) Wait() {
	<-im.stoppedCh
}
