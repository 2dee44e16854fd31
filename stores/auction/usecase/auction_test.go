package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/ptr"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/account"
	mAccount "github.com/gavelauto/goapi/domain/account/mocks"
	"github.com/gavelauto/goapi/domain/auction"
	mAuction "github.com/gavelauto/goapi/domain/auction/mocks"
	"github.com/gavelauto/goapi/domain/listing"
	mListing "github.com/gavelauto/goapi/domain/listing/mocks"
	mNotifier "github.com/gavelauto/goapi/service/notifier/mocks"
	"github.com/gavelauto/goapi/service/query"
	mQuery "github.com/gavelauto/goapi/service/query/mocks"
)

type testSuite struct {
	suite.Suite

	auctionRepo      *mAuction.Repo
	bidRepo          *mAuction.BidRepo
	bidderNumberRepo *mAuction.BidderNumberRepo
	listingRepo      *mListing.Repo
	accountRepo      *mAccount.Repo
	query            *mQuery.Mongo
	notifier         *mNotifier.Service

	im auction.UseCase
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.auctionRepo = &mAuction.Repo{}
	s.bidRepo = &mAuction.BidRepo{}
	s.bidderNumberRepo = &mAuction.BidderNumberRepo{}
	s.listingRepo = &mListing.Repo{}
	s.accountRepo = &mAccount.Repo{}
	s.query = &mQuery.Mongo{}
	s.notifier = &mNotifier.Service{}

	s.query.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
			return run(c)
		}).Maybe()
	s.notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything).Maybe()

	s.im = New(&AuctionUseCaseCfg{
		AuctionRepo:      s.auctionRepo,
		BidRepo:          s.bidRepo,
		BidderNumberRepo: s.bidderNumberRepo,
		ListingRepo:      s.listingRepo,
		AccountRepo:      s.accountRepo,
		Query:            s.query,
		Notifier:         s.notifier,
		Redis:            nil,
		Config:           auction.DefaultConfig(),
	})
}

func (s *testSuite) activeAuction() *auction.Auction {
	now := time.Now()
	return &auction.Auction{
		Id:               "auction-1",
		ListingId:        "listing-1",
		SellerId:         "seller-1",
		Category:         "classic",
		Country:          "US",
		StartTime:        now.Add(-24 * time.Hour),
		OriginalEndTime:  now.Add(24 * time.Hour),
		CurrentEndTime:   now.Add(24 * time.Hour),
		MaxExtensions:    5,
		StartingPrice:    10_000_00,
		ReservePrice:     ptr.Int64(15_000_00),
		Currency:         domain.CurrencyUSD,
		ReserveMet:       false,
		NextBidderNumber: 1,
		Status:           auction.StatusActive,
	}
}

func (s *testSuite) expectFirstAssignment(number int, country domain.CountryCode) {
	s.bidderNumberRepo.On("FindOne", mock.Anything, auction.BidderNumberId{
		AuctionId: "auction-1",
		UserId:    "bidder-1",
	}).Return(nil, domain.ErrNotFound).Once()
	s.auctionRepo.On("IncrementNextBidderNumber", mock.Anything, "auction-1").Return(number, nil).Once()
	s.accountRepo.On("Get", mock.Anything, domain.UserId("bidder-1")).Return(&account.Account{
		UserId:  "bidder-1",
		Country: country,
	}, nil).Once()
	s.bidderNumberRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
}

func (s *testSuite) TestPlaceBidFirstBid() {
	c := ctx.Background()
	a := s.activeAuction()

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()
	s.expectFirstAssignment(1, "DE")
	s.bidRepo.On("Insert", mock.Anything, mock.MatchedBy(func(b *auction.Bid) bool {
		return b.AuctionId == "auction-1" &&
			b.Amount == 10_000_00 &&
			b.BidderNumber == 1 &&
			b.BidderCountry == "DE" &&
			b.IsWinning && b.IsValid && !b.TriggeredExtension
	})).Return(nil).Once()
	s.bidRepo.On("ClearWinning", mock.Anything, "auction-1", mock.Anything).Return(nil).Once()
	s.auctionRepo.On("Update", mock.Anything, "auction-1", mock.MatchedBy(func(p auction.Patchable) bool {
		return p.CurrentBid != nil && *p.CurrentBid == 10_000_00 &&
			p.BidCount != nil && *p.BidCount == 1 &&
			p.ReserveMet != nil && !*p.ReserveMet &&
			p.CurrentEndTime == nil && p.ExtensionCount == nil
	})).Return(nil).Once()

	res, err := s.im.PlaceBid(c, auction.PlaceBidParams{
		AuctionId: "auction-1",
		BidderId:  "bidder-1",
		Amount:    10_000_00,
	})
	s.Require().NoError(err)
	s.Require().False(res.Extended)
	s.Require().Equal(int64(10_000_00), res.Bid.Amount)
	s.Require().Equal(1, res.Auction.BidCount)
	s.Require().Equal(int64(10_000_00), *res.Auction.CurrentBid)
	s.Require().False(res.Auction.ReserveMet)
}

func (s *testSuite) TestPlaceBidTooLow() {
	c := ctx.Background()
	a := s.activeAuction()
	a.CurrentBid = ptr.Int64(10_000_00)
	a.BidCount = 1

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()

	// 10_000_00 sits in the 250_00 increment band
	_, err := s.im.PlaceBid(c, auction.PlaceBidParams{
		AuctionId: "auction-1",
		BidderId:  "bidder-1",
		Amount:    10_100_00,
	})
	s.Require().ErrorIs(err, domain.ErrBidTooLow)

	var tooLow *auction.BidTooLowError
	s.Require().True(errors.As(err, &tooLow))
	s.Require().Equal(int64(10_250_00), tooLow.MinimumBid)

	s.bidRepo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
	s.auctionRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *testSuite) TestPlaceBidEqualToCurrentBidIsTooLow() {
	c := ctx.Background()
	a := s.activeAuction()
	a.CurrentBid = ptr.Int64(10_000_00)
	a.BidCount = 1

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()

	_, err := s.im.PlaceBid(c, auction.PlaceBidParams{
		AuctionId: "auction-1",
		BidderId:  "bidder-1",
		Amount:    10_000_00,
	})
	s.Require().ErrorIs(err, domain.ErrBidTooLow)
}

func (s *testSuite) TestPlaceBidSelfBid() {
	c := ctx.Background()
	a := s.activeAuction()

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()

	_, err := s.im.PlaceBid(c, auction.PlaceBidParams{
		AuctionId: "auction-1",
		BidderId:  "seller-1",
		Amount:    10_000_00,
	})
	s.Require().ErrorIs(err, domain.ErrSelfBid)
}

func (s *testSuite) TestPlaceBidNotStarted() {
	c := ctx.Background()
	a := s.activeAuction()
	a.Status = auction.StatusScheduled
	a.StartTime = time.Now().Add(time.Hour)

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()

	_, err := s.im.PlaceBid(c, auction.PlaceBidParams{
		AuctionId: "auction-1",
		BidderId:  "bidder-1",
		Amount:    10_000_00,
	})
	s.Require().ErrorIs(err, domain.ErrAuctionNotStarted)
}

func (s *testSuite) TestPlaceBidAlreadyEnded() {
	c := ctx.Background()
	a := s.activeAuction()
	a.CurrentEndTime = time.Now().Add(-time.Minute)

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()

	_, err := s.im.PlaceBid(c, auction.PlaceBidParams{
		AuctionId: "auction-1",
		BidderId:  "bidder-1",
		Amount:    10_000_00,
	})
	s.Require().ErrorIs(err, domain.ErrAuctionEnded)
}

func (s *testSuite) TestPlaceBidTerminalStatus() {
	c := ctx.Background()
	a := s.activeAuction()
	a.Status = auction.StatusSold

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()

	_, err := s.im.PlaceBid(c, auction.PlaceBidParams{
		AuctionId: "auction-1",
		BidderId:  "bidder-1",
		Amount:    10_000_00,
	})
	s.Require().ErrorIs(err, domain.ErrAuctionEnded)
}

func (s *testSuite) TestPlaceBidExtendsInsideWindow() {
	c := ctx.Background()
	a := s.activeAuction()
	endTime := time.Now().Add(5 * time.Minute)
	a.CurrentEndTime = endTime
	a.CurrentBid = ptr.Int64(15_000_00)
	a.BidCount = 3

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()
	s.bidderNumberRepo.On("FindOne", mock.Anything, mock.Anything).Return(&auction.BidderNumber{
		AuctionId: "auction-1",
		UserId:    "bidder-1",
		Number:    2,
		Country:   "FR",
	}, nil).Once()
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return([]*auction.Bid{
		{Id: "bid-prev", BidderId: "bidder-2", Amount: 15_000_00, IsWinning: true, IsValid: true},
	}, nil).Once()
	s.bidRepo.On("Insert", mock.Anything, mock.MatchedBy(func(b *auction.Bid) bool {
		return b.TriggeredExtension && b.BidderNumber == 2
	})).Return(nil).Once()
	s.bidRepo.On("ClearWinning", mock.Anything, "auction-1", mock.Anything).Return(nil).Once()

	// extensions compound on the scheduled close, not on time.Now()
	wantEnd := endTime.Add(10 * time.Minute)
	s.auctionRepo.On("Update", mock.Anything, "auction-1", mock.MatchedBy(func(p auction.Patchable) bool {
		return p.CurrentEndTime != nil && p.CurrentEndTime.Equal(wantEnd) &&
			p.ExtensionCount != nil && *p.ExtensionCount == 1 &&
			p.ReserveMet != nil && *p.ReserveMet
	})).Return(nil).Once()

	res, err := s.im.PlaceBid(c, auction.PlaceBidParams{
		AuctionId: "auction-1",
		BidderId:  "bidder-1",
		Amount:    15_250_00,
	})
	s.Require().NoError(err)
	s.Require().True(res.Extended)
	s.Require().True(res.Auction.CurrentEndTime.Equal(wantEnd))
	s.Require().Equal(1, res.Auction.ExtensionCount)
}

func (s *testSuite) TestPlaceBidExtensionBudgetExhausted() {
	c := ctx.Background()
	a := s.activeAuction()
	a.CurrentEndTime = time.Now().Add(5 * time.Minute)
	a.ExtensionCount = 5
	a.CurrentBid = ptr.Int64(15_000_00)
	a.BidCount = 7

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()
	s.bidderNumberRepo.On("FindOne", mock.Anything, mock.Anything).Return(&auction.BidderNumber{
		AuctionId: "auction-1",
		UserId:    "bidder-1",
		Number:    2,
		Country:   "FR",
	}, nil).Once()
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return([]*auction.Bid{}, nil).Once()
	s.bidRepo.On("Insert", mock.Anything, mock.MatchedBy(func(b *auction.Bid) bool {
		return !b.TriggeredExtension
	})).Return(nil).Once()
	s.bidRepo.On("ClearWinning", mock.Anything, "auction-1", mock.Anything).Return(nil).Once()
	s.auctionRepo.On("Update", mock.Anything, "auction-1", mock.MatchedBy(func(p auction.Patchable) bool {
		return p.CurrentEndTime == nil && p.ExtensionCount == nil
	})).Return(nil).Once()

	res, err := s.im.PlaceBid(c, auction.PlaceBidParams{
		AuctionId: "auction-1",
		BidderId:  "bidder-1",
		Amount:    15_250_00,
	})
	s.Require().NoError(err)
	s.Require().False(res.Extended)
}

func (s *testSuite) TestPlaceBidDuplicateAssignmentRace() {
	c := ctx.Background()
	a := s.activeAuction()

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()

	assignment := &auction.BidderNumber{
		AuctionId: "auction-1",
		UserId:    "bidder-1",
		Number:    1,
		Country:   "US",
	}
	s.bidderNumberRepo.On("FindOne", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound).Once()
	s.auctionRepo.On("IncrementNextBidderNumber", mock.Anything, "auction-1").Return(2, nil).Once()
	s.accountRepo.On("Get", mock.Anything, domain.UserId("bidder-1")).Return(nil, domain.ErrNotFound).Once()
	s.bidderNumberRepo.On("Insert", mock.Anything, mock.Anything).Return(query.ErrDuplicateKey).Once()
	s.bidderNumberRepo.On("FindOne", mock.Anything, mock.Anything).Return(assignment, nil).Once()

	s.bidRepo.On("Insert", mock.Anything, mock.MatchedBy(func(b *auction.Bid) bool {
		return b.BidderNumber == 1 && b.BidderCountry == "US"
	})).Return(nil).Once()
	s.bidRepo.On("ClearWinning", mock.Anything, "auction-1", mock.Anything).Return(nil).Once()
	s.auctionRepo.On("Update", mock.Anything, "auction-1", mock.Anything).Return(nil).Once()

	_, err := s.im.PlaceBid(c, auction.PlaceBidParams{
		AuctionId: "auction-1",
		BidderId:  "bidder-1",
		Amount:    10_000_00,
	})
	s.Require().NoError(err)
}

func (s *testSuite) TestEndSold() {
	c := ctx.Background()
	a := s.activeAuction()
	a.CurrentBid = ptr.Int64(20_000_00)
	a.BidCount = 4
	a.ReserveMet = true

	winning := &auction.Bid{
		Id:        "bid-9",
		AuctionId: "auction-1",
		BidderId:  "bidder-9",
		Amount:    20_000_00,
		IsWinning: true,
		IsValid:   true,
	}

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*auction.Bid{winning}, nil).Once()
	s.auctionRepo.On("UpdateIfStatus", mock.Anything, "auction-1", auction.StatusActive,
		mock.MatchedBy(func(p auction.Patchable) bool {
			return p.Status != nil && *p.Status == auction.StatusSold &&
				p.WinnerId != nil && *p.WinnerId == "bidder-9" &&
				p.WinningBidId != nil && *p.WinningBidId == "bid-9" &&
				p.FinalPrice != nil && *p.FinalPrice == 20_000_00 &&
				p.BuyerFeeAmount != nil && *p.BuyerFeeAmount == 900_00 &&
				p.PaymentDeadline != nil &&
				p.PaymentStatus != nil && *p.PaymentStatus == auction.PaymentStatusPending
		})).Return(nil).Once()
	s.listingRepo.On("UpdateIfStatus", mock.Anything, "listing-1", []listing.Status{listing.StatusLive},
		mock.MatchedBy(func(p listing.Patchable) bool {
			return p.Status != nil && *p.Status == listing.StatusSold
		})).Return(nil).Once()

	res, err := s.im.End(c, "auction-1")
	s.Require().NoError(err)
	s.Require().Equal(auction.StatusSold, res.Status)
	s.Require().Equal(int64(900_00), *res.BuyerFeeAmount)
	s.Require().Equal(auction.PaymentStatusPending, res.PaymentStatus)
}

func (s *testSuite) TestEndBuyerFeeFloor() {
	c := ctx.Background()
	a := s.activeAuction()
	a.StartingPrice = 3_000_00
	a.ReservePrice = nil
	a.CurrentBid = ptr.Int64(3_000_00)
	a.BidCount = 1
	a.ReserveMet = true

	winning := &auction.Bid{
		Id:        "bid-1",
		AuctionId: "auction-1",
		BidderId:  "bidder-1",
		Amount:    3_000_00,
		IsWinning: true,
		IsValid:   true,
	}

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*auction.Bid{winning}, nil).Once()
	// 4.5% of 3000.00 is 135.00, below the 250.00 floor
	s.auctionRepo.On("UpdateIfStatus", mock.Anything, "auction-1", auction.StatusActive,
		mock.MatchedBy(func(p auction.Patchable) bool {
			return p.BuyerFeeAmount != nil && *p.BuyerFeeAmount == 250_00
		})).Return(nil).Once()
	s.listingRepo.On("UpdateIfStatus", mock.Anything, "listing-1", mock.Anything, mock.Anything).
		Return(nil).Once()

	res, err := s.im.End(c, "auction-1")
	s.Require().NoError(err)
	s.Require().Equal(int64(250_00), *res.BuyerFeeAmount)
}

func (s *testSuite) TestEndNoSaleReserveNotMet() {
	c := ctx.Background()
	a := s.activeAuction()
	a.CurrentBid = ptr.Int64(12_000_00)
	a.BidCount = 2

	winning := &auction.Bid{
		Id:        "bid-2",
		AuctionId: "auction-1",
		BidderId:  "bidder-2",
		Amount:    12_000_00,
		IsWinning: true,
		IsValid:   true,
	}

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*auction.Bid{winning}, nil).Once()
	s.auctionRepo.On("UpdateIfStatus", mock.Anything, "auction-1", auction.StatusActive,
		mock.MatchedBy(func(p auction.Patchable) bool {
			return p.Status != nil && *p.Status == auction.StatusNoSale &&
				p.WinnerId == nil && p.FinalPrice == nil
		})).Return(nil).Once()
	s.listingRepo.On("UpdateIfStatus", mock.Anything, "listing-1", []listing.Status{listing.StatusLive},
		mock.MatchedBy(func(p listing.Patchable) bool {
			return p.Status != nil && *p.Status == listing.StatusExpired
		})).Return(nil).Once()

	res, err := s.im.End(c, "auction-1")
	s.Require().NoError(err)
	s.Require().Equal(auction.StatusNoSale, res.Status)
	s.Require().Nil(res.WinnerId)
}

func (s *testSuite) TestEndNoBids() {
	c := ctx.Background()
	a := s.activeAuction()

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*auction.Bid{}, nil).Once()
	s.auctionRepo.On("UpdateIfStatus", mock.Anything, "auction-1", auction.StatusActive,
		mock.MatchedBy(func(p auction.Patchable) bool {
			return p.Status != nil && *p.Status == auction.StatusNoSale
		})).Return(nil).Once()
	s.listingRepo.On("UpdateIfStatus", mock.Anything, "listing-1", mock.Anything, mock.Anything).
		Return(nil).Once()

	res, err := s.im.End(c, "auction-1")
	s.Require().NoError(err)
	s.Require().Equal(auction.StatusNoSale, res.Status)
}

func (s *testSuite) TestEndNotActive() {
	c := ctx.Background()
	a := s.activeAuction()
	a.Status = auction.StatusSold

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()

	_, err := s.im.End(c, "auction-1")
	s.Require().ErrorIs(err, domain.ErrInvalidPrecondition)
}

func (s *testSuite) TestCancel() {
	c := ctx.Background()
	a := s.activeAuction()

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()
	s.auctionRepo.On("UpdateIfStatus", mock.Anything, "auction-1", auction.StatusActive,
		mock.MatchedBy(func(p auction.Patchable) bool {
			return p.Status != nil && *p.Status == auction.StatusCancelled &&
				p.CancelReason != nil && *p.CancelReason == "title dispute"
		})).Return(nil).Once()
	s.listingRepo.On("UpdateIfStatus", mock.Anything, "listing-1", []listing.Status{listing.StatusLive},
		mock.MatchedBy(func(p listing.Patchable) bool {
			return p.Status != nil && *p.Status == listing.StatusApproved
		})).Return(nil).Once()

	res, err := s.im.Cancel(c, "auction-1", "title dispute")
	s.Require().NoError(err)
	s.Require().Equal(auction.StatusCancelled, res.Status)
	s.Require().Equal("title dispute", res.CancelReason)
}

func (s *testSuite) TestCancelTerminal() {
	c := ctx.Background()
	a := s.activeAuction()
	a.Status = auction.StatusNoSale

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()

	_, err := s.im.Cancel(c, "auction-1", "whatever")
	s.Require().ErrorIs(err, domain.ErrInvalidPrecondition)
}

func (s *testSuite) TestActivateScheduled() {
	c := ctx.Background()
	now := time.Now()

	due := []*auction.Auction{
		{Id: "auction-1", ListingId: "listing-1", Status: auction.StatusScheduled},
		{Id: "auction-2", ListingId: "listing-2", Status: auction.StatusScheduled},
	}

	s.auctionRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return(due, nil).Once()
	s.auctionRepo.On("UpdateIfStatus", mock.Anything, "auction-1", auction.StatusScheduled, mock.Anything).
		Return(nil).Once()
	// a concurrent sweep already flipped auction-2, this call must not count
	// or notify it
	s.auctionRepo.On("UpdateIfStatus", mock.Anything, "auction-2", auction.StatusScheduled, mock.Anything).
		Return(query.ErrNotFound).Once()

	cnt, err := s.im.ActivateScheduled(c, now)
	s.Require().NoError(err)
	s.Require().Equal(1, cnt)
}

func (s *testSuite) TestEndExpired() {
	c := ctx.Background()
	now := time.Now()

	expired := s.activeAuction()
	alreadyEnded := s.activeAuction()
	alreadyEnded.Id = "auction-2"
	alreadyEnded.Status = auction.StatusNoSale

	s.auctionRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).
		Return([]*auction.Auction{expired, alreadyEnded}, nil).Once()

	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(expired, nil).Once()
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*auction.Bid{}, nil).Once()
	s.auctionRepo.On("UpdateIfStatus", mock.Anything, "auction-1", auction.StatusActive, mock.Anything).
		Return(nil).Once()
	s.listingRepo.On("UpdateIfStatus", mock.Anything, "listing-1", mock.Anything, mock.Anything).
		Return(nil).Once()

	s.auctionRepo.On("FindOne", mock.Anything, "auction-2").Return(alreadyEnded, nil).Once()

	cnt, err := s.im.EndExpired(c, now)
	s.Require().NoError(err)
	s.Require().Equal(1, cnt)
}

func (s *testSuite) TestInvalidateBidRepointsWinner() {
	c := ctx.Background()
	a := s.activeAuction()
	a.CurrentBid = ptr.Int64(16_000_00)
	a.BidCount = 2
	a.ReserveMet = true

	invalidated := &auction.Bid{
		Id:        "bid-2",
		AuctionId: "auction-1",
		BidderId:  "bidder-2",
		Amount:    16_000_00,
		IsWinning: true,
		IsValid:   true,
	}
	runnerUp := &auction.Bid{
		Id:        "bid-1",
		AuctionId: "auction-1",
		BidderId:  "bidder-1",
		Amount:    14_000_00,
		IsWinning: false,
		IsValid:   true,
	}

	s.bidRepo.On("FindOne", mock.Anything, "bid-2").Return(invalidated, nil).Once()
	s.bidRepo.On("Update", mock.Anything, "bid-2", mock.MatchedBy(func(p auction.BidPatchable) bool {
		return p.IsValid != nil && !*p.IsValid &&
			p.IsWinning != nil && !*p.IsWinning &&
			p.InvalidatedReason != nil && *p.InvalidatedReason == "shill bidding"
	})).Return(nil).Once()
	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*auction.Bid{runnerUp}, nil).Once()
	s.bidRepo.On("Update", mock.Anything, "bid-1", mock.MatchedBy(func(p auction.BidPatchable) bool {
		return p.IsWinning != nil && *p.IsWinning
	})).Return(nil).Once()
	// the runner up is below the reserve, reserveMet drops back to false
	s.auctionRepo.On("Update", mock.Anything, "auction-1", mock.MatchedBy(func(p auction.Patchable) bool {
		return p.CurrentBid != nil && *p.CurrentBid == 14_000_00 &&
			p.ReserveMet != nil && !*p.ReserveMet
	})).Return(nil).Once()

	res, err := s.im.InvalidateBid(c, "auction-1", "bid-2", "shill bidding")
	s.Require().NoError(err)
	s.Require().False(res.IsValid)
	s.Require().False(res.IsWinning)
	s.Require().Equal("shill bidding", res.InvalidatedReason)
}

func (s *testSuite) TestInvalidateLastValidBid() {
	c := ctx.Background()
	a := s.activeAuction()
	a.CurrentBid = ptr.Int64(16_000_00)
	a.BidCount = 1
	a.ReserveMet = true

	invalidated := &auction.Bid{
		Id:        "bid-1",
		AuctionId: "auction-1",
		BidderId:  "bidder-1",
		Amount:    16_000_00,
		IsWinning: true,
		IsValid:   true,
	}

	s.bidRepo.On("FindOne", mock.Anything, "bid-1").Return(invalidated, nil).Once()
	s.bidRepo.On("Update", mock.Anything, "bid-1", mock.Anything).Return(nil).Once()
	s.auctionRepo.On("FindOne", mock.Anything, "auction-1").Return(a, nil).Once()
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*auction.Bid{}, nil).Once()
	s.auctionRepo.On("ClearCurrentBid", mock.Anything, "auction-1", false).Return(nil).Once()

	res, err := s.im.InvalidateBid(c, "auction-1", "bid-1", "fraud")
	s.Require().NoError(err)
	s.Require().False(res.IsValid)
	s.auctionRepo.AssertCalled(s.T(), "ClearCurrentBid", mock.Anything, "auction-1", false)
}

func (s *testSuite) TestInvalidateBidWrongAuction() {
	c := ctx.Background()

	s.bidRepo.On("FindOne", mock.Anything, "bid-1").Return(&auction.Bid{
		Id:        "bid-1",
		AuctionId: "auction-9",
		IsValid:   true,
	}, nil).Once()

	_, err := s.im.InvalidateBid(c, "auction-1", "bid-1", "fraud")
	s.Require().ErrorIs(err, domain.ErrNotFound)
}

func (s *testSuite) TestCreateScheduled() {
	c := ctx.Background()
	start := time.Now().Add(48 * time.Hour)

	l := &listing.Listing{
		Id:            "listing-1",
		SellerId:      "seller-1",
		Status:        listing.StatusApproved,
		Category:      "classic",
		Country:       "US",
		StartingPrice: 10_000_00,
		ReservePrice:  ptr.Int64(15_000_00),
		Currency:      domain.CurrencyUSD,
	}

	s.listingRepo.On("FindOne", mock.Anything, "listing-1").Return(l, nil).Once()
	s.auctionRepo.On("FindOneByListingId", mock.Anything, "listing-1").Return(nil, domain.ErrNotFound).Once()
	s.auctionRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a *auction.Auction) bool {
		return a.ListingId == "listing-1" &&
			a.Status == auction.StatusScheduled &&
			a.OriginalEndTime.Equal(start.AddDate(0, 0, 7)) &&
			a.CurrentEndTime.Equal(a.OriginalEndTime) &&
			a.StartingPrice == 10_000_00 &&
			!a.ReserveMet &&
			a.NextBidderNumber == 1
	})).Return(nil).Once()
	s.listingRepo.On("UpdateIfStatus", mock.Anything, "listing-1", []listing.Status{listing.StatusApproved},
		mock.MatchedBy(func(p listing.Patchable) bool {
			return p.Status != nil && *p.Status == listing.StatusLive
		})).Return(nil).Once()

	res, err := s.im.Create(c, auction.CreateParams{
		ListingId:    "listing-1",
		StartTime:    start,
		DurationDays: 7,
	})
	s.Require().NoError(err)
	s.Require().Equal(auction.StatusScheduled, res.Status)
	s.Require().Equal("seller-1", res.SellerId.String())
}

func (s *testSuite) TestCreateListingNotApproved() {
	c := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, "listing-1").Return(&listing.Listing{
		Id:     "listing-1",
		Status: listing.StatusPending,
	}, nil).Once()

	_, err := s.im.Create(c, auction.CreateParams{
		ListingId:    "listing-1",
		StartTime:    time.Now(),
		DurationDays: 7,
	})
	s.Require().ErrorIs(err, domain.ErrInvalidPrecondition)
}

func (s *testSuite) TestCreateDurationOutOfRange() {
	c := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, "listing-1").Return(&listing.Listing{
		Id:     "listing-1",
		Status: listing.StatusApproved,
	}, nil).Twice()

	_, err := s.im.Create(c, auction.CreateParams{
		ListingId:    "listing-1",
		StartTime:    time.Now(),
		DurationDays: 2,
	})
	s.Require().ErrorIs(err, domain.ErrInvalidPrecondition)

	_, err = s.im.Create(c, auction.CreateParams{
		ListingId:    "listing-1",
		StartTime:    time.Now(),
		DurationDays: 15,
	})
	s.Require().ErrorIs(err, domain.ErrInvalidPrecondition)
}

func (s *testSuite) TestCreateDuplicate() {
	c := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, "listing-1").Return(&listing.Listing{
		Id:     "listing-1",
		Status: listing.StatusApproved,
	}, nil).Once()
	s.auctionRepo.On("FindOneByListingId", mock.Anything, "listing-1").
		Return(&auction.Auction{Id: "auction-1"}, nil).Once()

	_, err := s.im.Create(c, auction.CreateParams{
		ListingId:    "listing-1",
		StartTime:    time.Now(),
		DurationDays: 7,
	})
	s.Require().ErrorIs(err, domain.ErrConflict)
}

func (s *testSuite) TestGetBidHistoryHidesBidderIdentity() {
	c := ctx.Background()

	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*auction.Bid{
			{Id: "bid-1", AuctionId: "auction-1", BidderId: "bidder-1", Amount: 10_000_00, BidderNumber: 1, BidderCountry: "US", IsWinning: false, IsValid: true},
			{Id: "bid-2", AuctionId: "auction-1", BidderId: "bidder-2", Amount: 10_250_00, BidderNumber: 2, BidderCountry: "DE", IsWinning: true, IsValid: true},
		}, nil).Once()

	views, err := s.im.GetBidHistory(c, "auction-1", 0)
	s.Require().NoError(err)
	s.Require().Len(views, 2)
	s.Require().Equal(1, views[0].BidderNumber)
	s.Require().Equal(domain.CountryCode("DE"), views[1].BidderCountry)
}
