package auction

import (
	"time"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/domain"
)

// Bid is an append-only fact. After insertion only two controlled mutations
// exist: IsWinning flips to false when a later bid supersedes it, and
// IsValid/InvalidatedReason are set by the moderation override.
type Bid struct {
	Id        string        `json:"id" bson:"id"`
	AuctionId string        `json:"auctionId" bson:"auctionId"`
	BidderId  domain.UserId `json:"-" bson:"bidderId"`

	Amount int64 `json:"amount" bson:"amount"`

	// anonymous identity shown to other participants
	BidderNumber  int                `json:"bidderNumber" bson:"bidderNumber"`
	BidderCountry domain.CountryCode `json:"bidderCountry" bson:"bidderCountry"`

	IsWinning           bool   `json:"isWinning" bson:"isWinning"`
	IsValid             bool   `json:"isValid" bson:"isValid"`
	InvalidatedReason   string `json:"invalidatedReason,omitempty" bson:"invalidatedReason,omitempty"`
	TriggeredExtension  bool   `json:"triggeredExtension" bson:"triggeredExtension"`

	Meta domain.RequestMeta `json:"-" bson:"meta,omitempty"`

	// CreatedAt is the authoritative ordering key within one auction
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// BidView is the public projection of a bid: the bidder's real identity is
// replaced by the auction-scoped anonymous number.
type BidView struct {
	Id                 string             `json:"id"`
	AuctionId          string             `json:"auctionId"`
	Amount             int64              `json:"amount"`
	BidderNumber       int                `json:"bidderNumber"`
	BidderCountry      domain.CountryCode `json:"bidderCountry"`
	IsWinning          bool               `json:"isWinning"`
	IsValid            bool               `json:"isValid"`
	TriggeredExtension bool               `json:"triggeredExtension"`
	CreatedAt          time.Time          `json:"createdAt"`
}

func (b *Bid) ToView() *BidView {
	return &BidView{
		Id:                 b.Id,
		AuctionId:          b.AuctionId,
		Amount:             b.Amount,
		BidderNumber:       b.BidderNumber,
		BidderCountry:      b.BidderCountry,
		IsWinning:          b.IsWinning,
		IsValid:            b.IsValid,
		TriggeredExtension: b.TriggeredExtension,
		CreatedAt:          b.CreatedAt,
	}
}

type BidPatchable struct {
	IsWinning         *bool   `bson:"isWinning,omitempty"`
	IsValid           *bool   `bson:"isValid,omitempty"`
	InvalidatedReason *string `bson:"invalidatedReason,omitempty"`
}

type BidFindAllOptions struct {
	AuctionId *string
	BidderId  *domain.UserId
	IsWinning *bool
	IsValid   *bool
	Offset    *int32
	Limit     *int32
	Sort      *string
}

type BidFindAllOptionsFunc func(*BidFindAllOptions) error

func GetBidFindAllOptions(opts ...BidFindAllOptionsFunc) (BidFindAllOptions, error) {
	res := BidFindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func BidWithAuctionId(auctionId string) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.AuctionId = &auctionId
		return nil
	}
}

func BidWithBidderId(bidderId domain.UserId) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.BidderId = &bidderId
		return nil
	}
}

func BidWithIsWinning(isWinning bool) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.IsWinning = &isWinning
		return nil
	}
}

func BidWithIsValid(isValid bool) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.IsValid = &isValid
		return nil
	}
}

func BidWithPagination(offset, limit int32) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func BidWithSort(sort string) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

type BidRepo interface {
	FindAll(ctx ctx.Ctx, opts ...BidFindAllOptionsFunc) ([]*Bid, error)
	Count(ctx ctx.Ctx, opts ...BidFindAllOptionsFunc) (int, error)
	FindOne(ctx ctx.Ctx, id string) (*Bid, error)
	Insert(ctx ctx.Ctx, bid *Bid) error
	Update(ctx ctx.Ctx, id string, patchable BidPatchable) error
	// ClearWinning flips every winning bid of the auction except `exceptBidId`
	// to not winning. Passing an empty exceptBidId clears all of them.
	ClearWinning(ctx ctx.Ctx, auctionId string, exceptBidId string) error
}
