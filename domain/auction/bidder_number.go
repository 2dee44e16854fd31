package auction

import (
	"time"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/domain"
)

// BidderNumber is the frozen (auction, user) identity assignment. Once
// written it never changes, which keeps a user's bid history continuous
// within the auction even if their profile changes afterwards.
type BidderNumber struct {
	AuctionId string             `json:"auctionId" bson:"auctionId"`
	UserId    domain.UserId      `json:"userId" bson:"userId"`
	Number    int                `json:"number" bson:"number"`
	Country   domain.CountryCode `json:"country" bson:"country"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type BidderNumberId struct {
	AuctionId string        `bson:"auctionId"`
	UserId    domain.UserId `bson:"userId"`
}

func (bn *BidderNumber) ToId() BidderNumberId {
	return BidderNumberId{
		AuctionId: bn.AuctionId,
		UserId:    bn.UserId,
	}
}

type BidderNumberRepo interface {
	FindOne(ctx ctx.Ctx, id BidderNumberId) (*BidderNumber, error)
	// Insert relies on a unique index over (auctionId, userId) and returns
	// query.ErrDuplicateKey when the pair is already assigned.
	Insert(ctx ctx.Ctx, assignment *BidderNumber) error
}
