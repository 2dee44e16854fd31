package auction

import (
	"time"

	"github.com/gavelauto/goapi/domain"
)

// Routing keys of the outbound auction events. Delivery is owned by the
// notification consumers; the engine only publishes, after commit, and never
// blocks on the broker.
const (
	RKAuctionActivated = "auction.activated"
	RKAuctionExtended  = "auction.extended"
	RKAuctionEnded     = "auction.ended"
	RKAuctionCancelled = "auction.cancelled"
	RKAuctionOutbid    = "auction.outbid"
	RKListingUnsold    = "listing.unsold"
)

type ActivatedEvent struct {
	AuctionId string    `json:"auctionId"`
	ListingId string    `json:"listingId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type ExtendedEvent struct {
	AuctionId      string    `json:"auctionId"`
	BidId          string    `json:"bidId"`
	CurrentEndTime time.Time `json:"currentEndTime"`
	ExtensionCount int       `json:"extensionCount"`
}

type EndedEvent struct {
	AuctionId    string         `json:"auctionId"`
	ListingId    string         `json:"listingId"`
	Status       Status         `json:"status"`
	WinnerId     *domain.UserId `json:"winnerId,omitempty"`
	WinningBidId *string        `json:"winningBidId,omitempty"`
	FinalPrice   *int64         `json:"finalPrice,omitempty"`
	ReserveMet   bool           `json:"reserveMet"`
	EndedAt      time.Time      `json:"endedAt"`
}

type CancelledEvent struct {
	AuctionId string `json:"auctionId"`
	ListingId string `json:"listingId"`
	Reason    string `json:"reason"`
}

// OutbidEvent tells the previous leader they lost the lead.
type OutbidEvent struct {
	AuctionId     string        `json:"auctionId"`
	OutbidUserId  domain.UserId `json:"outbidUserId"`
	CurrentAmount int64         `json:"currentAmount"`
}

// ListingUnsoldEvent nudges the seller-facing improvement pipeline; it is
// fire-and-forget and outside the engine's consistency boundary.
type ListingUnsoldEvent struct {
	AuctionId  string         `json:"auctionId"`
	ListingId  string         `json:"listingId"`
	SellerId   domain.UserId  `json:"sellerId"`
	HighestBid *int64         `json:"highestBid,omitempty"`
}
