package auction

import (
	"time"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/domain"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusSold      Status = "sold"
	StatusNoSale    Status = "no_sale"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether no further transition can happen from s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusSold, StatusNoSale, StatusCancelled:
		return true
	}
	return false
}

// CanCancel reports whether an admin cancellation is still allowed from s.
func (s Status) CanCancel() bool {
	return s == StatusScheduled || s == StatusActive
}

type PaymentStatus string

const (
	PaymentStatusNone    PaymentStatus = ""
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Auction is the aggregate root of the bidding engine. The pricing fields are
// copied from the listing at creation time and never read from the listing
// again. Settlement fields are written exactly once, at termination.
type Auction struct {
	Id        string        `json:"id" bson:"id"`
	ListingId string        `json:"listingId" bson:"listingId"`
	SellerId  domain.UserId `json:"sellerId" bson:"sellerId"`

	// search attributes copied from the listing
	Category string             `json:"category" bson:"category"`
	Country  domain.CountryCode `json:"country" bson:"country"`

	StartTime       time.Time `json:"startTime" bson:"startTime"`
	OriginalEndTime time.Time `json:"originalEndTime" bson:"originalEndTime"`
	// CurrentEndTime only ever moves forward, via anti-sniping extensions
	CurrentEndTime time.Time `json:"currentEndTime" bson:"currentEndTime"`
	ExtensionCount int       `json:"extensionCount" bson:"extensionCount"`
	MaxExtensions  int       `json:"maxExtensions" bson:"maxExtensions"`

	StartingPrice int64           `json:"startingPrice" bson:"startingPrice"`
	ReservePrice  *int64          `json:"reservePrice,omitempty" bson:"reservePrice,omitempty"`
	Currency      domain.Currency `json:"currency" bson:"currency"`

	// CurrentBid is nil until the first bid is admitted
	CurrentBid       *int64 `json:"currentBid,omitempty" bson:"currentBid,omitempty"`
	BidCount         int    `json:"bidCount" bson:"bidCount"`
	ReserveMet       bool   `json:"reserveMet" bson:"reserveMet"`
	NextBidderNumber int    `json:"-" bson:"nextBidderNumber"`

	Status       Status `json:"status" bson:"status"`
	CancelReason string `json:"cancelReason,omitempty" bson:"cancelReason,omitempty"`

	WinnerId        *domain.UserId `json:"winnerId,omitempty" bson:"winnerId,omitempty"`
	WinningBidId    *string        `json:"winningBidId,omitempty" bson:"winningBidId,omitempty"`
	FinalPrice      *int64         `json:"finalPrice,omitempty" bson:"finalPrice,omitempty"`
	BuyerFeeAmount  *int64         `json:"buyerFeeAmount,omitempty" bson:"buyerFeeAmount,omitempty"`
	PaymentDeadline *time.Time     `json:"paymentDeadline,omitempty" bson:"paymentDeadline,omitempty"`
	PaymentStatus   PaymentStatus  `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Patchable struct {
	CurrentBid       *int64         `bson:"currentBid,omitempty"`
	BidCount         *int           `bson:"bidCount,omitempty"`
	ReserveMet       *bool          `bson:"reserveMet,omitempty"`
	CurrentEndTime   *time.Time     `bson:"currentEndTime,omitempty"`
	ExtensionCount   *int           `bson:"extensionCount,omitempty"`
	Status           *Status        `bson:"status,omitempty"`
	CancelReason     *string        `bson:"cancelReason,omitempty"`
	WinnerId         *domain.UserId `bson:"winnerId,omitempty"`
	WinningBidId     *string        `bson:"winningBidId,omitempty"`
	FinalPrice       *int64         `bson:"finalPrice,omitempty"`
	BuyerFeeAmount   *int64         `bson:"buyerFeeAmount,omitempty"`
	PaymentDeadline  *time.Time     `bson:"paymentDeadline,omitempty"`
	PaymentStatus    *PaymentStatus `bson:"paymentStatus,omitempty"`
	UpdatedAt        *time.Time     `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	Status            *Status
	SellerId          *domain.UserId
	Category          *string
	Country           *domain.CountryCode
	StartTimeLTE      *time.Time
	CurrentEndTimeLTE *time.Time
	PriceGTE          *int64
	PriceLTE          *int64
	SearchText        *string
	Offset            *int32
	Limit             *int32
	SortBy            *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithSellerId(sellerId domain.UserId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SellerId = &sellerId
		return nil
	}
}

func WithCategory(category string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Category = &category
		return nil
	}
}

func WithCountry(country domain.CountryCode) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Country = &country
		return nil
	}
}

func WithStartTimeLTE(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.StartTimeLTE = &t
		return nil
	}
}

func WithCurrentEndTimeLTE(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.CurrentEndTimeLTE = &t
		return nil
	}
}

func WithPriceRange(gte, lte *int64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.PriceGTE = gte
		options.PriceLTE = lte
		return nil
	}
}

func WithSearchText(text string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SearchText = &text
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sort
		return nil
	}
}

type Repo interface {
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	FindOne(ctx ctx.Ctx, id string) (*Auction, error)
	FindOneByListingId(ctx ctx.Ctx, listingId string) (*Auction, error)
	Insert(ctx ctx.Ctx, auction *Auction) error
	Update(ctx ctx.Ctx, id string, patchable Patchable) error
	// UpdateIfStatus patches the auction only when its current status equals
	// `from`. It is the atomic gate that keeps lifecycle transitions
	// monotonic and bulk operations idempotent: a row that was already
	// flipped by a concurrent call reports query.ErrNotFound instead of
	// being transitioned twice.
	UpdateIfStatus(ctx ctx.Ctx, id string, from Status, patchable Patchable) error
	// IncrementNextBidderNumber atomically bumps the per-auction bidder
	// number counter and returns the value before the bump.
	IncrementNextBidderNumber(ctx ctx.Ctx, id string) (int, error)
	// ClearCurrentBid unsets the current bid. Patchable cannot express an
	// unset, and nil is the only honest value once every bid of the auction
	// has been invalidated.
	ClearCurrentBid(ctx ctx.Ctx, id string, reserveMet bool) error
}

type CreateParams struct {
	ListingId    string    `json:"listingId" validate:"required"`
	StartTime    time.Time `json:"startTime" validate:"required"`
	DurationDays int       `json:"durationDays" validate:"required"`
}

type PlaceBidParams struct {
	AuctionId string             `json:"-"`
	BidderId  domain.UserId      `json:"-"`
	Amount    int64              `json:"amount" validate:"required,gt=0"`
	Meta      domain.RequestMeta `json:"-"`
}

// PlaceBidResult is the snapshot returned to the caller after a successful
// admission: the created bid, the auction as of the commit and whether this
// bid moved the closing time.
type PlaceBidResult struct {
	Bid      *Bid     `json:"bid"`
	Auction  *Auction `json:"auction"`
	Extended bool     `json:"extended"`
}

type UseCase interface {
	Create(ctx ctx.Ctx, params CreateParams) (*Auction, error)
	PlaceBid(ctx ctx.Ctx, params PlaceBidParams) (*PlaceBidResult, error)
	End(ctx ctx.Ctx, auctionId string) (*Auction, error)
	Cancel(ctx ctx.Ctx, auctionId string, reason string) (*Auction, error)
	ActivateScheduled(ctx ctx.Ctx, now time.Time) (int, error)
	EndExpired(ctx ctx.Ctx, now time.Time) (int, error)

	Get(ctx ctx.Ctx, auctionId string) (*Auction, error)
	GetByListingId(ctx ctx.Ctx, listingId string) (*Auction, error)
	GetBidHistory(ctx ctx.Ctx, auctionId string, limit int32) ([]*BidView, error)
	GetUserBids(ctx ctx.Ctx, userId domain.UserId, offset, limit int32) ([]*Bid, error)
	Search(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, int, error)

	// InvalidateBid is the audited moderation override. It keeps the
	// at-most-one-winning-valid-bid invariant by re-pointing the winning
	// flag at the best remaining valid bid.
	InvalidateBid(ctx ctx.Ctx, auctionId, bidId, reason string) (*Bid, error)
}
