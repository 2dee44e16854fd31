package listing

import (
	"time"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/domain"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending_review"
	StatusApproved  Status = "approved"
	StatusLive      Status = "live"
	StatusSold      Status = "sold"
	StatusExpired   Status = "expired"
	StatusWithdrawn Status = "withdrawn"
)

// Listing is an approved vehicle record. The auction engine reads it exactly
// once, at auction creation, and copies the pricing fields into the auction
// so later edits cannot retroactively alter a running auction.
type Listing struct {
	Id            string          `json:"id" bson:"id"`
	SellerId      domain.UserId   `json:"sellerId" bson:"sellerId"`
	Status        Status          `json:"status" bson:"status"`
	Make          string          `json:"make" bson:"make"`
	Model         string          `json:"model" bson:"model"`
	Year          int             `json:"year" bson:"year"`
	Mileage       int             `json:"mileage" bson:"mileage"`
	Vin           string          `json:"vin,omitempty" bson:"vin,omitempty"`
	Category      string          `json:"category" bson:"category"`
	Country       domain.CountryCode `json:"country" bson:"country"`
	Description   string          `json:"description" bson:"description"`
	StartingPrice int64           `json:"startingPrice" bson:"startingPrice"`
	ReservePrice  *int64          `json:"reservePrice,omitempty" bson:"reservePrice,omitempty"`
	Currency      domain.Currency `json:"currency" bson:"currency"`
	CreatedAt     time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt" bson:"updatedAt"`
}

type Patchable struct {
	Status    *Status    `json:"status" bson:"status,omitempty"`
	UpdatedAt *time.Time `json:"-" bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	SellerId *domain.UserId
	Status   *Status
	Category *string
	Offset   *int32
	Limit    *int32
	Sort     *string
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

func WithSellerId(sellerId domain.UserId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SellerId = &sellerId
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithCategory(category string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Category = &category
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
		options.Sort = &sort
		return nil
	}
}

type Repo interface {
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	FindOne(ctx ctx.Ctx, id string) (*Listing, error)
	Insert(ctx ctx.Ctx, listing *Listing) error
	Update(ctx ctx.Ctx, id string, patchable Patchable) error
	// UpdateIfStatus patches the listing only when its current status matches
	// one of `from`, returns query.ErrNotFound when the gate does not match.
	UpdateIfStatus(ctx ctx.Ctx, id string, from []Status, patchable Patchable) error
}

type Usecase interface {
	Get(ctx ctx.Ctx, id string) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Create(ctx ctx.Ctx, listing *Listing) (*Listing, error)
	Approve(ctx ctx.Ctx, id string) (*Listing, error)
	Withdraw(ctx ctx.Ctx, id string, sellerId domain.UserId) (*Listing, error)
}
