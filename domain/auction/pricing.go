package auction

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/gavelauto/goapi/domain"
)

// All amounts are integer minor units (cents) of the auction currency.

// IncrementTier maps a price band to its minimum bid increment. Bands are a
// configuration table so they can be tuned without touching the algorithm.
type IncrementTier struct {
	// UpTo is the exclusive upper bound of the band; 0 means unbounded and
	// must only appear on the last tier.
	UpTo      int64 `json:"upTo" mapstructure:"upTo"`
	Increment int64 `json:"increment" mapstructure:"increment"`
}

type FeeConfig struct {
	// Rate is the buyer fee as a fraction of the final price, e.g. 0.045
	Rate  decimal.Decimal `json:"rate"`
	Floor int64           `json:"floor" mapstructure:"floor"`
	Cap   int64           `json:"cap" mapstructure:"cap"`
}

// Config is the tunable parameter table of the engine. Values are loaded
// from the app config; DefaultConfig supplies the production defaults.
type Config struct {
	IncrementTiers        []IncrementTier
	Fee                   FeeConfig
	AntiSnipeWindow       time.Duration
	ExtensionPeriod       time.Duration
	MaxExtensions         int
	MinDurationDays       int
	MaxDurationDays       int
	PaymentDeadlineOffset time.Duration
	BidderNumberBase      int
}

func DefaultConfig() Config {
	return Config{
		IncrementTiers: []IncrementTier{
			{UpTo: 1_000_00, Increment: 25_00},
			{UpTo: 5_000_00, Increment: 100_00},
			{UpTo: 25_000_00, Increment: 250_00},
			{UpTo: 100_000_00, Increment: 500_00},
			{UpTo: 0, Increment: 1_000_00},
		},
		Fee: FeeConfig{
			Rate:  decimal.NewFromFloat(0.045),
			Floor: 250_00,
			Cap:   4_500_00,
		},
		AntiSnipeWindow:       10 * time.Minute,
		ExtensionPeriod:       10 * time.Minute,
		MaxExtensions:         5,
		MinDurationDays:       3,
		MaxDurationDays:       14,
		PaymentDeadlineOffset: 7 * 24 * time.Hour,
		BidderNumberBase:      1,
	}
}

// Validate rejects parameter tables the engine cannot price against.
func (cfg Config) Validate() error {
	if len(cfg.IncrementTiers) == 0 {
		return xerrors.Errorf("increment tiers must not be empty")
	}
	prev := int64(0)
	for i, tier := range cfg.IncrementTiers {
		if tier.Increment <= 0 {
			return xerrors.Errorf("tier %d has non-positive increment", i)
		}
		if tier.UpTo == 0 {
			if i != len(cfg.IncrementTiers)-1 {
				return xerrors.Errorf("unbounded tier must be last")
			}
			continue
		}
		if tier.UpTo <= prev {
			return xerrors.Errorf("tier bounds must be strictly increasing")
		}
		prev = tier.UpTo
	}
	if cfg.Fee.Rate.IsNegative() {
		return xerrors.Errorf("fee rate must not be negative")
	}
	if cfg.Fee.Cap > 0 && cfg.Fee.Floor > cfg.Fee.Cap {
		return xerrors.Errorf("fee floor exceeds cap")
	}
	if cfg.ExtensionPeriod <= 0 {
		return xerrors.Errorf("extension period must be positive")
	}
	if cfg.MinDurationDays <= 0 || cfg.MinDurationDays > cfg.MaxDurationDays {
		return xerrors.Errorf("invalid duration range")
	}
	return nil
}

// BidTooLowError carries the computed minimum so the caller can retry with a
// valid amount without a second round trip. errors.Is matches
// domain.ErrBidTooLow.
type BidTooLowError struct {
	MinimumBid int64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid too low, minimum bid is %d", e.MinimumBid)
}

func (e *BidTooLowError) Unwrap() error {
	return domain.ErrBidTooLow
}

// BidIncrement returns the increment of the band `price` falls in.
func BidIncrement(price int64, tiers []IncrementTier) int64 {
	for _, tier := range tiers {
		if tier.UpTo == 0 || price < tier.UpTo {
			return tier.Increment
		}
	}
	// an exhausted table without an unbounded tail is a config mistake;
	// fall back to the last band rather than accepting arbitrary amounts
	return tiers[len(tiers)-1].Increment
}

// MinimumNextBid returns the smallest acceptable bid amount. Before the
// first bid it equals the starting price; afterwards it is the current bid
// plus the band increment.
func MinimumNextBid(currentBid *int64, startingPrice int64, tiers []IncrementTier) int64 {
	if currentBid == nil {
		return startingPrice
	}
	return *currentBid + BidIncrement(*currentBid, tiers)
}

// ValidateBidAmount is the single source of truth for "bid too low". A bid
// equal to the current bid fails the same way a lower one does: the minimum
// is always strictly above the current bid.
func ValidateBidAmount(amount int64, currentBid *int64, startingPrice int64, tiers []IncrementTier) (int64, error) {
	minimum := MinimumNextBid(currentBid, startingPrice, tiers)
	if amount < minimum {
		return minimum, &BidTooLowError{MinimumBid: minimum}
	}
	return minimum, nil
}

// ShouldExtendAuction is the anti-sniping trigger: a bid landing inside the
// trailing window forces an extension, bounded by maxExtensions.
func ShouldExtendAuction(now, currentEndTime time.Time, extensionCount, maxExtensions int, window time.Duration) bool {
	if extensionCount >= maxExtensions {
		return false
	}
	return currentEndTime.Sub(now) <= window
}

// CalculateExtendedEndTime compounds on the scheduled close, never on the
// bid arrival time, so repeated late bids cannot shrink the remaining time.
func CalculateExtendedEndTime(currentEndTime time.Time, extension time.Duration) time.Time {
	return currentEndTime.Add(extension)
}

// CalculateBuyerFee applies the percentage with floor and cap, rounding to
// the nearest cent.
func CalculateBuyerFee(finalPrice int64, cfg FeeConfig) int64 {
	fee := decimal.NewFromInt(finalPrice).Mul(cfg.Rate).Round(0).IntPart()
	if fee < cfg.Floor {
		fee = cfg.Floor
	}
	if cfg.Cap > 0 && fee > cfg.Cap {
		fee = cfg.Cap
	}
	return fee
}

// IsReserveMet is true for no-reserve auctions and whenever the amount
// reaches the reserve.
func IsReserveMet(amount int64, reservePrice *int64) bool {
	if reservePrice == nil {
		return true
	}
	return amount >= *reservePrice
}

// DetermineAuctionResult decides the terminal status from the final winning
// valid bid: no bid, or an unmet reserve, means no sale.
func DetermineAuctionResult(finalBid *Bid, reservePrice *int64) Status {
	if finalBid == nil {
		return StatusNoSale
	}
	if !IsReserveMet(finalBid.Amount, reservePrice) {
		return StatusNoSale
	}
	return StatusSold
}

// CalculatePaymentDeadline is a fixed offset from the actual close time.
func CalculatePaymentDeadline(endTime time.Time, offset time.Duration) time.Time {
	return endTime.Add(offset)
}
