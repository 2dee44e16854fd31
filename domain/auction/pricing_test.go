package auction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/gavelauto/goapi/base/ptr"
	"github.com/gavelauto/goapi/domain"
)

func TestMinimumNextBid(t *testing.T) {
	req := require.New(t)
	tiers := DefaultConfig().IncrementTiers

	cases := []struct {
		name          string
		currentBid    *int64
		startingPrice int64
		want          int64
	}{
		{
			name:          "no bid yet, minimum is the starting price",
			currentBid:    nil,
			startingPrice: 1_000_00,
			want:          1_000_00,
		},
		{
			name:          "lowest band",
			currentBid:    ptr.Int64(500_00),
			startingPrice: 100_00,
			want:          525_00,
		},
		{
			name:          "band boundary belongs to the next band",
			currentBid:    ptr.Int64(1_000_00),
			startingPrice: 100_00,
			want:          1_100_00,
		},
		{
			name:          "mid band",
			currentBid:    ptr.Int64(12_000_00),
			startingPrice: 100_00,
			want:          12_250_00,
		},
		{
			name:          "unbounded top band",
			currentBid:    ptr.Int64(250_000_00),
			startingPrice: 100_00,
			want:          251_000_00,
		},
	}

	for _, c := range cases {
		req.Equal(c.want, MinimumNextBid(c.currentBid, c.startingPrice, tiers), c.name)
	}
}

func TestValidateBidAmount(t *testing.T) {
	req := require.New(t)
	tiers := DefaultConfig().IncrementTiers

	// first bid at starting price is accepted
	minimum, err := ValidateBidAmount(1_000_00, nil, 1_000_00, tiers)
	req.NoError(err)
	req.Equal(int64(1_000_00), minimum)

	// a repeat of the current bid is rejected exactly like a lower one
	minimum, err = ValidateBidAmount(1_000_00, ptr.Int64(1_000_00), 1_000_00, tiers)
	req.ErrorIs(err, domain.ErrBidTooLow)
	req.Equal(int64(1_100_00), minimum)

	var tooLow *BidTooLowError
	req.ErrorAs(err, &tooLow)
	req.Equal(int64(1_100_00), tooLow.MinimumBid)

	_, err = ValidateBidAmount(999_99, nil, 1_000_00, tiers)
	req.ErrorIs(err, domain.ErrBidTooLow)

	_, err = ValidateBidAmount(5_000_00, ptr.Int64(1_000_00), 1_000_00, tiers)
	req.NoError(err)
}

func TestShouldExtendAuction(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	window := 10 * time.Minute

	// inside the trailing window
	req.True(ShouldExtendAuction(now, now.Add(3*time.Minute), 0, 5, window))
	// exactly on the window edge still extends
	req.True(ShouldExtendAuction(now, now.Add(window), 0, 5, window))
	// outside the window
	req.False(ShouldExtendAuction(now, now.Add(11*time.Minute), 0, 5, window))
	// extension budget exhausted, late bids no longer move the clock
	req.False(ShouldExtendAuction(now, now.Add(time.Minute), 5, 5, window))
}

func TestCalculateExtendedEndTime(t *testing.T) {
	req := require.New(t)
	end := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	// compounds on the scheduled close, not on the bid arrival time
	req.Equal(end.Add(10*time.Minute), CalculateExtendedEndTime(end, 10*time.Minute))
}

func TestCalculateBuyerFee(t *testing.T) {
	req := require.New(t)
	cfg := FeeConfig{
		Rate:  decimal.NewFromFloat(0.045),
		Floor: 250_00,
		Cap:   4_500_00,
	}

	cases := []struct {
		name       string
		finalPrice int64
		want       int64
	}{
		{name: "floor applies to cheap cars", finalPrice: 1_000_00, want: 250_00},
		{name: "percentage in the middle", finalPrice: 20_000_00, want: 900_00},
		{name: "cap applies to expensive cars", finalPrice: 150_000_00, want: 4_500_00},
	}

	for _, c := range cases {
		req.Equal(c.want, CalculateBuyerFee(c.finalPrice, cfg), c.name)
	}
}

func TestIsReserveMet(t *testing.T) {
	req := require.New(t)

	req.True(IsReserveMet(1_00, nil), "no-reserve auction is always met")
	req.False(IsReserveMet(1_000_00, ptr.Int64(1_500_00)))
	req.True(IsReserveMet(1_500_00, ptr.Int64(1_500_00)))
	req.True(IsReserveMet(2_000_00, ptr.Int64(1_500_00)))
}

func TestDetermineAuctionResult(t *testing.T) {
	req := require.New(t)

	// never a bid
	req.Equal(StatusNoSale, DetermineAuctionResult(nil, nil))
	req.Equal(StatusNoSale, DetermineAuctionResult(nil, ptr.Int64(5_000_00)))

	// reserve exists and was never met
	req.Equal(StatusNoSale, DetermineAuctionResult(&Bid{Amount: 4_000_00}, ptr.Int64(5_000_00)))

	// no-reserve with any bid sells
	req.Equal(StatusSold, DetermineAuctionResult(&Bid{Amount: 1_200_00}, nil))

	// reserve met sells
	req.Equal(StatusSold, DetermineAuctionResult(&Bid{Amount: 5_000_00}, ptr.Int64(5_000_00)))
}

func TestCalculatePaymentDeadline(t *testing.T) {
	req := require.New(t)
	end := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	req.Equal(end.Add(7*24*time.Hour), CalculatePaymentDeadline(end, 7*24*time.Hour))
}

func TestConfigValidate(t *testing.T) {
	req := require.New(t)

	req.NoError(DefaultConfig().Validate())

	empty := DefaultConfig()
	empty.IncrementTiers = nil
	req.Error(empty.Validate())

	badIncrement := DefaultConfig()
	badIncrement.IncrementTiers = []IncrementTier{{UpTo: 1_000_00, Increment: 0}}
	req.Error(badIncrement.Validate())

	unboundedNotLast := DefaultConfig()
	unboundedNotLast.IncrementTiers = []IncrementTier{
		{UpTo: 0, Increment: 25_00},
		{UpTo: 1_000_00, Increment: 100_00},
	}
	req.Error(unboundedNotLast.Validate())

	outOfOrder := DefaultConfig()
	outOfOrder.IncrementTiers = []IncrementTier{
		{UpTo: 5_000_00, Increment: 25_00},
		{UpTo: 1_000_00, Increment: 100_00},
	}
	req.Error(outOfOrder.Validate())

	floorAboveCap := DefaultConfig()
	floorAboveCap.Fee.Floor = 5_000_00
	floorAboveCap.Fee.Cap = 4_500_00
	req.Error(floorAboveCap.Validate())

	badDuration := DefaultConfig()
	badDuration.MinDurationDays = 20
	req.Error(badDuration.Validate())
}
