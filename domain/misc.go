package domain

import "strings"

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Table is the name of a mongo collection
type Table string

const (
	TableAccounts      Table = "accounts"
	TableListings      Table = "listings"
	TableAuctions      Table = "auctions"
	TableBids          Table = "bids"
	TableBidderNumbers Table = "bidder_numbers"
	TableModerators    Table = "moderators"
)

// UserId identifies a registered user across the whole marketplace
type UserId string

func (u UserId) String() string {
	return string(u)
}

func (u UserId) IsEmpty() bool {
	return len(u) == 0
}

func (u UserId) Equals(o UserId) bool {
	return string(u) == string(o)
}

// CountryCode is a coarse ISO 3166-1 alpha-2 code. It is all we ever expose
// about a bidder's location.
type CountryCode string

func (c CountryCode) ToUpper() CountryCode {
	return CountryCode(strings.ToUpper(string(c)))
}

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

var supportedCurrencies = map[Currency]struct{}{
	CurrencyUSD: {},
	CurrencyEUR: {},
	CurrencyGBP: {},
}

func (c Currency) IsValid() bool {
	_, ok := supportedCurrencies[c]
	return ok
}
