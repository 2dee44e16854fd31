package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrInvalidPrecondition will throw if a lifecycle transition is requested
	// from a state that does not allow it
	ErrInvalidPrecondition = errors.New("precondition not satisfied")

	// bid placement gate errors, each kind is distinct so the caller can
	// report a precise reason code
	ErrAuctionNotStarted = errors.New("auction has not started")
	ErrAuctionEnded      = errors.New("auction has already ended")
	ErrAuctionNotActive  = errors.New("auction is not accepting bids")
	ErrSelfBid           = errors.New("sellers cannot bid on their own listing")
	ErrBidTooLow         = errors.New("bid amount is below the minimum bid")

	ErrInvalidCurrency     = errors.New("invalid currency")
	ErrInvalidNumberFormat = errors.New("invalid number format")
)
