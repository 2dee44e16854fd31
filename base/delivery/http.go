package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/auction"
	"github.com/gavelauto/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// BidRejection is the structured body returned for rejected bids so a client
// can retry with a valid amount without another round trip.
type BidRejection struct {
	Reason     string `json:"reason"`
	MinimumBid *int64 `json:"minimumBid,omitempty"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrConflict) || errors.Is(err, query.ErrDuplicateKey):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrBidTooLow),
			errors.Is(err, domain.ErrAuctionNotStarted),
			errors.Is(err, domain.ErrAuctionEnded),
			errors.Is(err, domain.ErrAuctionNotActive),
			errors.Is(err, domain.ErrSelfBid),
			errors.Is(err, domain.ErrInvalidPrecondition),
			errors.Is(err, domain.ErrBadParamInput):
			status = http.StatusUnprocessableEntity
		}

		var tooLow *auction.BidTooLowError
		if errors.As(err, &tooLow) {
			data = BidRejection{Reason: err.Error(), MinimumBid: &tooLow.MinimumBid}
		} else {
			data = err.Error()
		}
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
