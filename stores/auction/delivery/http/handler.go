package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/delivery"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/auction"
	"github.com/gavelauto/goapi/middleware"
	authMiddleware "github.com/gavelauto/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	auction auction.UseCase
}

// New will initialize the auction endpoints
func New(e *echo.Echo, us auction.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{us}

	g := e.Group("/auctions")
	g.GET("", h.search, middleware.CacheHttp(10*time.Second))
	g.GET("/:id", h.get)
	g.GET("/listing/:listingId", h.getByListingId)
	g.GET("/:id/bids", h.getBidHistory)
	g.POST("/:id/bids", h.placeBid, authMiddleware.Auth())

	// moderation
	g.POST("", h.create, authMiddleware.Auth(), authMiddleware.IsModerator())
	g.POST("/:id/end", h.end, authMiddleware.Auth(), authMiddleware.IsModerator())
	g.POST("/:id/cancel", h.cancel, authMiddleware.Auth(), authMiddleware.IsModerator())
	g.POST("/:id/bids/:bidId/invalidate", h.invalidateBid, authMiddleware.Auth(), authMiddleware.IsModerator())

	e.GET("/user/bids", h.getUserBids, authMiddleware.Auth())
}

func (h *handler) search(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Status   *auction.Status     `query:"status"`
		Category *string             `query:"category"`
		Country  *domain.CountryCode `query:"country"`
		PriceGTE *int64              `query:"priceGte"`
		PriceLTE *int64              `query:"priceLte"`
		Search   *string             `query:"search"`
		SortBy   *string             `query:"sortBy"`
		Offset   int32               `query:"offset"`
		Limit    int32               `query:"limit" validate:"lte=100"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if p.Limit == 0 {
		p.Limit = 20
	}

	opts := []auction.FindAllOptionsFunc{
		auction.WithPagination(p.Offset, p.Limit),
	}
	if p.Status != nil {
		opts = append(opts, auction.WithStatus(*p.Status))
	} else {
		opts = append(opts, auction.WithStatus(auction.StatusActive))
	}
	if p.Category != nil {
		opts = append(opts, auction.WithCategory(*p.Category))
	}
	if p.Country != nil {
		opts = append(opts, auction.WithCountry(*p.Country))
	}
	if p.PriceGTE != nil || p.PriceLTE != nil {
		opts = append(opts, auction.WithPriceRange(p.PriceGTE, p.PriceLTE))
	}
	if p.Search != nil {
		opts = append(opts, auction.WithSearchText(*p.Search))
	}
	if p.SortBy != nil {
		opts = append(opts, auction.WithSort(*p.SortBy))
	}

	res, cnt, err := h.auction.Search(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	type response struct {
		Items []*auction.Auction `json:"items"`
		Count int                `json:"count"`
	}

	return delivery.MakeJsonResp(c, http.StatusOK, response{res, cnt})
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.auction.Get(ctx, c.Param("id")); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getByListingId(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.auction.GetByListingId(ctx, c.Param("listingId")); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getBidHistory(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Limit int32 `query:"limit" validate:"gte=0,lte=200"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.auction.GetBidHistory(ctx, c.Param("id"), p.Limit); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	userId := c.Get("userId").(domain.UserId)

	p := &auction.PlaceBidParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p.AuctionId = c.Param("id")
	p.BidderId = userId
	if meta, ok := c.Get("requestMeta").(domain.RequestMeta); ok {
		p.Meta = meta
	}

	if res, err := h.auction.PlaceBid(ctx, *p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &auction.CreateParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.auction.Create(ctx, *p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

func (h *handler) end(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.auction.End(ctx, c.Param("id")); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Reason string `json:"reason" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.auction.Cancel(ctx, c.Param("id"), p.Reason); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) invalidateBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Reason string `json:"reason" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.auction.InvalidateBid(ctx, c.Param("id"), c.Param("bidId"), p.Reason); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getUserBids(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	userId := c.Get("userId").(domain.UserId)

	type params struct {
		Offset int32 `query:"offset"`
		Limit  int32 `query:"limit" validate:"lte=100"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if p.Limit == 0 {
		p.Limit = 20
	}

	if res, err := h.auction.GetUserBids(ctx, userId, p.Offset, p.Limit); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
