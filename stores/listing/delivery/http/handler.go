package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/delivery"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/listing"
	authMiddleware "github.com/gavelauto/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.Usecase
}

// New will initialize the listing endpoints
func New(e *echo.Echo, us listing.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{us}

	g := e.Group("/listings")
	g.GET("", h.findAll)
	g.GET("/:id", h.get)
	g.POST("", h.create, authMiddleware.Auth())
	g.DELETE("/:id", h.withdraw, authMiddleware.Auth())

	// moderation
	g.POST("/:id/approve", h.approve, authMiddleware.Auth(), authMiddleware.IsModerator())
}

func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		SellerId *domain.UserId  `query:"sellerId"`
		Status   *listing.Status `query:"status"`
		Category *string         `query:"category"`
		Offset   int32           `query:"offset"`
		Limit    int32           `query:"limit" validate:"lte=100"`
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

	opts := []listing.FindAllOptionsFunc{
		listing.WithPagination(p.Offset, p.Limit),
	}
	if p.SellerId != nil {
		opts = append(opts, listing.WithSellerId(*p.SellerId))
	}
	if p.Status != nil {
		opts = append(opts, listing.WithStatus(*p.Status))
	}
	if p.Category != nil {
		opts = append(opts, listing.WithCategory(*p.Category))
	}

	if res, err := h.listing.FindAll(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.listing.Get(ctx, c.Param("id")); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	userId := c.Get("userId").(domain.UserId)

	type params struct {
		Make          string             `json:"make" validate:"required"`
		Model         string             `json:"model" validate:"required"`
		Year          int                `json:"year" validate:"required,gte=1900"`
		Mileage       int                `json:"mileage" validate:"gte=0"`
		Vin           string             `json:"vin"`
		Category      string             `json:"category" validate:"required"`
		Country       domain.CountryCode `json:"country" validate:"required"`
		Description   string             `json:"description"`
		StartingPrice int64              `json:"startingPrice" validate:"required,gt=0"`
		ReservePrice  *int64             `json:"reservePrice"`
		Currency      domain.Currency    `json:"currency" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l := &listing.Listing{
		SellerId:      userId,
		Make:          p.Make,
		Model:         p.Model,
		Year:          p.Year,
		Mileage:       p.Mileage,
		Vin:           p.Vin,
		Category:      p.Category,
		Country:       p.Country,
		Description:   p.Description,
		StartingPrice: p.StartingPrice,
		ReservePrice:  p.ReservePrice,
		Currency:      p.Currency,
	}

	if res, err := h.listing.Create(ctx, l); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.listing.Approve(ctx, c.Param("id")); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	userId := c.Get("userId").(domain.UserId)

	if res, err := h.listing.Withdraw(ctx, c.Param("id"), userId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
