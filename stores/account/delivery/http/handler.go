package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/delivery"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/account"
	authMiddleware "github.com/gavelauto/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	au account.Usecase
}

// New will initialize the account endpoints
func New(e *echo.Echo, au account.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		au: au,
	}
	g := e.Group("/account")

	// self
	g.GET("", h.getAccount, authMiddleware.Auth())
	g.PATCH("", h.updateAccount, authMiddleware.Auth())
}

func (h *handler) getAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	userId := c.Get("userId").(domain.UserId)

	info, err := h.au.Get(ctx, userId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, info)
}

func (h *handler) updateAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	userId := c.Get("userId").(domain.UserId)

	p := &account.Updater{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if info, err := h.au.Update(ctx, userId, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, info)
	}
}
