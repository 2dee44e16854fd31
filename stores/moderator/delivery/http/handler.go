package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/delivery"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/moderator"
	authMiddleware "github.com/gavelauto/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	moderator moderator.Usecase
}

func New(e *echo.Echo, moderator moderator.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{moderator}

	e.GET("/moderators", h.getAll, authMiddleware.Auth(), authMiddleware.IsAdmin())

	e.POST("/moderators/add", h.add, authMiddleware.Auth(), authMiddleware.IsAdmin())

	e.POST("/moderators/remove", h.remove, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.moderator.FindAll(ctx); err != nil {
		ctx.WithField("err", err).Error("moderator.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) add(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Name   string        `json:"name"`
		UserId domain.UserId `json:"userId"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.moderator.Add(ctx, p.UserId, p.Name); err != nil {
		ctx.WithField("err", err).Error("moderator.Add failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		UserId domain.UserId `json:"userId"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.moderator.Remove(ctx, p.UserId); err != nil {
		ctx.WithField("err", err).Error("moderator.Remove failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}
