package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cryptobazaar/goapi/base/ctx"
	"github.com/cryptobazaar/goapi/base/delivery"
	"github.com/cryptobazaar/goapi/domain"
	"github.com/cryptobazaar/goapi/domain/listing"
	"github.com/cryptobazaar/goapi/middleware"
	authMiddleware "github.com/cryptobazaar/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.Usecase
}

// New registers listing routes. Reads are public, the search route is
// response cached. Writes require a resolved caller identity.
func New(
	e *echo.Echo,
	auth *authMiddleware.AuthMiddleware,
	listing listing.Usecase) {
	h := &handler{listing}

	gs := e.Group("/listings")

	gs.GET("", h.search, middleware.CacheHttp(30*time.Second))
	gs.GET("/:id", h.get)
	gs.POST("", h.create, auth.Auth())
	gs.PUT("/:id", h.update, auth.Auth())
	gs.DELETE("/:id", h.delete, auth.Auth())
}

func (h *handler) search(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &listing.SearchParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.listing.Search(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listing.Get(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	p := &listing.CreatePayload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.Create(ctx, address, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	p := &listing.UpdatePayload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.listing.Update(ctx, address, c.Param("id"), p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	if err := h.listing.Delete(ctx, address, c.Param("id")); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "deleted")
}
