package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cryptobazaar/goapi/base/ctx"
	"github.com/cryptobazaar/goapi/base/delivery"
	"github.com/cryptobazaar/goapi/domain"
)

// HeaderEthAddress carries the caller wallet address when no bearer token is
// used. The address is treated as an opaque identity, no signature is checked.
const HeaderEthAddress = "X-Eth-Address"

type AuthMiddleware struct {
	auth domain.AuthUsecase
}

func New(auth domain.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Auth resolves the caller identity from a bearer token or the
// X-Eth-Address header and stores it under "address".
// Requests carrying neither are rejected.
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			address, err := m.resolveAddress(c)
			if err != nil {
				return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
			}
			c.Set("address", address)
			return next(c)
		}
	}
}

func (m *AuthMiddleware) resolveAddress(c echo.Context) (domain.Address, error) {
	context := c.Get("ctx").(ctx.Ctx)

	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(auth) > 0 {
		token := strings.TrimPrefix(auth, "Bearer ")
		if token == auth {
			return "", domain.ErrUnauthenticated
		}
		ads, err := m.auth.ParseToken(context, token)
		if err != nil {
			context.WithField("err", err).Error("auth.ParseToken failed")
			return "", domain.ErrUnauthenticated
		}
		return domain.Address(ads).ToLower(), nil
	}

	if ads := c.Request().Header.Get(HeaderEthAddress); len(ads) > 0 {
		return domain.Address(ads).ToLower(), nil
	}

	return "", domain.ErrUnauthenticated
}
