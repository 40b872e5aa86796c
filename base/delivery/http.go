package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/cryptobazaar/goapi/domain"
	"github.com/cryptobazaar/goapi/service/query"
)

// JsonResponse is the envelope of every response. Data is set on success,
// Message on failure.
type JsonResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// MakeJsonResp writes data as the JSON envelope. When data is an error the
// status is resolved from the error taxonomy, overriding the given status.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = resolveErrStatus(err, status)
		msg := err.Error()
		if status >= 500 && !viper.GetBool("debug") {
			// suppress detail outside development mode
			msg = domain.ErrInternalServerError.Error()
		}
		return c.JSON(status, JsonResponse{Success: false, Message: msg})
	}

	if status >= 400 {
		msg, _ := data.(string)
		return c.JSON(status, JsonResponse{Success: false, Message: msg})
	}

	return c.JSON(status, JsonResponse{Success: true, Data: data})
}

func resolveErrStatus(err error, fallback int) int {
	if _, ok := domain.IsValidationError(err); ok {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	}

	return fallback
}
