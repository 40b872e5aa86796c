package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cryptobazaar/goapi/base/ctx"
	"github.com/cryptobazaar/goapi/base/delivery"
	"github.com/cryptobazaar/goapi/domain"
	"github.com/cryptobazaar/goapi/domain/upload"
	authMiddleware "github.com/cryptobazaar/goapi/stores/auth/delivery/http/middleware"
)

const (
	maxUploadFiles = 5
	maxUploadBytes = 2 << 20 // 2 MB per file
)

type handler struct {
	upload upload.Usecase
}

func New(
	e *echo.Echo,
	auth *authMiddleware.AuthMiddleware,
	upload upload.Usecase) {
	h := &handler{upload}

	g := e.Group("/uploads")

	g.POST("", h.uploadImages, auth.Auth())
}

func (h *handler) uploadImages(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	form, err := c.MultipartForm()
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid multipart form")
	}

	files := form.File["images"]
	if len(files) == 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("images"))
	}
	if len(files) > maxUploadFiles {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "too many files")
	}

	blobs := make([][]byte, 0, len(files))
	for _, file := range files {
		if file.Size > maxUploadBytes {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, "file too large")
		}

		src, err := file.Open()
		if err != nil {
			ctx.WithField("err", err).Error("file.Open failed")
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}

		blob, err := io.ReadAll(io.LimitReader(src, maxUploadBytes))
		src.Close()
		if err != nil {
			ctx.WithField("err", err).Error("io.ReadAll failed")
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
		blobs = append(blobs, blob)
	}

	urls, err := h.upload.UploadImages(ctx, blobs)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, urls)
}
