package upload

import (
	"github.com/cryptobazaar/goapi/base/ctx"
)

// WriterRepo stores an image blob and returns the URL it is reachable at.
// Implementations: in-memory data-URI encoding and hosted object storage.
type WriterRepo interface {
	Store(c ctx.Ctx, path string, body []byte, contentType string) (string, error)
}

// Usecase turns uploaded file blobs into an ordered sequence of image URLs.
type Usecase interface {
	UploadImages(c ctx.Ctx, blobs [][]byte) ([]string, error)
}
