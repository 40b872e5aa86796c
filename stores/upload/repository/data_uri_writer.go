package repository

import (
	"encoding/base64"
	"fmt"

	"github.com/cryptobazaar/goapi/base/ctx"
	"github.com/cryptobazaar/goapi/domain/upload"
)

type dataUriWriterRepo struct {
}

// NewDataUriWriterRepo encodes blobs into self-contained data uris instead of
// uploading them anywhere. The default backend when no bucket is configured.
func NewDataUriWriterRepo() upload.WriterRepo {
	return &dataUriWriterRepo{}
}

func (r *dataUriWriterRepo) Store(_ ctx.Ctx, _ string, body []byte, contentType string) (string, error) {
	// data:[<mediatype>][;base64],<data>
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(body)), nil
}
