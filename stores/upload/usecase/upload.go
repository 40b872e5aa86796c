package usecase

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/cryptobazaar/goapi/base/ctx"
	"github.com/cryptobazaar/goapi/domain"
	"github.com/cryptobazaar/goapi/domain/upload"
)

const uploadConcurrency = 5

type impl struct {
	writer upload.WriterRepo
}

func New(writer upload.WriterRepo) upload.Usecase {
	return &impl{
		writer: writer,
	}
}

type indexedUrl struct {
	idx int
	url string
}

// UploadImages sniffs and stores every blob concurrently, returning the urls
// in the order the blobs were given.
func (im *impl) UploadImages(c ctx.Ctx, blobs [][]byte) ([]string, error) {
	if len(blobs) == 0 {
		return []string{}, nil
	}

	b := goroutines.NewBatch(uploadConcurrency, goroutines.WithBatchSize(len(blobs)))
	defer b.Close()
	for i := 0; i < len(blobs); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			url, err := im.uploadImage(c, blobs[idx])
			if err != nil {
				return nil, err
			}
			return indexedUrl{idx: idx, url: url}, nil
		})
	}
	b.QueueComplete()

	urls := make([]string, len(blobs))
	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			c.WithField("err", err).Error("upload image error result")
			return nil, err
		}
		res := ret.Value().(indexedUrl)
		urls[res.idx] = res.url
	}
	return urls, nil
}

func (im *impl) uploadImage(c ctx.Ctx, blob []byte) (string, error) {
	mtype := mimetype.Detect(blob)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", xerrors.Errorf("unsupported content type %s: %w", mtype.String(), domain.ErrBadParamInput)
	}

	uuid, err := uuid.NewRandom()
	if err != nil {
		c.WithField("err", err).Error("failed to uuid.NewRandom")
		return "", err
	}

	path := fmt.Sprintf("listings/%s%s", uuid.String(), mtype.Extension())

	url, err := im.writer.Store(c, path, blob, mtype.String())
	if err != nil {
		c.WithField("err", err).Error("writer.Store failed")
		return "", err
	}
	return url, nil
}
