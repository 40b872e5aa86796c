package usecase

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	bCtx "github.com/cryptobazaar/goapi/base/ctx"
	"github.com/cryptobazaar/goapi/domain"
	mUpload "github.com/cryptobazaar/goapi/domain/upload/mocks"
)

var (
	pngMagic = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	gifMagic = []byte("GIF89a")
)

func TestUploadImages(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	blobs := [][]byte{
		append(append([]byte{}, pngMagic...), 1),
		gifMagic,
		append(append([]byte{}, pngMagic...), 1, 2, 3),
	}

	mockWriter := &mUpload.WriterRepo{}
	mockWriter.On("Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(func(_ bCtx.Ctx, path string, body []byte, contentType string) string {
			return fmt.Sprintf("%s:%d", contentType, len(body))
		}, nil)

	u := New(mockWriter)
	urls, err := u.UploadImages(ctx, blobs)
	req.NoError(err)
	// urls come back in the order the blobs were given
	req.Equal([]string{"image/png:9", "image/gif:6", "image/png:11"}, urls)

	for _, call := range mockWriter.Calls {
		path := call.Arguments.String(1)
		req.True(strings.HasPrefix(path, "listings/"), path)
	}
}

func TestUploadImagesEmpty(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	u := New(&mUpload.WriterRepo{})
	urls, err := u.UploadImages(ctx, [][]byte{})
	req.NoError(err)
	req.Equal([]string{}, urls)
}

func TestUploadImagesRejectsNonImage(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	mockWriter := &mUpload.WriterRepo{}
	u := New(mockWriter)
	_, err := u.UploadImages(ctx, [][]byte{[]byte(`{"not":"an image"}`)})
	req.Error(err)
	req.True(errors.Is(err, domain.ErrBadParamInput))
	mockWriter.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
