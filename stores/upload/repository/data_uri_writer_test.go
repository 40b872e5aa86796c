package repository

import (
	"testing"

	bCtx "github.com/cryptobazaar/goapi/base/ctx"
)

func Test_dataUriWriterRepo_Store(t *testing.T) {
	tests := []struct {
		name        string
		body        []byte
		contentType string
		want        string
	}{
		{
			name:        "png",
			body:        []byte{0x89, 0x50, 0x4e, 0x47},
			contentType: "image/png",
			want:        "data:image/png;base64,iVBORw==",
		},
		{
			name:        "empty body",
			body:        []byte{},
			contentType: "image/gif",
			want:        "data:image/gif;base64,",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDataUriWriterRepo()
			ctx := bCtx.Background()
			got, err := r.Store(ctx, "listings/x.png", tt.body, tt.contentType)
			if err != nil {
				t.Errorf("dataUriWriterRepo.Store() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("dataUriWriterRepo.Store() = %v, want %v", got, tt.want)
			}
		})
	}
}
