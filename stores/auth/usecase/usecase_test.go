package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/cryptobazaar/goapi/base/ctx"
	"github.com/cryptobazaar/goapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")
	tkn, err := u.SignToken(ctx, "0xMiXeDcAsE")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "0xmixedcase", ads)
}

func TestParseTokenWrongSecret(t *testing.T) {
	ctx := ctx.Background()
	tkn, err := usecase.New("jwt-secret").SignToken(ctx, "my-address")
	assert.NoError(t, err)

	_, err = usecase.New("another-secret").ParseToken(ctx, tkn)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	ctx := ctx.Background()
	_, err := usecase.New("jwt-secret").ParseToken(ctx, "not-a-token")
	assert.Error(t, err)
}
