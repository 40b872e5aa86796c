package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/cryptobazaar/goapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableListing struct {
		Title       *string  `bson:"title,omitempty"`
		Price       *float64 `bson:"price,omitempty"`
		Description string   `bson:"description"`
		DealId      string   `bson:"dealId"`
	}

	patchable := &PatchableListing{}
	patchable.Title = ptr.String("")
	patchable.Price = ptr.Float64(42)
	patchable.DealId = "deal-1"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"title": "",
			"price": float64(42),
			// description is empty, so ignore
			"dealId": "deal-1",
		},
		updater,
	)
}
