package compoundcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/cryptobazaar/goapi/base/ctx"
	"github.com/cryptobazaar/goapi/service/cache"
	"github.com/cryptobazaar/goapi/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	lyr0 cache.Service
	lyr1 cache.Service
	im   *impl
}

func (ts *testsuite) SetupTest() {
	ts.lyr0 = cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "layered",
		Cache: primitive.NewPrimitive("layer 0", 64),
	})
	ts.lyr1 = cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "layered",
		Cache: primitive.NewPrimitive("layer 1", 64),
	})
	ts.im = NewCompoundCache([]cache.Service{ts.lyr0, ts.lyr1}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := &value{"value"}

	ts.NoError(ts.im.Set(mockCtx, k, v))

	c0 := &value{}
	ts.NoError(ts.lyr0.Get(mockCtx, k, c0))
	ts.Equal(*v, *c0)

	c1 := &value{}
	ts.NoError(ts.lyr1.Get(mockCtx, k, c1))
	ts.Equal(*v, *c1)
}

func (ts *testsuite) TestGet() {
	cases := []struct {
		Desc  string
		Key   string
		Val   *value
		Err   error
		Cache cache.Service
	}{
		{
			Desc:  "Success from layer 0",
			Key:   "key 0",
			Val:   &value{"value 0"},
			Err:   nil,
			Cache: ts.lyr0,
		},
		{
			Desc:  "Success from layer 1",
			Key:   "key 1",
			Val:   &value{"value 1"},
			Err:   nil,
			Cache: ts.lyr1,
		},
		{
			Desc: "Not found",
			Key:  "no such key",
			Err:  cache.ErrNotFound,
		},
	}

	for _, c := range cases {
		if c.Cache != nil {
			ts.NoError(c.Cache.Set(mockCtx, c.Key, c.Val), c.Desc)
		}

		container := &value{}
		e := ts.im.Get(mockCtx, c.Key, container)
		ts.Equal(c.Err, e, c.Desc)
		if c.Err == nil {
			ts.Equal(*c.Val, *container, c.Desc)
		}
	}
}

func (ts *testsuite) TestGetForwardFill() {
	k := "key"
	v := &value{"value"}

	ts.NoError(ts.lyr1.Set(mockCtx, k, v))

	container := &value{}
	ts.NoError(ts.im.Get(mockCtx, k, container))
	ts.Equal(*v, *container)

	// a hit on a deeper layer fills the layers in front of it
	c0 := &value{}
	ts.NoError(ts.lyr0.Get(mockCtx, k, c0))
	ts.Equal(*v, *c0)
}

func (ts *testsuite) TestDel() {
	k := "key"
	v := &value{"value"}

	ts.NoError(ts.im.Set(mockCtx, k, v))
	ts.NoError(ts.im.Del(mockCtx, k))

	container := &value{}
	ts.Equal(cache.ErrNotFound, ts.im.Get(mockCtx, k, container))
}
