package compound

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/service/cache/provider"
	"github.com/x-xyz/storefront/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
	errDown = errors.New("layer down")
)

type brokenLayer struct{}

func (brokenLayer) Get(ctx.Ctx, string) ([]byte, time.Duration, error) {
	return nil, 0, errDown
}

func (brokenLayer) Set(ctx.Ctx, string, []byte, time.Duration) error {
	return errDown
}

func (brokenLayer) Del(ctx.Ctx, string) error {
	return errDown
}

type testsuite struct {
	suite.Suite
	lyr0 provider.Provider
	lyr1 provider.Provider
	im   *impl
}

func (ts *testsuite) SetupTest() {
	ts.lyr0 = primitive.NewPrimitive("layer 0", 64)
	ts.lyr1 = primitive.NewPrimitive("layer 1", 64)
	ts.im = NewCompound([]provider.Provider{ts.lyr0, ts.lyr1}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))
	r0, _, e := ts.lyr0.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r0)
	r1, _, e := ts.lyr1.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r1)

	time.Sleep(1100 * time.Millisecond)
	_, _, e = ts.lyr0.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)
	_, _, e = ts.lyr1.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)
}

func (ts *testsuite) TestGetBackFills() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.lyr1.Set(mockCtx, k, v, 0))
	_, _, e := ts.lyr0.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)

	r, ttl, e := ts.im.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r)
	ts.Equal(time.Duration(0), ttl)

	r0, _, e := ts.lyr0.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r0)
}

func (ts *testsuite) TestGetMiss() {
	_, _, e := ts.im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, e)
}

func (ts *testsuite) TestBrokenLayerIsSkipped() {
	im := NewCompound([]provider.Provider{ts.lyr0, brokenLayer{}})
	k := "key"
	v := []byte("value")

	ts.NoError(im.Set(mockCtx, k, v, 0))
	r, _, e := im.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r)

	_, _, e = im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, e)
}

func (ts *testsuite) TestAllLayersBroken() {
	im := NewCompound([]provider.Provider{brokenLayer{}})

	ts.Equal(errDown, im.Set(mockCtx, "key", []byte("v"), 0))
	_, _, e := im.Get(mockCtx, "key")
	ts.Equal(errDown, e)
}

func (ts *testsuite) TestDel() {
	k := "key"
	ts.NoError(ts.im.Set(mockCtx, k, []byte("v"), 0))
	ts.NoError(ts.im.Del(mockCtx, k))
	_, _, e := ts.lyr1.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)
}
