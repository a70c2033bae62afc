package snapshot

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/storefront/base/ctx"
)

type slotSuite struct {
	suite.Suite
	now   time.Time
	calls int32
	slot  *Slot[int]
}

func TestSlot(t *testing.T) {
	suite.Run(t, new(slotSuite))
}

func (s *slotSuite) SetupTest() {
	s.now = time.Unix(1700000000, 0)
	s.calls = 0
	s.slot = New(5*time.Minute, WithClock[int](func() time.Time { return s.now }))
}

func (s *slotSuite) refresh(c bCtx.Ctx) (int, error) {
	n := atomic.AddInt32(&s.calls, 1)
	return int(n) * 10, nil
}

func (s *slotSuite) TestServesWithinTtl() {
	ctx := bCtx.Background()
	v, err := s.slot.Get(ctx, s.refresh)
	s.NoError(err)
	s.Equal(10, v)

	s.now = s.now.Add(5*time.Minute - time.Millisecond)
	v, err = s.slot.Get(ctx, s.refresh)
	s.NoError(err)
	s.Equal(10, v)
	s.Equal(int32(1), s.calls)
}

func (s *slotSuite) TestRefreshesAfterTtl() {
	ctx := bCtx.Background()
	_, err := s.slot.Get(ctx, s.refresh)
	s.NoError(err)

	s.now = s.now.Add(5*time.Minute + time.Millisecond)
	v, err := s.slot.Get(ctx, s.refresh)
	s.NoError(err)
	s.Equal(20, v)
	s.Equal(int32(2), s.calls)
}

func (s *slotSuite) TestErrorDoesNotServeStale() {
	ctx := bCtx.Background()
	_, err := s.slot.Get(ctx, s.refresh)
	s.NoError(err)

	s.now = s.now.Add(10 * time.Minute)
	boom := errors.New("rpc down")
	_, err = s.slot.Get(ctx, func(bCtx.Ctx) (int, error) { return 0, boom })
	s.Equal(boom, err)

	v, err := s.slot.Get(ctx, s.refresh)
	s.NoError(err)
	s.Equal(20, v)
}

func (s *slotSuite) TestRefreshReplacesFreshValue() {
	ctx := bCtx.Background()
	_, err := s.slot.Get(ctx, s.refresh)
	s.NoError(err)

	v, err := s.slot.Refresh(ctx, s.refresh)
	s.NoError(err)
	s.Equal(20, v)

	v, err = s.slot.Get(ctx, s.refresh)
	s.NoError(err)
	s.Equal(20, v)
	s.Equal(int32(2), s.calls)
}

func (s *slotSuite) TestCancelledCallerDoesNotAbortRefresh() {
	caller, cancel := bCtx.WithCancel(bCtx.Background())
	release := make(chan struct{})
	var refreshErr error
	refresh := func(c bCtx.Ctx) (int, error) {
		cancel()
		<-release
		refreshErr = c.Err()
		return 42, nil
	}

	_, err := s.slot.Get(caller, refresh)
	s.ErrorIs(err, context.Canceled)

	close(release)
	v, err := s.slot.Get(bCtx.Background(), s.refresh)
	s.NoError(err)
	s.Equal(42, v)
	s.NoError(refreshErr)
	s.Equal(int32(0), s.calls)
}

func (s *slotSuite) TestRefreshTimeout() {
	slot := New(time.Minute, WithRefreshTimeout[int](10*time.Millisecond))
	_, err := slot.Get(bCtx.Background(), func(c bCtx.Ctx) (int, error) {
		<-c.Done()
		return 0, c.Err()
	})
	s.ErrorIs(err, context.DeadlineExceeded)
}

// A loop calling Refresh every WarmInterval keeps Get from ever refreshing,
// even when each refresh takes a noticeable share of the ttl.
func (s *slotSuite) TestWarmCadenceKeepsValueFresh() {
	ttl := 5 * time.Minute
	interval := WarmInterval(ttl)
	s.Less(interval, ttl)

	took := 40 * time.Second
	warm := func(bCtx.Ctx) (int, error) {
		s.now = s.now.Add(took)
		return int(atomic.AddInt32(&s.calls, 1)), nil
	}
	userRefresh := func(bCtx.Ctx) (int, error) {
		s.Fail("request paid for a refresh")
		return 0, nil
	}

	start := s.now
	for tick := 0; tick < 6; tick++ {
		s.now = start.Add(time.Duration(tick) * interval)
		_, err := s.slot.Refresh(bCtx.Background(), warm)
		s.NoError(err)

		// the last moment before the next tick
		s.now = start.Add(time.Duration(tick+1)*interval - time.Millisecond)
		v, err := s.slot.Get(bCtx.Background(), userRefresh)
		s.NoError(err)
		s.Equal(tick+1, v)
	}
}

func (s *slotSuite) TestConcurrentRefreshRunsOnce() {
	ctx := bCtx.Background()
	release := make(chan struct{})
	var calls int32
	refresh := func(bCtx.Ctx) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 1, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := s.slot.Get(ctx, refresh)
			s.NoError(err)
			s.Equal(1, v)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	s.Equal(int32(1), atomic.LoadInt32(&calls))
}
