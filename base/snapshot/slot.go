// Package snapshot holds a single time-boxed value that is rebuilt on demand.
package snapshot

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	bCtx "github.com/x-xyz/storefront/base/ctx"
)

const flightKey = "snapshot"

type Slot[T any] struct {
	ttl            time.Duration
	refreshTimeout time.Duration
	now            func() time.Time

	mu        sync.RWMutex
	value     T
	fetchedAt time.Time
	filled    bool

	group singleflight.Group
}

type Option[T any] func(*Slot[T])

// WithClock replaces time.Now.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(s *Slot[T]) {
		s.now = now
	}
}

// WithRefreshTimeout bounds a single refresh. Zero leaves it unbounded.
func WithRefreshTimeout[T any](d time.Duration) Option[T] {
	return func(s *Slot[T]) {
		s.refreshTimeout = d
	}
}

func New[T any](ttl time.Duration, opts ...Option[T]) *Slot[T] {
	s := &Slot[T]{
		ttl: ttl,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WarmInterval is how often a background loop should call Refresh so that the
// value is replaced before it expires.
func WarmInterval(ttl time.Duration) time.Duration {
	return ttl * 4 / 5
}

// Get returns the held value while it is younger than the ttl, otherwise it
// calls refresh and publishes the result. A refresh error is returned as is and
// the old value is not served.
//
// refresh runs detached from c and is shared by concurrent callers. A caller
// whose c ends returns c.Err() while the refresh goes on for the others.
func (s *Slot[T]) Get(c bCtx.Ctx, refresh func(bCtx.Ctx) (T, error)) (T, error) {
	if v, ok := s.fresh(); ok {
		return v, nil
	}
	return s.wait(c, s.group.DoChan(flightKey, func() (interface{}, error) {
		if v, ok := s.fresh(); ok {
			return v, nil
		}
		return s.run(c, refresh)
	}))
}

// Refresh rebuilds the value even when it is still fresh. It joins a refresh
// that is already in flight instead of starting a second one.
func (s *Slot[T]) Refresh(c bCtx.Ctx, refresh func(bCtx.Ctx) (T, error)) (T, error) {
	return s.wait(c, s.group.DoChan(flightKey, func() (interface{}, error) {
		return s.run(c, refresh)
	}))
}

func (s *Slot[T]) run(c bCtx.Ctx, refresh func(bCtx.Ctx) (T, error)) (interface{}, error) {
	rc := bCtx.Detach(c)
	if s.refreshTimeout > 0 {
		var cancel func()
		rc, cancel = bCtx.WithTimeout(rc, s.refreshTimeout)
		defer cancel()
	}
	v, err := refresh(rc)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.value = v
	s.fetchedAt = s.now()
	s.filled = true
	s.mu.Unlock()
	return v, nil
}

func (s *Slot[T]) wait(c bCtx.Ctx, ch <-chan singleflight.Result) (T, error) {
	var zero T
	select {
	case <-c.Done():
		return zero, c.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

func (s *Slot[T]) fresh() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.filled && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.value, true
	}
	var zero T
	return zero, false
}
