// Package querycache wraps a fetch function in a keyed in-memory cache
// with a tri-state result (loading / success / error). Concurrent fetches
// for one key are coalesced into a single backend call; repeated gets
// before invalidation return the cached result without refetching.
package querycache

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrTimeout is surfaced when a backend call exceeds the store's bound.
var ErrTimeout = errors.New("fetch timed out")

type State int

const (
	StateMissing State = iota
	StateLoading
	StateSuccess
	StateError
)

// Snapshot is the externally visible tri-state of one key.
type Snapshot[T any] struct {
	State     State
	Value     T
	Err       error
	FetchedAt time.Time
}

type entry[T any] struct {
	state     State
	value     T
	err       error
	fetchedAt time.Time
}

// FetchFunc loads fresh data for a key. It runs detached from any single
// caller so one departing consumer cannot cancel a shared fetch.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Store is the only shared mutable state of the retrieval layer. All
// writes go through Get and Invalidate.
type Store[T any] struct {
	mu      sync.Mutex
	entries map[string]entry[T]
	gens    map[string]uint64
	group   singleflight.Group

	ttl     time.Duration // 0 = valid until invalidated
	timeout time.Duration // 0 = unbounded fetch
}

func New[T any](ttl, timeout time.Duration) *Store[T] {
	return &Store[T]{
		entries: make(map[string]entry[T]),
		gens:    make(map[string]uint64),
		ttl:     ttl,
		timeout: timeout,
	}
}

// Get returns the cached value for key, fetching it at most once per key
// at a time. Errors are cached like values: once a fetch fails the error
// is returned until Invalidate, never retried implicitly.
//
// A caller whose ctx is cancelled stops waiting, but the in-flight fetch
// keeps running for the remaining waiters.
func (s *Store[T]) Get(ctx context.Context, key string, fetch FetchFunc[T]) (T, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok && !s.expired(e) {
		switch e.state {
		case StateSuccess:
			v := e.value
			s.mu.Unlock()
			return v, nil
		case StateError:
			err := e.err
			s.mu.Unlock()
			var zero T
			return zero, err
		}
	}
	startGen := s.gens[key]
	s.mu.Unlock()

	ch := s.group.DoChan(key, func() (any, error) {
		return s.fetchAndStore(key, startGen, fetch)
	})

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			var zero T
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

func (s *Store[T]) fetchAndStore(key string, startGen uint64, fetch FetchFunc[T]) (any, error) {
	s.setLoading(key, startGen)

	fctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		fctx, cancel = context.WithTimeout(fctx, s.timeout)
		defer cancel()
	}

	value, err := fetch(fctx)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		err = ErrTimeout
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A fetch issued before the last Invalidate must not clobber state
	// populated after it.
	if s.gens[key] != startGen {
		return value, err
	}

	if err != nil {
		s.entries[key] = entry[T]{state: StateError, err: err, fetchedAt: time.Now()}
		return value, err
	}

	s.entries[key] = entry[T]{state: StateSuccess, value: value, fetchedAt: time.Now()}
	return value, nil
}

func (s *Store[T]) setLoading(key string, startGen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gens[key] != startGen {
		return
	}
	s.entries[key] = entry[T]{state: StateLoading}
}

// Invalidate drops the cached result for key. An in-flight fetch started
// earlier is allowed to finish but its result is discarded.
func (s *Store[T]) Invalidate(key string) {
	s.mu.Lock()
	s.gens[key]++
	delete(s.entries, key)
	s.mu.Unlock()

	s.group.Forget(key)
}

// Snapshot exposes the current tri-state of key without triggering a fetch.
func (s *Store[T]) Snapshot(key string) Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || s.expired(e) {
		return Snapshot[T]{State: StateMissing}
	}

	return Snapshot[T]{
		State:     e.state,
		Value:     e.value,
		Err:       e.err,
		FetchedAt: e.fetchedAt,
	}
}

func (s *Store[T]) expired(e entry[T]) bool {
	if s.ttl <= 0 || e.state == StateLoading {
		return false
	}
	return time.Since(e.fetchedAt) > s.ttl
}
