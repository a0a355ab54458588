// Package mockstore is the in-process simulated backend the client
// degrades to when the real API is unreachable. Five tables (restaurants
// with their menus, carts, orders, ratings, inbox) plus the simulated
// accounts live behind one Store value constructed at startup; there is
// no package-level state. Every operation sleeps the configured latency,
// validates existence before update/delete, recomputes derived fields
// before returning, and hands out deep copies only.
package mockstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"restaurant-ordering/models"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation")
)

type Store struct {
	latency time.Duration

	mu          sync.RWMutex
	restaurants []*models.Restaurant
	menuItems   []*models.MenuItem
	carts       map[string]*models.Cart // keyed by user id, one cart per user
	orders      []*models.Order
	restRatings []*models.RestaurantRating
	dishRatings []*models.DishRating
	inbox       map[string][]*models.InboxMessage // newest first per user
	unread      map[string]int                    // cached unread counters
	users       []*models.User

	locks *keyedLocks
}

// New returns an empty store. latency is slept by every operation to
// imitate a round-trip; zero disables the delay (tests).
func New(latency time.Duration) *Store {
	return &Store{
		latency: latency,
		carts:   make(map[string]*models.Cart),
		inbox:   make(map[string][]*models.InboxMessage),
		unread:  make(map[string]int),
		locks:   newKeyedLocks(),
	}
}

// simulate imitates network latency, honoring cancellation
func (s *Store) simulate(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// keyedLocks hands out one mutex per entity key so read-modify-write
// sequences for the same cart, order or inbox never interleave, while
// unrelated entities stay concurrent.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedLocks) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

// lockKey serializes all mutations for one entity key
func (s *Store) lockKey(kind, id string) func() {
	m := s.locks.get(kind + ":" + id)
	m.Lock()
	return m.Unlock
}
