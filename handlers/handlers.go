// Package handlers implements the REST surface of the simulated backend:
// the same contract the production API serves, so the client gateway can
// be pointed at either.
package handlers

import (
	"sync"

	"gorm.io/gorm"
)

type Handler struct {
	DB        *gorm.DB
	JWTSecret []byte

	mu        sync.Mutex
	cartLocks map[string]*sync.Mutex
}

func New(db *gorm.DB, jwtSecret []byte) *Handler {
	return &Handler{DB: db, JWTSecret: jwtSecret, cartLocks: make(map[string]*sync.Mutex)}
}

// lockCart serializes cart mutations per user. gin serves requests
// concurrently, and the cart endpoints read, merge in memory, then write
// back; without this two adds for the same cart could read the same
// quantity and one update would overwrite the other.
func (h *Handler) lockCart(userID string) func() {
	h.mu.Lock()
	m, ok := h.cartLocks[userID]
	if !ok {
		m = &sync.Mutex{}
		h.cartLocks[userID] = m
	}
	h.mu.Unlock()
	m.Lock()
	return m.Unlock
}
