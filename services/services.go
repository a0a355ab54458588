// Package services is the typed surface the UI calls. Every operation
// tries the real backend through the gateway and degrades to the
// in-process mock store under the resilience policy, recomputing derived
// fields before anything is handed back.
package services

import (
	"restaurant-ordering/gateway"
	"restaurant-ordering/mockstore"
	"restaurant-ordering/resilience"
)

// Re-exported sentinels so callers match failures without importing the
// storage layer.
var (
	ErrNotFound   = mockstore.ErrNotFound
	ErrValidation = mockstore.ErrValidation
)

// Services bundles one instance of each resource service over shared
// transport, fallback store and policy.
type Services struct {
	Auth        *Auth
	Restaurants *Restaurants
	Carts       *Carts
	Orders      *Orders
	Ratings     *Ratings
	Inbox       *Inbox
}

func New(gw *gateway.Client, store *mockstore.Store, sessions gateway.SessionStore, policy *resilience.Policy) *Services {
	return &Services{
		Auth:        &Auth{gw: gw, store: store, sessions: sessions, policy: policy},
		Restaurants: &Restaurants{gw: gw, store: store, policy: policy},
		Carts:       &Carts{gw: gw, store: store, policy: policy},
		Orders:      &Orders{gw: gw, store: store, policy: policy},
		Ratings:     &Ratings{gw: gw, store: store, policy: policy},
		Inbox:       &Inbox{gw: gw, store: store, policy: policy},
	}
}
