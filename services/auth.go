package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"restaurant-ordering/gateway"
	"restaurant-ordering/mockstore"
	"restaurant-ordering/models"
	"restaurant-ordering/resilience"
)

type Auth struct {
	gw       *gateway.Client
	store    *mockstore.Store
	sessions gateway.SessionStore
	policy   *resilience.Policy
}

// Login authenticates against the backend; when the backend is
// unreachable it checks the simulated accounts and issues a local token
// so the app keeps working offline.
func (s *Auth) Login(ctx context.Context, email, password string) (models.Session, error) {
	if email == "" || password == "" {
		return models.Session{}, fmt.Errorf("email and password are required: %w", ErrValidation)
	}
	return resilience.WithFallback(ctx, s.policy, "auth.login",
		func(ctx context.Context) (models.Session, error) {
			return s.gw.Login(ctx, email, password)
		},
		func(ctx context.Context) (models.Session, error) {
			user, err := s.store.Authenticate(ctx, email, password)
			if err != nil {
				return models.Session{}, err
			}
			session := models.Session{
				User:            &user,
				Token:           "local-" + uuid.NewString(),
				IsAuthenticated: true,
			}
			if err := s.sessions.Save(session); err != nil {
				return models.Session{}, fmt.Errorf("persist session: %w", err)
			}
			return session, nil
		})
}

// Logout drops the credential blob; the backend is told when reachable
func (s *Auth) Logout(ctx context.Context) error {
	return resilience.WithFallbackErr(ctx, s.policy, "auth.logout",
		func(ctx context.Context) error {
			return s.gw.Logout(ctx)
		},
		func(ctx context.Context) error {
			return s.sessions.Clear()
		})
}

// Session exposes the current credential blob
func (s *Auth) Session() models.Session {
	return s.sessions.Current()
}
