package mockstore

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"restaurant-ordering/models"
)

// Authenticate checks credentials against the simulated accounts. It
// backs the login fallback when the real backend is unreachable.
func (s *Store) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	if err := s.simulate(ctx); err != nil {
		return models.User{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			break
		}
		return *u, nil
	}
	return models.User{}, fmt.Errorf("invalid email or password: %w", ErrNotFound)
}

// GetUser returns one account by id
func (s *Store) GetUser(ctx context.Context, id string) (models.User, error) {
	if err := s.simulate(ctx); err != nil {
		return models.User{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.findUser(id)
	if u == nil {
		return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return *u, nil
}

// Employees lists every account with the employee role
func (s *Store) Employees(ctx context.Context) ([]models.User, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.User{}
	for _, u := range s.users {
		if u.Role == models.RoleEmployee {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *Store) findUser(id string) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}
