package mockstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"restaurant-ordering/cartlogic"
	"restaurant-ordering/models"
)

// GetCart returns the user's cart with its total freshly recomputed
func (s *Store) GetCart(ctx context.Context, userID string) (models.Cart, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Cart{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[userID]
	if !ok {
		return models.Cart{}, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}
	// Recompute on the copy: writing through the stored cart under a
	// read lock would race with other readers.
	out := cart.Clone()
	cartlogic.Recompute(&out)
	return out, nil
}

// AddToCart adds a menu item to the user's cart, creating the cart bound
// to the item's restaurant when none exists. Lines with the same identity
// key (menu item + canonical selections) merge by quantity. The whole
// read-modify-write runs under the user's cart lock so two concurrent
// adds cannot lose each other's update.
func (s *Store) AddToCart(ctx context.Context, userID, menuItemID string, quantity int, selections models.Selections, note string) (models.Cart, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Cart{}, err
	}
	if quantity < 1 {
		return models.Cart{}, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	unlock := s.lockKey("cart", userID)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findMenuItem(menuItemID)
	if item == nil {
		return models.Cart{}, fmt.Errorf("menu item %s: %w", menuItemID, ErrNotFound)
	}
	if !item.IsAvailable {
		return models.Cart{}, fmt.Errorf("menu item %q is not available: %w", item.Name, ErrValidation)
	}

	cart, ok := s.carts[userID]
	if !ok {
		cart = &models.Cart{
			ID:           uuid.NewString(),
			UserID:       userID,
			RestaurantID: item.RestaurantID,
			CreatedAt:    time.Now(),
		}
		s.carts[userID] = cart
	}

	cartlogic.AddItem(cart, cloneMenuItem(item), quantity, selections, note)
	cart.UpdatedAt = time.Now()
	return cart.Clone(), nil
}

// UpdateCartItem sets the quantity of one cart line
func (s *Store) UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) (models.Cart, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Cart{}, err
	}
	if quantity < 1 {
		return models.Cart{}, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	unlock := s.lockKey("cart", userID)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return models.Cart{}, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}
	if !cartlogic.UpdateQuantity(cart, itemID, quantity) {
		return models.Cart{}, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	cart.UpdatedAt = time.Now()
	return cart.Clone(), nil
}

// RemoveCartItem deletes one line. Removing the last line leaves an
// empty cart; only ClearCart removes the cart entity itself.
func (s *Store) RemoveCartItem(ctx context.Context, userID, itemID string) (models.Cart, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Cart{}, err
	}

	unlock := s.lockKey("cart", userID)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return models.Cart{}, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}
	if !cartlogic.RemoveItem(cart, itemID) {
		return models.Cart{}, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	cart.UpdatedAt = time.Now()
	return cart.Clone(), nil
}

// ClearCart removes the user's cart entity entirely
func (s *Store) ClearCart(ctx context.Context, userID string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}

	unlock := s.lockKey("cart", userID)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[userID]; !ok {
		return fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}
	delete(s.carts, userID)
	return nil
}
