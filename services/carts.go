package services

import (
	"context"
	"fmt"

	"restaurant-ordering/cartlogic"
	"restaurant-ordering/gateway"
	"restaurant-ordering/mockstore"
	"restaurant-ordering/models"
	"restaurant-ordering/resilience"
)

type Carts struct {
	gw     *gateway.Client
	store  *mockstore.Store
	policy *resilience.Policy
}

// AddToCartRequest is the payload for adding one line
type AddToCartRequest struct {
	UserID     string            `json:"user_id"`
	MenuItemID string            `json:"menu_item_id"`
	Quantity   int               `json:"quantity"`
	Selections models.Selections `json:"selections,omitempty"`
	Note       string            `json:"note,omitempty"`
}

// Get returns the user's cart. The total is re-derived here so a stale
// or tampered total can never reach the UI.
func (s *Carts) Get(ctx context.Context, userID string) (models.Cart, error) {
	cart, err := resilience.WithFallback(ctx, s.policy, "cart.get",
		func(ctx context.Context) (models.Cart, error) {
			var out models.Cart
			return out, s.gw.Get(ctx, "/cart/"+userID, &out)
		},
		func(ctx context.Context) (models.Cart, error) {
			return s.store.GetCart(ctx, userID)
		})
	if err != nil {
		return models.Cart{}, err
	}
	cartlogic.Recompute(&cart)
	return cart, nil
}

// Add puts a menu item into the cart, merging with an existing line when
// the identity key matches
func (s *Carts) Add(ctx context.Context, req AddToCartRequest) (models.Cart, error) {
	if req.Quantity < 1 {
		return models.Cart{}, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}
	if req.MenuItemID == "" {
		return models.Cart{}, fmt.Errorf("menu item id is required: %w", ErrValidation)
	}
	cart, err := resilience.WithFallback(ctx, s.policy, "cart.add",
		func(ctx context.Context) (models.Cart, error) {
			var out models.Cart
			return out, s.gw.Post(ctx, "/cart", req, &out)
		},
		func(ctx context.Context) (models.Cart, error) {
			return s.store.AddToCart(ctx, req.UserID, req.MenuItemID, req.Quantity, req.Selections, req.Note)
		})
	if err != nil {
		return models.Cart{}, err
	}
	cartlogic.Recompute(&cart)
	return cart, nil
}

// UpdateItem changes the quantity of one line
func (s *Carts) UpdateItem(ctx context.Context, userID, itemID string, quantity int) (models.Cart, error) {
	if quantity < 1 {
		return models.Cart{}, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}
	cart, err := resilience.WithFallback(ctx, s.policy, "cart.update_item",
		func(ctx context.Context) (models.Cart, error) {
			var out models.Cart
			return out, s.gw.Put(ctx, "/cart/"+itemID, map[string]int{"quantity": quantity}, &out)
		},
		func(ctx context.Context) (models.Cart, error) {
			return s.store.UpdateCartItem(ctx, userID, itemID, quantity)
		})
	if err != nil {
		return models.Cart{}, err
	}
	cartlogic.Recompute(&cart)
	return cart, nil
}

// RemoveItem deletes one line; the cart entity stays even when empty
func (s *Carts) RemoveItem(ctx context.Context, userID, itemID string) (models.Cart, error) {
	cart, err := resilience.WithFallback(ctx, s.policy, "cart.remove_item",
		func(ctx context.Context) (models.Cart, error) {
			var out models.Cart
			return out, s.gw.Delete(ctx, "/cart/"+itemID, &out)
		},
		func(ctx context.Context) (models.Cart, error) {
			return s.store.RemoveCartItem(ctx, userID, itemID)
		})
	if err != nil {
		return models.Cart{}, err
	}
	cartlogic.Recompute(&cart)
	return cart, nil
}

// Clear removes the cart entity entirely
func (s *Carts) Clear(ctx context.Context, userID string) error {
	return resilience.WithFallbackErr(ctx, s.policy, "cart.clear",
		func(ctx context.Context) error {
			return s.gw.Delete(ctx, "/cart", nil)
		},
		func(ctx context.Context) error {
			return s.store.ClearCart(ctx, userID)
		})
}
