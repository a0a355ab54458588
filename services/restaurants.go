package services

import (
	"context"
	"fmt"

	"restaurant-ordering/gateway"
	"restaurant-ordering/mockstore"
	"restaurant-ordering/models"
	"restaurant-ordering/resilience"
)

type Restaurants struct {
	gw     *gateway.Client
	store  *mockstore.Store
	policy *resilience.Policy
}

// List returns restaurants, optionally only active ones
func (s *Restaurants) List(ctx context.Context, activeOnly bool) ([]models.Restaurant, error) {
	return resilience.WithFallback(ctx, s.policy, "restaurants.list",
		func(ctx context.Context) ([]models.Restaurant, error) {
			var out []models.Restaurant
			path := "/restaurant"
			if activeOnly {
				path += "?active=true"
			}
			return out, s.gw.Get(ctx, path, &out)
		},
		func(ctx context.Context) ([]models.Restaurant, error) {
			return s.store.ListRestaurants(ctx, activeOnly)
		})
}

// Get returns one restaurant with its menu
func (s *Restaurants) Get(ctx context.Context, id string) (models.Restaurant, error) {
	return resilience.WithFallback(ctx, s.policy, "restaurants.get",
		func(ctx context.Context) (models.Restaurant, error) {
			var out models.Restaurant
			return out, s.gw.Get(ctx, "/restaurant/"+id, &out)
		},
		func(ctx context.Context) (models.Restaurant, error) {
			return s.store.GetRestaurant(ctx, id)
		})
}

// Menu returns the menu of one restaurant
func (s *Restaurants) Menu(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	return resilience.WithFallback(ctx, s.policy, "restaurants.menu",
		func(ctx context.Context) ([]models.MenuItem, error) {
			var out []models.MenuItem
			return out, s.gw.Get(ctx, "/restaurant/"+restaurantID+"/menu", &out)
		},
		func(ctx context.Context) ([]models.MenuItem, error) {
			return s.store.Menu(ctx, restaurantID)
		})
}

// MenuItem returns one menu item
func (s *Restaurants) MenuItem(ctx context.Context, restaurantID, itemID string) (models.MenuItem, error) {
	return resilience.WithFallback(ctx, s.policy, "restaurants.menu_item",
		func(ctx context.Context) (models.MenuItem, error) {
			var out models.MenuItem
			return out, s.gw.Get(ctx, "/restaurant/"+restaurantID+"/menu/"+itemID, &out)
		},
		func(ctx context.Context) (models.MenuItem, error) {
			return s.store.GetMenuItem(ctx, restaurantID, itemID)
		})
}

// Create registers a restaurant (management surface)
func (s *Restaurants) Create(ctx context.Context, r models.Restaurant) (models.Restaurant, error) {
	if r.Name == "" {
		return models.Restaurant{}, fmt.Errorf("restaurant name is required: %w", ErrValidation)
	}
	return resilience.WithFallback(ctx, s.policy, "restaurants.create",
		func(ctx context.Context) (models.Restaurant, error) {
			var out models.Restaurant
			return out, s.gw.Post(ctx, "/restaurant", r, &out)
		},
		func(ctx context.Context) (models.Restaurant, error) {
			return s.store.CreateRestaurant(ctx, r)
		})
}

// Update overwrites a restaurant's editable fields
func (s *Restaurants) Update(ctx context.Context, r models.Restaurant) (models.Restaurant, error) {
	return resilience.WithFallback(ctx, s.policy, "restaurants.update",
		func(ctx context.Context) (models.Restaurant, error) {
			var out models.Restaurant
			return out, s.gw.Put(ctx, "/restaurant/"+r.ID, r, &out)
		},
		func(ctx context.Context) (models.Restaurant, error) {
			return s.store.UpdateRestaurant(ctx, r)
		})
}

// Delete removes a restaurant
func (s *Restaurants) Delete(ctx context.Context, id string) error {
	return resilience.WithFallbackErr(ctx, s.policy, "restaurants.delete",
		func(ctx context.Context) error {
			return s.gw.Delete(ctx, "/restaurant/"+id, nil)
		},
		func(ctx context.Context) error {
			return s.store.DeleteRestaurant(ctx, id)
		})
}

// CreateMenuItem adds an item to a restaurant's menu
func (s *Restaurants) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if item.Name == "" || item.Price <= 0 {
		return models.MenuItem{}, fmt.Errorf("menu item needs a name and a positive price: %w", ErrValidation)
	}
	return resilience.WithFallback(ctx, s.policy, "restaurants.create_menu_item",
		func(ctx context.Context) (models.MenuItem, error) {
			var out models.MenuItem
			return out, s.gw.Post(ctx, "/restaurant/"+item.RestaurantID+"/menu", item, &out)
		},
		func(ctx context.Context) (models.MenuItem, error) {
			return s.store.CreateMenuItem(ctx, item)
		})
}

// UpdateMenuItem overwrites one menu item
func (s *Restaurants) UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	return resilience.WithFallback(ctx, s.policy, "restaurants.update_menu_item",
		func(ctx context.Context) (models.MenuItem, error) {
			var out models.MenuItem
			return out, s.gw.Put(ctx, "/restaurant/"+item.RestaurantID+"/menu/"+item.ID, item, &out)
		},
		func(ctx context.Context) (models.MenuItem, error) {
			return s.store.UpdateMenuItem(ctx, item)
		})
}

// DeleteMenuItem removes one menu item
func (s *Restaurants) DeleteMenuItem(ctx context.Context, restaurantID, itemID string) error {
	return resilience.WithFallbackErr(ctx, s.policy, "restaurants.delete_menu_item",
		func(ctx context.Context) error {
			return s.gw.Delete(ctx, "/restaurant/"+restaurantID+"/menu/"+itemID, nil)
		},
		func(ctx context.Context) error {
			return s.store.DeleteMenuItem(ctx, itemID)
		})
}
