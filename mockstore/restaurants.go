package mockstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"restaurant-ordering/models"
)

// ListRestaurants returns restaurants, optionally only active ones
func (s *Store) ListRestaurants(ctx context.Context, activeOnly bool) ([]models.Restaurant, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		if activeOnly && !r.IsActive {
			continue
		}
		out = append(out, cloneRestaurant(r))
	}
	return out, nil
}

// GetRestaurant returns one restaurant with its menu attached
func (s *Store) GetRestaurant(ctx context.Context, id string) (models.Restaurant, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Restaurant{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := s.findRestaurant(id)
	if r == nil {
		return models.Restaurant{}, fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
	}
	out := cloneRestaurant(r)
	out.MenuItems = s.menuFor(id)
	return out, nil
}

// CreateRestaurant registers a new restaurant
func (s *Store) CreateRestaurant(ctx context.Context, r models.Restaurant) (models.Restaurant, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Restaurant{}, err
	}
	if r.Name == "" {
		return models.Restaurant{}, fmt.Errorf("restaurant name is required: %w", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = uuid.NewString()
	r.MenuItems = nil
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	stored := r
	s.restaurants = append(s.restaurants, &stored)
	return cloneRestaurant(&stored), nil
}

// UpdateRestaurant overwrites editable fields of an existing restaurant.
// The cached rating summary is only ever changed here, never by the
// rating operations.
func (s *Store) UpdateRestaurant(ctx context.Context, r models.Restaurant) (models.Restaurant, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Restaurant{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.findRestaurant(r.ID)
	if existing == nil {
		return models.Restaurant{}, fmt.Errorf("restaurant %s: %w", r.ID, ErrNotFound)
	}
	existing.Name = r.Name
	existing.Description = r.Description
	existing.Cuisine = r.Cuisine
	existing.Address = r.Address
	existing.Phone = r.Phone
	existing.Email = r.Email
	existing.IsActive = r.IsActive
	existing.Rating = r.Rating
	existing.TotalRatings = r.TotalRatings
	existing.UpdatedAt = time.Now()
	return cloneRestaurant(existing), nil
}

// DeleteRestaurant removes a restaurant and its menu
func (s *Store) DeleteRestaurant(ctx context.Context, id string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.restaurants {
		if r.ID == id {
			s.restaurants = append(s.restaurants[:i], s.restaurants[i+1:]...)
			kept := s.menuItems[:0]
			for _, m := range s.menuItems {
				if m.RestaurantID != id {
					kept = append(kept, m)
				}
			}
			s.menuItems = kept
			return nil
		}
	}
	return fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
}

// Menu lists the menu of one restaurant
func (s *Store) Menu(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.findRestaurant(restaurantID) == nil {
		return nil, fmt.Errorf("restaurant %s: %w", restaurantID, ErrNotFound)
	}
	return s.menuFor(restaurantID), nil
}

// GetMenuItem returns one menu item of one restaurant
func (s *Store) GetMenuItem(ctx context.Context, restaurantID, itemID string) (models.MenuItem, error) {
	if err := s.simulate(ctx); err != nil {
		return models.MenuItem{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := s.findMenuItem(itemID)
	if m == nil || m.RestaurantID != restaurantID {
		return models.MenuItem{}, fmt.Errorf("menu item %s: %w", itemID, ErrNotFound)
	}
	return cloneMenuItem(m), nil
}

// CreateMenuItem adds an item to a restaurant's menu
func (s *Store) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if err := s.simulate(ctx); err != nil {
		return models.MenuItem{}, err
	}
	if item.Name == "" || item.Price <= 0 {
		return models.MenuItem{}, fmt.Errorf("menu item needs a name and a positive price: %w", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findRestaurant(item.RestaurantID) == nil {
		return models.MenuItem{}, fmt.Errorf("restaurant %s: %w", item.RestaurantID, ErrNotFound)
	}
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	stored := item
	s.menuItems = append(s.menuItems, &stored)
	return cloneMenuItem(&stored), nil
}

// UpdateMenuItem overwrites an existing menu item
func (s *Store) UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if err := s.simulate(ctx); err != nil {
		return models.MenuItem{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.findMenuItem(item.ID)
	if existing == nil {
		return models.MenuItem{}, fmt.Errorf("menu item %s: %w", item.ID, ErrNotFound)
	}
	existing.Name = item.Name
	existing.Description = item.Description
	existing.Price = item.Price
	existing.Category = item.Category
	existing.IsAvailable = item.IsAvailable
	existing.Nutrition = item.Nutrition
	existing.Customizations = item.Customizations
	existing.UpdatedAt = time.Now()
	return cloneMenuItem(existing), nil
}

// DeleteMenuItem removes one menu item
func (s *Store) DeleteMenuItem(ctx context.Context, itemID string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.menuItems {
		if m.ID == itemID {
			s.menuItems = append(s.menuItems[:i], s.menuItems[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("menu item %s: %w", itemID, ErrNotFound)
}

func (s *Store) findRestaurant(id string) *models.Restaurant {
	for _, r := range s.restaurants {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (s *Store) findMenuItem(id string) *models.MenuItem {
	for _, m := range s.menuItems {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (s *Store) menuFor(restaurantID string) []models.MenuItem {
	var out []models.MenuItem
	for _, m := range s.menuItems {
		if m.RestaurantID == restaurantID {
			out = append(out, cloneMenuItem(m))
		}
	}
	return out
}

func cloneRestaurant(r *models.Restaurant) models.Restaurant {
	out := *r
	out.MenuItems = nil
	return out
}

func cloneMenuItem(m *models.MenuItem) models.MenuItem {
	out := *m
	if m.Nutrition != nil {
		n := *m.Nutrition
		out.Nutrition = &n
	}
	if m.Customizations != nil {
		out.Customizations = make([]models.Customization, len(m.Customizations))
		for i, c := range m.Customizations {
			out.Customizations[i] = c
			out.Customizations[i].Options = append([]string(nil), c.Options...)
		}
	}
	return out
}
