package services

import (
	"context"
	"fmt"

	"restaurant-ordering/gateway"
	"restaurant-ordering/mockstore"
	"restaurant-ordering/models"
	"restaurant-ordering/resilience"
)

type Ratings struct {
	gw     *gateway.Client
	store  *mockstore.Store
	policy *resilience.Policy
}

// ForRestaurant lists all reviews of one restaurant
func (s *Ratings) ForRestaurant(ctx context.Context, restaurantID string) ([]models.RestaurantRating, error) {
	return resilience.WithFallback(ctx, s.policy, "ratings.for_restaurant",
		func(ctx context.Context) ([]models.RestaurantRating, error) {
			var out []models.RestaurantRating
			return out, s.gw.Get(ctx, "/rating/"+restaurantID, &out)
		},
		func(ctx context.Context) ([]models.RestaurantRating, error) {
			return s.store.RestaurantRatings(ctx, restaurantID)
		})
}

// CreateRestaurantRating submits a review; the overall score is always
// the mean of taste and value
func (s *Ratings) CreateRestaurantRating(ctx context.Context, r models.RestaurantRating) (models.RestaurantRating, error) {
	if err := checkScore(r.TasteRating); err != nil {
		return models.RestaurantRating{}, fmt.Errorf("taste rating: %w", err)
	}
	if err := checkScore(r.ValueRating); err != nil {
		return models.RestaurantRating{}, fmt.Errorf("value rating: %w", err)
	}
	return resilience.WithFallback(ctx, s.policy, "ratings.create",
		func(ctx context.Context) (models.RestaurantRating, error) {
			var out models.RestaurantRating
			return out, s.gw.Post(ctx, "/rating", r, &out)
		},
		func(ctx context.Context) (models.RestaurantRating, error) {
			return s.store.CreateRestaurantRating(ctx, r)
		})
}

// UpdateRestaurantRating edits an existing review
func (s *Ratings) UpdateRestaurantRating(ctx context.Context, id string, taste, value int, comment string) (models.RestaurantRating, error) {
	if err := checkScore(taste); err != nil {
		return models.RestaurantRating{}, fmt.Errorf("taste rating: %w", err)
	}
	if err := checkScore(value); err != nil {
		return models.RestaurantRating{}, fmt.Errorf("value rating: %w", err)
	}
	body := map[string]any{"taste_rating": taste, "value_rating": value, "comment": comment}
	return resilience.WithFallback(ctx, s.policy, "ratings.update",
		func(ctx context.Context) (models.RestaurantRating, error) {
			var out models.RestaurantRating
			return out, s.gw.Put(ctx, "/rating/"+id, body, &out)
		},
		func(ctx context.Context) (models.RestaurantRating, error) {
			return s.store.UpdateRestaurantRating(ctx, id, taste, value, comment)
		})
}

// DeleteRestaurantRating removes a review
func (s *Ratings) DeleteRestaurantRating(ctx context.Context, id string) error {
	return resilience.WithFallbackErr(ctx, s.policy, "ratings.delete",
		func(ctx context.Context) error {
			return s.gw.Delete(ctx, "/rating/"+id, nil)
		},
		func(ctx context.Context) error {
			return s.store.DeleteRestaurantRating(ctx, id)
		})
}

// CreateDishRating submits a single-score dish review
func (s *Ratings) CreateDishRating(ctx context.Context, r models.DishRating) (models.DishRating, error) {
	if err := checkScore(r.Rating); err != nil {
		return models.DishRating{}, err
	}
	return resilience.WithFallback(ctx, s.policy, "ratings.create_dish",
		func(ctx context.Context) (models.DishRating, error) {
			var out models.DishRating
			return out, s.gw.Post(ctx, "/dish-rating", r, &out)
		},
		func(ctx context.Context) (models.DishRating, error) {
			return s.store.CreateDishRating(ctx, r)
		})
}

// UpdateDishRating edits a dish review
func (s *Ratings) UpdateDishRating(ctx context.Context, id string, rating int) (models.DishRating, error) {
	if err := checkScore(rating); err != nil {
		return models.DishRating{}, err
	}
	return resilience.WithFallback(ctx, s.policy, "ratings.update_dish",
		func(ctx context.Context) (models.DishRating, error) {
			var out models.DishRating
			return out, s.gw.Put(ctx, "/dish-rating/"+id, map[string]int{"rating": rating}, &out)
		},
		func(ctx context.Context) (models.DishRating, error) {
			return s.store.UpdateDishRating(ctx, id, rating)
		})
}

// DeleteDishRating removes a dish review
func (s *Ratings) DeleteDishRating(ctx context.Context, id string) error {
	return resilience.WithFallbackErr(ctx, s.policy, "ratings.delete_dish",
		func(ctx context.Context) error {
			return s.gw.Delete(ctx, "/dish-rating/"+id, nil)
		},
		func(ctx context.Context) error {
			return s.store.DeleteDishRating(ctx, id)
		})
}

// DishAverage returns the published aggregate for one dish; a dish with
// no ratings yields (0, 0)
func (s *Ratings) DishAverage(ctx context.Context, dishID string) (models.DishAverage, error) {
	return resilience.WithFallback(ctx, s.policy, "ratings.dish_average",
		func(ctx context.Context) (models.DishAverage, error) {
			var out models.DishAverage
			return out, s.gw.Get(ctx, "/dish-rating/"+dishID+"/average", &out)
		},
		func(ctx context.Context) (models.DishAverage, error) {
			return s.store.DishAverage(ctx, dishID)
		})
}

func checkScore(v int) error {
	if v < 1 || v > 5 {
		return fmt.Errorf("score must be between 1 and 5: %w", ErrValidation)
	}
	return nil
}
