package mockstore

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"restaurant-ordering/models"
)

// RestaurantRatings lists all reviews of one restaurant, newest first
func (s *Store) RestaurantRatings(ctx context.Context, restaurantID string) ([]models.RestaurantRating, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.RestaurantRating{}
	for i := len(s.restRatings) - 1; i >= 0; i-- {
		if s.restRatings[i].RestaurantID == restaurantID {
			out = append(out, *s.restRatings[i])
		}
	}
	return out, nil
}

// CreateRestaurantRating appends a review. The overall score is fixed
// here as the mean of taste and value; the restaurant row's cached
// rating summary is a separate statistic and stays untouched.
func (s *Store) CreateRestaurantRating(ctx context.Context, r models.RestaurantRating) (models.RestaurantRating, error) {
	if err := s.simulate(ctx); err != nil {
		return models.RestaurantRating{}, err
	}
	if err := validScore(r.TasteRating); err != nil {
		return models.RestaurantRating{}, fmt.Errorf("taste rating: %w", err)
	}
	if err := validScore(r.ValueRating); err != nil {
		return models.RestaurantRating{}, fmt.Errorf("value rating: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findRestaurant(r.RestaurantID) == nil {
		return models.RestaurantRating{}, fmt.Errorf("restaurant %s: %w", r.RestaurantID, ErrNotFound)
	}
	r.ID = uuid.NewString()
	r.OverallRating = float64(r.TasteRating+r.ValueRating) / 2
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	stored := r
	s.restRatings = append(s.restRatings, &stored)
	return stored, nil
}

// UpdateRestaurantRating edits a review's scores and comment, keeping
// the overall score the mean of the two
func (s *Store) UpdateRestaurantRating(ctx context.Context, id string, taste, value int, comment string) (models.RestaurantRating, error) {
	if err := s.simulate(ctx); err != nil {
		return models.RestaurantRating{}, err
	}
	if err := validScore(taste); err != nil {
		return models.RestaurantRating{}, fmt.Errorf("taste rating: %w", err)
	}
	if err := validScore(value); err != nil {
		return models.RestaurantRating{}, fmt.Errorf("value rating: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.restRatings {
		if r.ID == id {
			r.TasteRating = taste
			r.ValueRating = value
			r.OverallRating = float64(taste+value) / 2
			r.Comment = comment
			r.UpdatedAt = time.Now()
			return *r, nil
		}
	}
	return models.RestaurantRating{}, fmt.Errorf("rating %s: %w", id, ErrNotFound)
}

// DeleteRestaurantRating removes a review
func (s *Store) DeleteRestaurantRating(ctx context.Context, id string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.restRatings {
		if r.ID == id {
			s.restRatings = append(s.restRatings[:i], s.restRatings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("rating %s: %w", id, ErrNotFound)
}

// CreateDishRating records a single-score review of one dish
func (s *Store) CreateDishRating(ctx context.Context, r models.DishRating) (models.DishRating, error) {
	if err := s.simulate(ctx); err != nil {
		return models.DishRating{}, err
	}
	if err := validScore(r.Rating); err != nil {
		return models.DishRating{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findMenuItem(r.DishID) == nil {
		return models.DishRating{}, fmt.Errorf("dish %s: %w", r.DishID, ErrNotFound)
	}
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	stored := r
	s.dishRatings = append(s.dishRatings, &stored)
	return stored, nil
}

// UpdateDishRating edits one dish review
func (s *Store) UpdateDishRating(ctx context.Context, id string, rating int) (models.DishRating, error) {
	if err := s.simulate(ctx); err != nil {
		return models.DishRating{}, err
	}
	if err := validScore(rating); err != nil {
		return models.DishRating{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.dishRatings {
		if r.ID == id {
			r.Rating = rating
			r.UpdatedAt = time.Now()
			return *r, nil
		}
	}
	return models.DishRating{}, fmt.Errorf("dish rating %s: %w", id, ErrNotFound)
}

// DeleteDishRating removes one dish review
func (s *Store) DeleteDishRating(ctx context.Context, id string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.dishRatings {
		if r.ID == id {
			s.dishRatings = append(s.dishRatings[:i], s.dishRatings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("dish rating %s: %w", id, ErrNotFound)
}

// DishAverage publishes the aggregate for one dish: the mean of all its
// ratings rounded to one decimal, with the count. No ratings yields
// (0, 0), not an error.
func (s *Store) DishAverage(ctx context.Context, dishID string) (models.DishAverage, error) {
	if err := s.simulate(ctx); err != nil {
		return models.DishAverage{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum, count := 0, 0
	for _, r := range s.dishRatings {
		if r.DishID == dishID {
			sum += r.Rating
			count++
		}
	}
	avg := models.DishAverage{DishID: dishID}
	if count == 0 {
		return avg, nil
	}
	avg.Count = count
	avg.Rating = math.Round(float64(sum)/float64(count)*10) / 10
	return avg, nil
}

func validScore(v int) error {
	if v < 1 || v > 5 {
		return fmt.Errorf("score must be between 1 and 5: %w", ErrValidation)
	}
	return nil
}
