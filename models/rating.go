package models

import "time"

// RestaurantRating is one customer review of a restaurant. OrderID is a
// non-owning back-reference to the order that authorized the review;
// deleting the order does not cascade here.
type RestaurantRating struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"not null;index"`
	RestaurantID string    `json:"restaurant_id" gorm:"not null;index"`
	OrderID      string    `json:"order_id" gorm:"not null"`
	TasteRating  int       `json:"taste_rating" gorm:"not null"`
	ValueRating  int       `json:"value_rating" gorm:"not null"`
	// OverallRating is fixed at creation as the mean of taste and value
	OverallRating float64   `json:"overall_rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DishRating is a single-score review of one menu item
type DishRating struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"not null;index"`
	RestaurantID string    `json:"restaurant_id" gorm:"index"`
	DishID       string    `json:"dish_id" gorm:"not null;index"`
	OrderID      string    `json:"order_id" gorm:"not null"`
	Rating       int       `json:"rating" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DishAverage is the published aggregate for one dish
type DishAverage struct {
	DishID string  `json:"dish_id"`
	Rating float64 `json:"rating"` // mean rounded to one decimal, 0 when Count is 0
	Count  int     `json:"count"`
}
