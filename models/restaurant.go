package models

import "time"

type Restaurant struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	Cuisine     string     `json:"cuisine"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	// Rating and TotalRatings are the coarse cached summary shown in
	// listings. Per-review detail lives in the ratings table and is
	// aggregated separately; creating a review does not touch these.
	Rating       float64    `json:"rating" gorm:"default:0"`
	TotalRatings int        `json:"total_ratings" gorm:"default:0"`
	MenuItems    []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CustomizationKind distinguishes how a customization is answered
type CustomizationKind string

const (
	KindSingleChoice CustomizationKind = "single_choice"
	KindMultiChoice  CustomizationKind = "multi_choice"
	KindFreeText     CustomizationKind = "free_text"
)

// Customization is a configurable option on a menu item (e.g. size,
// toppings, special instructions)
type Customization struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Kind     CustomizationKind `json:"kind"`
	Required bool              `json:"required"`
	Options  []string          `json:"options,omitempty"`
}

type NutritionFacts struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type MenuItem struct {
	ID             string          `json:"id" gorm:"primaryKey"`
	RestaurantID   string          `json:"restaurant_id" gorm:"not null;index"`
	Name           string          `json:"name" gorm:"not null"`
	Description    string          `json:"description"`
	Price          float64         `json:"price" gorm:"not null"`
	Category       string          `json:"category"`
	IsAvailable    bool            `json:"is_available" gorm:"default:true"`
	Nutrition      *NutritionFacts `json:"nutrition,omitempty" gorm:"serializer:json"`
	Customizations []Customization `json:"customizations,omitempty" gorm:"serializer:json"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
