package mockstore

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"restaurant-ordering/models"
)

// Seed fills the store with the demo data the layer serves when the
// backend is unreachable: two restaurants with menus, one customer, two
// employees and an admin. Ids are fixed so the demo and the tests can
// reference them.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	s.users = []*models.User{
		seedUser("user-demo", "Dana Kim", "dana@example.com", models.RoleCustomer, "demo123"),
		seedUser("user-emp-1", "Noah Patel", "noah@bellavista.example", models.RoleEmployee, "staff123"),
		seedUser("user-emp-2", "Mia Chen", "mia@bellavista.example", models.RoleEmployee, "staff123"),
		seedUser("user-admin", "Alex Moreau", "admin@example.com", models.RoleAdmin, "admin123"),
	}

	s.restaurants = []*models.Restaurant{
		{
			ID:           "rest-bella-vista",
			Name:         "Bella Vista",
			Description:  "Neapolitan pizza and fresh pasta",
			Cuisine:      "Italian",
			Address:      "12 Harbor St",
			Phone:        "+1 555 0101",
			Email:        "hello@bellavista.example",
			IsActive:     true,
			Rating:       4.6,
			TotalRatings: 128,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "rest-sakura",
			Name:         "Sakura House",
			Description:  "Ramen, donburi and seasonal sets",
			Cuisine:      "Japanese",
			Address:      "88 Cherry Ln",
			Phone:        "+1 555 0102",
			Email:        "info@sakura.example",
			IsActive:     true,
			Rating:       4.3,
			TotalRatings: 73,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	s.menuItems = []*models.MenuItem{
		{
			ID:           "item-margherita",
			RestaurantID: "rest-bella-vista",
			Name:         "Pizza Margherita",
			Description:  "San Marzano tomatoes, fior di latte, basil",
			Price:        10.00,
			Category:     "Pizza",
			IsAvailable:  true,
			Nutrition:    &models.NutritionFacts{Calories: 870, Protein: 34, Carbs: 110, Fat: 30},
			Customizations: []models.Customization{
				{ID: "size", Name: "Size", Kind: models.KindSingleChoice, Required: true, Options: []string{"regular", "large"}},
				{ID: "toppings", Name: "Extra toppings", Kind: models.KindMultiChoice, Options: []string{"olives", "mushrooms", "prosciutto"}},
				{ID: "note", Name: "Kitchen note", Kind: models.KindFreeText},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:           "item-carbonara",
			RestaurantID: "rest-bella-vista",
			Name:         "Spaghetti Carbonara",
			Description:  "Guanciale, pecorino, egg yolk",
			Price:        12.50,
			Category:     "Pasta",
			IsAvailable:  true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "item-tiramisu",
			RestaurantID: "rest-bella-vista",
			Name:         "Tiramisu",
			Price:        5.00,
			Category:     "Dessert",
			IsAvailable:  true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "item-shoyu-ramen",
			RestaurantID: "rest-sakura",
			Name:         "Shoyu Ramen",
			Description:  "Chicken broth, ajitama, chashu",
			Price:        11.00,
			Category:     "Ramen",
			IsAvailable:  true,
			Customizations: []models.Customization{
				{ID: "spice", Name: "Spice level", Kind: models.KindSingleChoice, Required: true, Options: []string{"mild", "medium", "hot"}},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:           "item-katsu-don",
			RestaurantID: "rest-sakura",
			Name:         "Katsu Don",
			Price:        9.50,
			Category:     "Donburi",
			IsAvailable:  false, // sold out in the demo data
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

func seedUser(id, name, email string, role models.UserRole, password string) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &models.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
}
