package handlers

import (
	"net/http"

	"restaurant-ordering/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ── Restaurants ─────────────────────────────────────────────────────────────

// ListRestaurants returns all restaurants, optionally only active ones
func (h *Handler) ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := h.DB

	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}
	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine LIKE ?", "%"+cuisine+"%")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	query.Find(&restaurants)
	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant returns a single restaurant with its menu
func (h *Handler) GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.DB.Preload("MenuItems").First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Cuisine     string `json:"cuisine"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// CreateRestaurant registers a new restaurant (admin)
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Cuisine:     req.Cuisine,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		IsActive:    true,
	}
	if err := h.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// UpdateRestaurant updates restaurant details. This is also the only
// place the cached rating summary may change; review writes never touch
// it.
func (h *Handler) UpdateRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{
		"name": true, "description": true, "cuisine": true, "address": true,
		"phone": true, "email": true, "is_active": true, "rating": true,
		"total_ratings": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	h.DB.Model(&restaurant).Updates(update)
	c.JSON(http.StatusOK, restaurant)
}

// DeleteRestaurant removes a restaurant and its menu (admin)
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id := c.Param("id")
	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	h.DB.Where("restaurant_id = ?", id).Delete(&models.MenuItem{})
	h.DB.Delete(&restaurant)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}

// ── Menu ────────────────────────────────────────────────────────────────────

// GetMenu returns the menu for a specific restaurant
func (h *Handler) GetMenu(c *gin.Context) {
	restaurantID := c.Param("id")
	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var items []models.MenuItem
	query := h.DB.Where("restaurant_id = ?", restaurantID)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("available") == "true" {
		query = query.Where("is_available = ?", true)
	}
	query.Find(&items)

	c.JSON(http.StatusOK, items)
}

// GetMenuItem returns one item of a restaurant's menu
func (h *Handler) GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	err := h.DB.First(&item, "id = ? AND restaurant_id = ?", c.Param("itemId"), c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

type CreateMenuItemRequest struct {
	Name           string                 `json:"name" binding:"required"`
	Description    string                 `json:"description"`
	Price          float64                `json:"price" binding:"required,gt=0"`
	Category       string                 `json:"category"`
	IsAvailable    *bool                  `json:"is_available"`
	Nutrition      *models.NutritionFacts `json:"nutrition"`
	Customizations []models.Customization `json:"customizations"`
}

// AddMenuItem adds a new item to the restaurant's menu (employee/admin)
func (h *Handler) AddMenuItem(c *gin.Context) {
	restaurantID := c.Param("id")
	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	item := models.MenuItem{
		ID:             uuid.NewString(),
		RestaurantID:   restaurantID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		IsAvailable:    available,
		Nutrition:      req.Nutrition,
		Customizations: req.Customizations,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem updates an existing menu item (employee/admin)
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	err := h.DB.First(&item, "id = ? AND restaurant_id = ?", c.Param("itemId"), c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = req.Category
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	item.Nutrition = req.Nutrition
	item.Customizations = req.Customizations
	if err := h.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem removes one menu item (employee/admin)
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	err := h.DB.First(&item, "id = ? AND restaurant_id = ?", c.Param("itemId"), c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	h.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
