package handlers

import (
	"math"
	"net/http"

	"restaurant-ordering/middleware"
	"restaurant-ordering/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateRestaurantRatingRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
	OrderID      string `json:"order_id" binding:"required"`
	TasteRating  int    `json:"taste_rating" binding:"required,min=1,max=5"`
	ValueRating  int    `json:"value_rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
}

type UpdateRestaurantRatingRequest struct {
	TasteRating int    `json:"taste_rating" binding:"required,min=1,max=5"`
	ValueRating int    `json:"value_rating" binding:"required,min=1,max=5"`
	Comment     string `json:"comment"`
}

type CreateDishRatingRequest struct {
	DishID       string `json:"dish_id" binding:"required"`
	RestaurantID string `json:"restaurant_id"`
	OrderID      string `json:"order_id" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
}

// GetRestaurantRatings lists all reviews of one restaurant, newest first
func (h *Handler) GetRestaurantRatings(c *gin.Context) {
	var ratings []models.RestaurantRating
	h.DB.Where("restaurant_id = ?", c.Param("restaurantId")).
		Order("created_at desc").
		Find(&ratings)
	c.JSON(http.StatusOK, ratings)
}

// CreateRestaurantRating records a review. The overall score is fixed
// here as the mean of taste and value; the restaurant row's cached
// summary stays untouched.
func (h *Handler) CreateRestaurantRating(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateRestaurantRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, "id = ?", req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	rating := models.RestaurantRating{
		ID:            uuid.NewString(),
		UserID:        userID,
		RestaurantID:  req.RestaurantID,
		OrderID:       req.OrderID,
		TasteRating:   req.TasteRating,
		ValueRating:   req.ValueRating,
		OverallRating: float64(req.TasteRating+req.ValueRating) / 2,
		Comment:       req.Comment,
	}
	if err := h.DB.Create(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rating"})
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// UpdateRestaurantRating edits the caller's own review
func (h *Handler) UpdateRestaurantRating(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var rating models.RestaurantRating
	if err := h.DB.First(&rating, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}
	if rating.UserID != userID && middleware.GetRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "This rating does not belong to you"})
		return
	}

	var req UpdateRestaurantRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rating.TasteRating = req.TasteRating
	rating.ValueRating = req.ValueRating
	rating.OverallRating = float64(req.TasteRating+req.ValueRating) / 2
	rating.Comment = req.Comment
	h.DB.Save(&rating)
	c.JSON(http.StatusOK, rating)
}

// DeleteRestaurantRating removes a review (owner or admin)
func (h *Handler) DeleteRestaurantRating(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var rating models.RestaurantRating
	if err := h.DB.First(&rating, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}
	if rating.UserID != userID && middleware.GetRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "This rating does not belong to you"})
		return
	}
	h.DB.Delete(&rating)
	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted"})
}

// CreateDishRating records a single-score review of one dish
func (h *Handler) CreateDishRating(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateDishRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := h.DB.First(&item, "id = ?", req.DishID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}

	rating := models.DishRating{
		ID:           uuid.NewString(),
		UserID:       userID,
		RestaurantID: item.RestaurantID,
		DishID:       req.DishID,
		OrderID:      req.OrderID,
		Rating:       req.Rating,
	}
	if err := h.DB.Create(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dish rating"})
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// UpdateDishRating edits the caller's own dish review
func (h *Handler) UpdateDishRating(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var rating models.DishRating
	if err := h.DB.First(&rating, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish rating not found"})
		return
	}
	if rating.UserID != userID && middleware.GetRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "This rating does not belong to you"})
		return
	}

	var req struct {
		Rating int `json:"rating" binding:"required,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rating.Rating = req.Rating
	h.DB.Save(&rating)
	c.JSON(http.StatusOK, rating)
}

// DeleteDishRating removes a dish review (owner or admin)
func (h *Handler) DeleteDishRating(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var rating models.DishRating
	if err := h.DB.First(&rating, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish rating not found"})
		return
	}
	if rating.UserID != userID && middleware.GetRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "This rating does not belong to you"})
		return
	}
	h.DB.Delete(&rating)
	c.JSON(http.StatusOK, gin.H{"message": "Dish rating deleted"})
}

// GetDishAverage publishes the aggregate for one dish: the mean of all
// its ratings rounded to one decimal. A dish with no ratings answers
// (0, 0), not an error.
func (h *Handler) GetDishAverage(c *gin.Context) {
	dishID := c.Param("dishId")

	var ratings []models.DishRating
	h.DB.Where("dish_id = ?", dishID).Find(&ratings)

	avg := models.DishAverage{DishID: dishID}
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Rating
		}
		avg.Count = len(ratings)
		avg.Rating = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	}
	c.JSON(http.StatusOK, avg)
}
