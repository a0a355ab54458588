package handlers

import (
	"errors"
	"net/http"

	"restaurant-ordering/cartlogic"
	"restaurant-ordering/middleware"
	"restaurant-ordering/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddToCartRequest struct {
	MenuItemID string            `json:"menu_item_id" binding:"required"`
	Quantity   int               `json:"quantity" binding:"required,min=1"`
	Selections models.Selections `json:"selections"`
	Note       string            `json:"note"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GetCart returns a user's cart with its total freshly recomputed
func (h *Handler) GetCart(c *gin.Context) {
	userID := c.Param("userId")
	caller := middleware.GetUserID(c)
	if userID != caller && middleware.GetRole(c) == models.RoleCustomer {
		c.JSON(http.StatusForbidden, gin.H{"error": "This cart does not belong to you"})
		return
	}

	var cart models.Cart
	if err := h.DB.Preload("Items").First(&cart, "user_id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}
	cartlogic.Recompute(&cart)
	c.JSON(http.StatusOK, cart)
}

// AddToCart adds a menu item to the caller's cart, creating the cart
// bound to the item's restaurant when none exists. A line with the same
// identity key has its quantity bumped instead of duplicating.
func (h *Handler) AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menuItem models.MenuItem
	if err := h.DB.First(&menuItem, "id = ?", req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if !menuItem.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item '" + menuItem.Name + "' is not available"})
		return
	}

	unlock := h.lockCart(userID)
	defer unlock()

	var cart models.Cart
	err := h.DB.Preload("Items").First(&cart, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{
			ID:           uuid.NewString(),
			UserID:       userID,
			RestaurantID: menuItem.RestaurantID,
		}
		if err := h.DB.Create(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	before := len(cart.Items)
	line := cartlogic.AddItem(&cart, menuItem, req.Quantity, req.Selections, req.Note)
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if len(cart.Items) > before {
			if err := tx.Create(line).Error; err != nil {
				return err
			}
		} else if err := tx.Model(&models.CartItem{}).Where("id = ?", line.ID).Update("quantity", line.Quantity).Error; err != nil {
			return err
		}
		return tx.Model(&cart).Update("total_amount", cart.TotalAmount).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// UpdateCartItem changes the quantity of one cart line
func (h *Handler) UpdateCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	itemID := c.Param("cartItemId")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unlock := h.lockCart(userID)
	defer unlock()

	cart, ok := h.loadCartOwning(c, userID, itemID)
	if !ok {
		return
	}
	cartlogic.UpdateQuantity(cart, itemID, req.Quantity)
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", req.Quantity).Error; err != nil {
			return err
		}
		return tx.Model(cart).Update("total_amount", cart.TotalAmount).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveCartItem deletes one line; an emptied cart stays alive
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	itemID := c.Param("cartItemId")

	unlock := h.lockCart(userID)
	defer unlock()

	cart, ok := h.loadCartOwning(c, userID, itemID)
	if !ok {
		return
	}
	cartlogic.RemoveItem(cart, itemID)
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CartItem{}, "id = ?", itemID).Error; err != nil {
			return err
		}
		return tx.Model(cart).Update("total_amount", cart.TotalAmount).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// ClearCart removes the caller's cart entity entirely
func (h *Handler) ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	unlock := h.lockCart(userID)
	defer unlock()

	var cart models.Cart
	if err := h.DB.First(&cart, "user_id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CartItem{}, "cart_id = ?", cart.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// loadCartOwning fetches the caller's cart and verifies the line
// belongs to it
func (h *Handler) loadCartOwning(c *gin.Context, userID, itemID string) (*models.Cart, bool) {
	var cart models.Cart
	if err := h.DB.Preload("Items").First(&cart, "user_id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return nil, false
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			return &cart, true
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
	return nil, false
}
