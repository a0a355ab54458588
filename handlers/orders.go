package handlers

import (
	"errors"
	"net/http"

	"restaurant-ordering/cartlogic"
	"restaurant-ordering/middleware"
	"restaurant-ordering/models"
	"restaurant-ordering/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	RestaurantID string              `json:"restaurant_id" binding:"required"`
	Items        []models.CartItem   `json:"items" binding:"required,min=1"`
	TotalAmount  float64             `json:"total_amount" binding:"required,gt=0"`
	DeliveryType models.DeliveryType `json:"delivery_type" binding:"required"`
	Note         string              `json:"note"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus models.PaymentStatus `json:"payment_status" binding:"required"`
}

// PlaceOrder creates a new order. Status and payment status always
// start PENDING no matter what was submitted. The total is accepted
// from the client's checkout computation.
func (h *Handler) PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DeliveryType != models.DeliveryPickup && req.DeliveryType != models.DeliveryDineIn {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery type must be pickup or dine_in"})
		return
	}

	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, "id = ?", req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if !restaurant.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant is currently closed"})
		return
	}

	order := models.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		RestaurantID:  req.RestaurantID,
		TotalAmount:   req.TotalAmount,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,
		DeliveryType:  req.DeliveryType,
		Note:          req.Note,
	}
	order.Items = cartlogic.SnapshotItems(order.ID, req.Items)

	if err := h.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	h.notify(userID, "Order placed", "Your order has been received.", models.MessageSuccess)
	c.JSON(http.StatusCreated, order)
}

// GetOngoingOrders returns the caller's not-yet-terminal orders
func (h *Handler) GetOngoingOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Order
	h.DB.Preload("Items").
		Where("user_id = ? AND status NOT IN ?", userID,
			[]models.OrderStatus{models.StatusCompleted, models.StatusCancelled}).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, orders)
}

// GetOrderHistory returns the caller's completed and cancelled orders
func (h *Handler) GetOrderHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Order
	h.DB.Preload("Items").
		Where("user_id = ? AND status IN ?", userID,
			[]models.OrderStatus{models.StatusCompleted, models.StatusCancelled}).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns a single order
func (h *Handler) GetOrder(c *gin.Context) {
	var order models.Order
	if err := h.DB.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != middleware.GetUserID(c) && middleware.GetRole(c) == models.RoleCustomer {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// CancelOrder cancels an order still in a cancellable state. The
// payment record stays exactly as it was.
func (h *Handler) CancelOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var order models.Order
	if err := h.DB.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != userID && middleware.GetRole(c) == models.RoleCustomer {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	if err := statemachine.CanCancel(order.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Order is not cancellable in its current state",
			"reason":        err.Error(),
			"current_state": order.Status,
		})
		return
	}

	h.DB.Model(&order).Update("status", models.StatusCancelled)
	order.Status = models.StatusCancelled
	h.notify(order.UserID, "Order cancelled", "Your order has been cancelled.", models.MessageWarning)
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus advances the fulfillment state machine
// (employee/admin)
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := h.DB.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	h.DB.Model(&order).Update("status", req.Status)
	order.Status = req.Status
	h.notify(order.UserID, "Order update", "Your order is now "+string(req.Status)+".", models.MessageInfo)
	c.JSON(http.StatusOK, order)
}

// UpdatePaymentStatus moves the payment axis; the fulfillment status is
// never touched here (employee/admin)
func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	var order models.Order
	if err := h.DB.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransitionPayment(order.PaymentStatus, req.PaymentStatus); err != nil {
		if errors.Is(err, statemachine.ErrInvalidTransition) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":          "Invalid payment transition",
				"current_status": order.PaymentStatus,
				"requested":      req.PaymentStatus,
				"reason":         err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.DB.Model(&order).Update("payment_status", req.PaymentStatus)
	order.PaymentStatus = req.PaymentStatus
	c.JSON(http.StatusOK, order)
}

// AdminGetAllOrders returns every order, newest first (admin)
func (h *Handler) AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := h.DB.Preload("Items")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)
	c.JSON(http.StatusOK, orders)
}
