package routes

import (
	"restaurant-ordering/handlers"
	"restaurant-ordering/middleware"
	"restaurant-ordering/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, jwtSecret []byte) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		// Restaurants & menus (no auth needed)
		public.GET("/restaurant", h.ListRestaurants)
		public.GET("/restaurant/:id", h.GetRestaurant)
		public.GET("/restaurant/:id/menu", h.GetMenu)
		public.GET("/restaurant/:id/menu/:itemId", h.GetMenuItem)

		// Rating reads
		public.GET("/rating/:restaurantId", h.GetRestaurantRatings)
		public.GET("/dish-rating/:dishId/average", h.GetDishAverage)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(jwtSecret))
	{
		auth.GET("/profile", h.GetProfile)
		auth.POST("/auth/logout", h.Logout)

		// Cart
		auth.GET("/cart/:userId", h.GetCart)
		auth.POST("/cart", h.AddToCart)
		auth.PUT("/cart/:cartItemId", h.UpdateCartItem)
		auth.DELETE("/cart/:cartItemId", h.RemoveCartItem)
		auth.DELETE("/cart", h.ClearCart)

		// Orders
		auth.POST("/order", h.PlaceOrder)
		auth.GET("/order/ongoing", h.GetOngoingOrders)
		auth.GET("/order/history", h.GetOrderHistory)
		auth.GET("/order/:id", h.GetOrder)
		auth.DELETE("/order/:id", h.CancelOrder)

		// Ratings
		auth.POST("/rating", h.CreateRestaurantRating)
		auth.PUT("/rating/:id", h.UpdateRestaurantRating)
		auth.DELETE("/rating/:id", h.DeleteRestaurantRating)
		auth.POST("/dish-rating", h.CreateDishRating)
		auth.PUT("/dish-rating/:id", h.UpdateDishRating)
		auth.DELETE("/dish-rating/:id", h.DeleteDishRating)

		// Inbox
		auth.GET("/inbox/:userId", h.GetMessages)
		auth.GET("/inbox/:userId/unread-count", h.GetUnreadCount)
		auth.PUT("/inbox/:id/read", h.MarkMessageRead)
		auth.PUT("/inbox/:id/read-all", h.MarkAllMessagesRead)
		auth.DELETE("/inbox/:id", h.DeleteMessage)
	}

	// ── Staff routes ───────────────────────────────────────────────
	staff := r.Group("/api")
	staff.Use(middleware.AuthRequired(jwtSecret),
		middleware.RoleRequired(models.RoleEmployee, models.RoleAdmin))
	{
		staff.PUT("/order/:id/status", h.UpdateOrderStatus)
		staff.PUT("/order/:id/payment", h.UpdatePaymentStatus)

		// Menu management
		staff.POST("/restaurant/:id/menu", h.AddMenuItem)
		staff.PUT("/restaurant/:id/menu/:itemId", h.UpdateMenuItem)
		staff.DELETE("/restaurant/:id/menu/:itemId", h.DeleteMenuItem)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/order/admin/all", h.AdminGetAllOrders)

		admin.POST("/restaurant", h.CreateRestaurant)
		admin.PUT("/restaurant/:id", h.UpdateRestaurant)
		admin.DELETE("/restaurant/:id", h.DeleteRestaurant)

		admin.POST("/inbox/send-to-employee/:id", h.SendToEmployee)
		admin.POST("/inbox/send-to-all-employees", h.SendToAllEmployees)
	}
}
