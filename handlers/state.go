package handlers

import (
	"net/http"

	"restaurant-ordering/models"
	"restaurant-ordering/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo returns both lifecycle machines for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	fulfillment := []gin.H{}
	for _, t := range statemachine.GetAllTransitions() {
		fulfillment = append(fulfillment, gin.H{"from": t.From, "to": t.To})
	}

	payment := []gin.H{}
	for _, from := range []models.PaymentStatus{models.PaymentPending, models.PaymentFailed} {
		for _, to := range statemachine.ValidPaymentTransitionsFrom(from) {
			payment = append(payment, gin.H{"from": from, "to": to})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"fulfillment":     fulfillment,
		"payment":         payment,
		"terminal_states": []models.OrderStatus{models.StatusCompleted, models.StatusCancelled},
	})
}
