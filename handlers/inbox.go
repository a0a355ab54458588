package handlers

import (
	"net/http"

	"restaurant-ordering/middleware"
	"restaurant-ordering/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BroadcastRequest struct {
	Title string             `json:"title" binding:"required"`
	Body  string             `json:"body" binding:"required"`
	Type  models.MessageType `json:"type"`
}

// GetMessages returns a user's inbox, newest first
func (h *Handler) GetMessages(c *gin.Context) {
	userID := c.Param("userId")
	if userID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "This inbox does not belong to you"})
		return
	}
	var messages []models.InboxMessage
	h.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&messages)
	c.JSON(http.StatusOK, messages)
}

// GetUnreadCount returns the number of unread messages for a user
func (h *Handler) GetUnreadCount(c *gin.Context) {
	userID := c.Param("userId")
	if userID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "This inbox does not belong to you"})
		return
	}
	var count int64
	h.DB.Model(&models.InboxMessage{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count)
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkMessageRead flags one message as read. Message ids are a global
// space; marking an already-read message again is a no-op.
func (h *Handler) MarkMessageRead(c *gin.Context) {
	var message models.InboxMessage
	if err := h.DB.First(&message, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if !message.IsRead {
		h.DB.Model(&message).Update("is_read", true)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

// MarkAllMessagesRead flags every message of one user as read
func (h *Handler) MarkAllMessagesRead(c *gin.Context) {
	userID := c.Param("id")
	if userID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "This inbox does not belong to you"})
		return
	}
	h.DB.Model(&models.InboxMessage{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	c.JSON(http.StatusOK, gin.H{"message": "All messages marked as read"})
}

// DeleteMessage removes one message
func (h *Handler) DeleteMessage(c *gin.Context) {
	var message models.InboxMessage
	if err := h.DB.First(&message, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	h.DB.Delete(&message)
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}

// SendToEmployee delivers an authored message to one employee (admin)
func (h *Handler) SendToEmployee(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var employee models.User
	err := h.DB.First(&employee, "id = ? AND role = ?", c.Param("id"), models.RoleEmployee).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	message := h.notify(employee.ID, req.Title, req.Body, messageType(req.Type))
	c.JSON(http.StatusCreated, message)
}

// SendToAllEmployees delivers one authored message to every employee,
// one independent insertion per recipient (admin)
func (h *Handler) SendToAllEmployees(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var employees []models.User
	h.DB.Where("role = ?", models.RoleEmployee).Find(&employees)

	for _, e := range employees {
		h.notify(e.ID, req.Title, req.Body, messageType(req.Type))
	}
	c.JSON(http.StatusCreated, gin.H{"recipients": len(employees)})
}

// notify inserts a system or broadcast message into a user's inbox
func (h *Handler) notify(userID, title, body string, typ models.MessageType) models.InboxMessage {
	message := models.InboxMessage{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  title,
		Body:   body,
		Type:   typ,
	}
	h.DB.Create(&message)
	return message
}

func messageType(t models.MessageType) models.MessageType {
	if t == "" {
		return models.MessageInfo
	}
	return t
}
