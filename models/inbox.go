package models

import "time"

// MessageType drives how the UI styles a message
type MessageType string

const (
	MessageInfo    MessageType = "info"
	MessageSuccess MessageType = "success"
	MessageWarning MessageType = "warning"
	MessageError   MessageType = "error"
)

// InboxMessage content is immutable after creation; only the read flag
// changes, via mark-read.
type InboxMessage struct {
	ID        string      `json:"id" gorm:"primaryKey"`
	UserID    string      `json:"user_id" gorm:"not null;index"`
	Title     string      `json:"title" gorm:"not null"`
	Body      string      `json:"body" gorm:"not null"`
	Type      MessageType `json:"type" gorm:"not null;default:'info'"`
	IsRead    bool        `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time   `json:"created_at"`
}
