package services

import (
	"context"
	"fmt"
	"strings"

	"restaurant-ordering/gateway"
	"restaurant-ordering/mockstore"
	"restaurant-ordering/models"
	"restaurant-ordering/resilience"
)

type Inbox struct {
	gw     *gateway.Client
	store  *mockstore.Store
	policy *resilience.Policy
}

// BroadcastRequest is an authored message for one or all employees
type BroadcastRequest struct {
	Title string             `json:"title"`
	Body  string             `json:"body"`
	Type  models.MessageType `json:"type"`
}

// Messages returns the user's inbox, newest first
func (s *Inbox) Messages(ctx context.Context, userID string) ([]models.InboxMessage, error) {
	return resilience.WithFallback(ctx, s.policy, "inbox.messages",
		func(ctx context.Context) ([]models.InboxMessage, error) {
			var out []models.InboxMessage
			return out, s.gw.Get(ctx, "/inbox/"+userID, &out)
		},
		func(ctx context.Context) ([]models.InboxMessage, error) {
			return s.store.Messages(ctx, userID)
		})
}

// UnreadCount returns the user's unread counter
func (s *Inbox) UnreadCount(ctx context.Context, userID string) (int, error) {
	return resilience.WithFallback(ctx, s.policy, "inbox.unread_count",
		func(ctx context.Context) (int, error) {
			var out struct {
				Count int `json:"count"`
			}
			return out.Count, s.gw.Get(ctx, "/inbox/"+userID+"/unread-count", &out)
		},
		func(ctx context.Context) (int, error) {
			return s.store.UnreadCount(ctx, userID)
		})
}

// MarkRead flags one message as read (idempotent)
func (s *Inbox) MarkRead(ctx context.Context, messageID string) error {
	return resilience.WithFallbackErr(ctx, s.policy, "inbox.mark_read",
		func(ctx context.Context) error {
			return s.gw.Put(ctx, "/inbox/"+messageID+"/read", nil, nil)
		},
		func(ctx context.Context) error {
			return s.store.MarkRead(ctx, messageID)
		})
}

// MarkAllRead flags every message of one user as read
func (s *Inbox) MarkAllRead(ctx context.Context, userID string) error {
	return resilience.WithFallbackErr(ctx, s.policy, "inbox.mark_all_read",
		func(ctx context.Context) error {
			return s.gw.Put(ctx, "/inbox/"+userID+"/read-all", nil, nil)
		},
		func(ctx context.Context) error {
			return s.store.MarkAllRead(ctx, userID)
		})
}

// Delete removes one message
func (s *Inbox) Delete(ctx context.Context, messageID string) error {
	return resilience.WithFallbackErr(ctx, s.policy, "inbox.delete",
		func(ctx context.Context) error {
			return s.gw.Delete(ctx, "/inbox/"+messageID, nil)
		},
		func(ctx context.Context) error {
			return s.store.DeleteMessage(ctx, messageID)
		})
}

// SendToEmployee delivers an authored message to one employee
func (s *Inbox) SendToEmployee(ctx context.Context, employeeID string, req BroadcastRequest) (models.InboxMessage, error) {
	if err := validateBroadcast(&req); err != nil {
		return models.InboxMessage{}, err
	}
	return resilience.WithFallback(ctx, s.policy, "inbox.send_to_employee",
		func(ctx context.Context) (models.InboxMessage, error) {
			var out models.InboxMessage
			return out, s.gw.Post(ctx, "/inbox/send-to-employee/"+employeeID, req, &out)
		},
		func(ctx context.Context) (models.InboxMessage, error) {
			return s.store.SendToEmployee(ctx, employeeID, req.Title, req.Body, req.Type)
		})
}

// SendToAllEmployees delivers one authored message to every employee;
// returns the number of recipients
func (s *Inbox) SendToAllEmployees(ctx context.Context, req BroadcastRequest) (int, error) {
	if err := validateBroadcast(&req); err != nil {
		return 0, err
	}
	return resilience.WithFallback(ctx, s.policy, "inbox.send_to_all",
		func(ctx context.Context) (int, error) {
			var out struct {
				Recipients int `json:"recipients"`
			}
			return out.Recipients, s.gw.Post(ctx, "/inbox/send-to-all-employees", req, &out)
		},
		func(ctx context.Context) (int, error) {
			return s.store.SendToAllEmployees(ctx, req.Title, req.Body, req.Type)
		})
}

func validateBroadcast(req *BroadcastRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Body = strings.TrimSpace(req.Body)
	if req.Title == "" || req.Body == "" {
		return fmt.Errorf("broadcast needs a title and a body: %w", ErrValidation)
	}
	if req.Type == "" {
		req.Type = models.MessageInfo
	}
	return nil
}
