package mockstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"restaurant-ordering/models"
)

// Messages returns a user's inbox, newest first. Broadcasts and system
// messages are prepended on arrival so the stored order is already the
// display order.
func (s *Store) Messages(ctx context.Context, userID string) ([]models.InboxMessage, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.inbox[userID]
	out := make([]models.InboxMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, *m)
	}
	return out, nil
}

// UnreadCount returns the cached unread counter for a user
func (s *Store) UnreadCount(ctx context.Context, userID string) (int, error) {
	if err := s.simulate(ctx); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread[userID], nil
}

// MarkRead flags one message as read. Message ids are a global space, so
// the owner does not need to be named. Marking an already-read message
// again leaves the unread counter alone.
func (s *Store) MarkRead(ctx context.Context, messageID string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, msgs := range s.inbox {
		for _, m := range msgs {
			if m.ID != messageID {
				continue
			}
			if !m.IsRead {
				m.IsRead = true
				s.unread[userID]--
			}
			return nil
		}
	}
	return fmt.Errorf("message %s: %w", messageID, ErrNotFound)
}

// MarkAllRead flags every message of one user as read
func (s *Store) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}

	unlock := s.lockKey("inbox", userID)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.inbox[userID] {
		m.IsRead = true
	}
	s.unread[userID] = 0
	return nil
}

// DeleteMessage removes one message, fixing the unread counter when the
// message was still unread
func (s *Store) DeleteMessage(ctx context.Context, messageID string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, msgs := range s.inbox {
		for i, m := range msgs {
			if m.ID != messageID {
				continue
			}
			if !m.IsRead {
				s.unread[userID]--
			}
			s.inbox[userID] = append(msgs[:i], msgs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("message %s: %w", messageID, ErrNotFound)
}

// SendToEmployee delivers a message to one employee's inbox
func (s *Store) SendToEmployee(ctx context.Context, userID, title, body string, typ models.MessageType) (models.InboxMessage, error) {
	if err := s.simulate(ctx); err != nil {
		return models.InboxMessage{}, err
	}
	if err := validateBroadcast(title, body); err != nil {
		return models.InboxMessage{}, err
	}

	unlock := s.lockKey("inbox", userID)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUser(userID)
	if user == nil || user.Role != models.RoleEmployee {
		return models.InboxMessage{}, fmt.Errorf("employee %s: %w", userID, ErrNotFound)
	}
	return s.pushMessage(userID, title, body, typ), nil
}

// SendToAllEmployees delivers one authored message to every employee,
// each insertion independent and each landing at the top of that
// recipient's inbox. Returns the number of recipients.
func (s *Store) SendToAllEmployees(ctx context.Context, title, body string, typ models.MessageType) (int, error) {
	if err := s.simulate(ctx); err != nil {
		return 0, err
	}
	if err := validateBroadcast(title, body); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, u := range s.users {
		if u.Role != models.RoleEmployee {
			continue
		}
		s.pushMessage(u.ID, title, body, typ)
		count++
	}
	return count, nil
}

// pushMessage prepends a fresh message to a recipient's inbox and bumps
// the unread counter. Caller must hold s.mu.
func (s *Store) pushMessage(userID, title, body string, typ models.MessageType) models.InboxMessage {
	msg := &models.InboxMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		Type:      typ,
		CreatedAt: time.Now(),
	}
	s.inbox[userID] = append([]*models.InboxMessage{msg}, s.inbox[userID]...)
	s.unread[userID]++
	return *msg
}

func validateBroadcast(title, body string) error {
	if title == "" || body == "" {
		return fmt.Errorf("broadcast needs a title and a body: %w", ErrValidation)
	}
	return nil
}
