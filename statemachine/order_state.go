package statemachine

import (
	"errors"
	"fmt"

	"restaurant-ordering/models"
)

// ErrInvalidTransition is wrapped by every rejected state change so
// callers can single out lifecycle violations from other failures.
var ErrInvalidTransition = errors.New("invalid transition")

// Transition defines a valid fulfillment state change
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusConfirmed},
	{From: models.StatusPending, To: models.StatusCancelled},
	{From: models.StatusConfirmed, To: models.StatusPreparing},
	{From: models.StatusConfirmed, To: models.StatusCancelled},
	{From: models.StatusPreparing, To: models.StatusReady},
	{From: models.StatusReady, To: models.StatusCompleted},
	// COMPLETED and CANCELLED are terminal
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("%w: %s → %s is not allowed; valid transitions from %s are: %s",
		ErrInvalidTransition, from, to, from, describeValidFrom(from))
}

// CanCancel reports whether an order in the given state may still be
// cancelled. Only PENDING and CONFIRMED orders are cancellable.
func CanCancel(from models.OrderStatus) error {
	return CanTransition(from, models.StatusCancelled)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
