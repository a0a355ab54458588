package statemachine

import (
	"fmt"

	"restaurant-ordering/models"
)

// paymentTransitions is the money axis. It is deliberately disjoint from
// the fulfillment machine: neither side ever drives the other. A failed
// payment may be retried, PAID is never left automatically.
var paymentTransitions = map[models.PaymentStatus][]models.PaymentStatus{
	models.PaymentPending: {models.PaymentPaid, models.PaymentFailed},
	models.PaymentFailed:  {models.PaymentPaid},
	models.PaymentPaid:    {},
}

// CanTransitionPayment checks whether a payment record may move from one
// state to another
func CanTransitionPayment(from, to models.PaymentStatus) error {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: payment %s → %s is not allowed", ErrInvalidTransition, from, to)
}

// ValidPaymentTransitionsFrom returns all valid next payment states
func ValidPaymentTransitionsFrom(status models.PaymentStatus) []models.PaymentStatus {
	return append([]models.PaymentStatus(nil), paymentTransitions[status]...)
}
