package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-ordering/models"
)

func TestCanTransitionPayment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    models.PaymentStatus
		to      models.PaymentStatus
		allowed bool
	}{
		{"pending to paid", models.PaymentPending, models.PaymentPaid, true},
		{"pending to failed", models.PaymentPending, models.PaymentFailed, true},
		{"failed retry to paid", models.PaymentFailed, models.PaymentPaid, true},
		{"failed back to pending", models.PaymentFailed, models.PaymentPending, false},
		{"paid is terminal", models.PaymentPaid, models.PaymentPending, false},
		{"paid never fails", models.PaymentPaid, models.PaymentFailed, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CanTransitionPayment(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestValidPaymentTransitionsFrom(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t,
		[]models.PaymentStatus{models.PaymentPaid, models.PaymentFailed},
		ValidPaymentTransitionsFrom(models.PaymentPending))
	assert.ElementsMatch(t,
		[]models.PaymentStatus{models.PaymentPaid},
		ValidPaymentTransitionsFrom(models.PaymentFailed))
	assert.Empty(t, ValidPaymentTransitionsFrom(models.PaymentPaid))
}
