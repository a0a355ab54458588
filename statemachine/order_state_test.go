package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-ordering/models"
)

var allStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusCompleted,
	models.StatusCancelled,
}

func TestCanTransitionFullTable(t *testing.T) {
	t.Parallel()

	allowed := map[models.OrderStatus][]models.OrderStatus{
		models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
		models.StatusConfirmed: {models.StatusPreparing, models.StatusCancelled},
		models.StatusPreparing: {models.StatusReady},
		models.StatusReady:     {models.StatusCompleted},
		models.StatusCompleted: {},
		models.StatusCancelled: {},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			ok := false
			for _, next := range allowed[from] {
				if next == to {
					ok = true
				}
			}
			err := CanTransition(from, to)
			if ok {
				assert.NoError(t, err, "%s -> %s should be allowed", from, to)
			} else {
				require.Error(t, err, "%s -> %s should be rejected", from, to)
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		}
	}
}

func TestNoSkippingStates(t *testing.T) {
	t.Parallel()

	assert.Error(t, CanTransition(models.StatusPending, models.StatusPreparing))
	assert.Error(t, CanTransition(models.StatusPending, models.StatusCompleted))
	assert.Error(t, CanTransition(models.StatusConfirmed, models.StatusReady))
}

func TestNoBackwardTransitions(t *testing.T) {
	t.Parallel()

	assert.Error(t, CanTransition(models.StatusConfirmed, models.StatusPending))
	assert.Error(t, CanTransition(models.StatusReady, models.StatusPreparing))
	assert.Error(t, CanTransition(models.StatusCancelled, models.StatusPending))
}

func TestCanCancel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from       models.OrderStatus
		cancelable bool
	}{
		{models.StatusPending, true},
		{models.StatusConfirmed, true},
		{models.StatusPreparing, false},
		{models.StatusReady, false},
		{models.StatusCompleted, false},
		{models.StatusCancelled, false},
	}
	for _, tt := range tests {
		err := CanCancel(tt.from)
		if tt.cancelable {
			assert.NoError(t, err, "cancel from %s", tt.from)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition, "cancel from %s", tt.from)
		}
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusConfirmed, models.StatusCancelled},
		ValidTransitionsFrom(models.StatusPending))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCompleted))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}

func TestTransitionErrorNamesValidNextStates(t *testing.T) {
	t.Parallel()

	err := CanTransition(models.StatusPending, models.StatusReady)
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(models.StatusConfirmed))

	err = CanTransition(models.StatusCompleted, models.StatusPending)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestGetAllTransitions(t *testing.T) {
	t.Parallel()

	all := GetAllTransitions()
	assert.Len(t, all, 6)
	for _, tr := range all {
		assert.NoError(t, CanTransition(tr.From, tr.To))
	}
}
