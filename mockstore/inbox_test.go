package mockstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-ordering/models"
)

func TestSendToEmployee(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	msg, err := s.SendToEmployee(ctx, "user-emp-1", "Shift change", "Evening shift starts at 16:00.", models.MessageInfo)
	require.NoError(t, err)
	assert.Equal(t, "user-emp-1", msg.UserID)
	assert.False(t, msg.IsRead)

	// Customers and unknown ids are not valid recipients.
	_, err = s.SendToEmployee(ctx, "user-demo", "t", "b", models.MessageInfo)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.SendToEmployee(ctx, "nobody", "t", "b", models.MessageInfo)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.SendToEmployee(ctx, "user-emp-1", "", "body", models.MessageInfo)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBroadcastReachesEveryEmployee(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	n, err := s.SendToAllEmployees(ctx, "Maintenance", "Till reboots at close.", models.MessageWarning)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{"user-emp-1", "user-emp-2"} {
		msgs, err := s.Messages(ctx, id)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "Maintenance", msgs[0].Title)

		count, err := s.UnreadCount(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	}

	// Each insertion is independent: ids differ per recipient.
	a, _ := s.Messages(ctx, "user-emp-1")
	b, _ := s.Messages(ctx, "user-emp-2")
	assert.NotEqual(t, a[0].ID, b[0].ID)

	// Customers and admins receive nothing.
	none, err := s.Messages(ctx, "user-demo")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMessagesNewestFirst(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	older, err := s.SendToEmployee(ctx, "user-emp-1", "First", "b", models.MessageInfo)
	require.NoError(t, err)
	newer, err := s.SendToEmployee(ctx, "user-emp-1", "Second", "b", models.MessageInfo)
	require.NoError(t, err)

	msgs, err := s.Messages(ctx, "user-emp-1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, newer.ID, msgs[0].ID)
	assert.Equal(t, older.ID, msgs[1].ID)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	msg, err := s.SendToEmployee(ctx, "user-emp-1", "Hello", "b", models.MessageInfo)
	require.NoError(t, err)

	require.NoError(t, s.MarkRead(ctx, msg.ID))
	require.NoError(t, s.MarkRead(ctx, msg.ID))

	count, err := s.UnreadCount(ctx, "user-emp-1")
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, s.MarkRead(ctx, "missing"), ErrNotFound)
}

func TestMarkAllRead(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.SendToEmployee(ctx, "user-emp-1", "Msg", "b", models.MessageInfo)
		require.NoError(t, err)
	}

	require.NoError(t, s.MarkAllRead(ctx, "user-emp-1"))

	count, err := s.UnreadCount(ctx, "user-emp-1")
	require.NoError(t, err)
	assert.Zero(t, count)

	msgs, err := s.Messages(ctx, "user-emp-1")
	require.NoError(t, err)
	for _, m := range msgs {
		assert.True(t, m.IsRead)
	}
}

func TestDeleteMessageFixesUnreadCounter(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	unread, err := s.SendToEmployee(ctx, "user-emp-1", "A", "b", models.MessageInfo)
	require.NoError(t, err)
	read, err := s.SendToEmployee(ctx, "user-emp-1", "B", "b", models.MessageInfo)
	require.NoError(t, err)
	require.NoError(t, s.MarkRead(ctx, read.ID))

	require.NoError(t, s.DeleteMessage(ctx, unread.ID))
	count, err := s.UnreadCount(ctx, "user-emp-1")
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, s.DeleteMessage(ctx, read.ID))
	msgs, err := s.Messages(ctx, "user-emp-1")
	require.NoError(t, err)
	assert.Empty(t, msgs)

	assert.ErrorIs(t, s.DeleteMessage(ctx, read.ID), ErrNotFound)
}
