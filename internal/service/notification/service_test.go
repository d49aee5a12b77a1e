package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	rows      []notification.Notification
	createErr error
}

func (m *memoryRepository) CreateBatch(ctx context.Context, notifications []notification.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.rows = append(m.rows, notifications...)
	return nil
}

func (m *memoryRepository) GetByRecipient(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]notification.Notification, error) {
	var out []notification.Notification
	for i := len(m.rows) - 1; i >= 0 && len(out) < limit; i-- {
		n := m.rows[i]
		if n.RecipientID != recipientID || (unreadOnly && n.Read) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (m *memoryRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	count := 0
	for _, n := range m.rows {
		if n.RecipientID == recipientID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (m *memoryRepository) MarkAsRead(ctx context.Context, id string, recipientID string) error {
	for i := range m.rows {
		if m.rows[i].ID == id && m.rows[i].RecipientID == recipientID {
			m.rows[i].Read = true
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func (m *memoryRepository) MarkAllAsRead(ctx context.Context, recipientID string) (int64, error) {
	var n int64
	for i := range m.rows {
		if m.rows[i].RecipientID == recipientID && !m.rows[i].Read {
			m.rows[i].Read = true
			n++
		}
	}
	return n, nil
}

func TestNotify_DefaultsToPushAndPublishes(t *testing.T) {
	repo := &memoryRepository{}
	hub := sse.NewHub()
	svc := NewNotificationService(repo, hub)

	events, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	created, err := svc.Notify(context.Background(), "emp-1", notification.KindLeaveApproved, "Your request #1 (vacation) has been approved")
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, notification.ChannelPush, created[0].Channel)
	assert.True(t, created[0].Sent)
	assert.False(t, created[0].Read)
	assert.NotEmpty(t, created[0].ID)

	select {
	case ev := <-events:
		assert.Equal(t, "notification", ev.Event)
		resp, ok := ev.Data.(notification.NotificationResponse)
		require.True(t, ok)
		assert.Equal(t, created[0].ID, resp.ID)
	case <-time.After(time.Second):
		t.Fatal("expected a published event")
	}
}

func TestNotify_OneRowPerChannel(t *testing.T) {
	repo := &memoryRepository{}
	hub := sse.NewHub()
	svc := NewNotificationService(repo, hub)

	events, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	created, err := svc.Notify(context.Background(), "emp-1", notification.KindOrderCreated, "Order placed",
		notification.ChannelEmail, notification.ChannelSMS, notification.ChannelEmail)
	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Len(t, repo.rows, 2)
	assert.Empty(t, events, "only push rows reach live subscribers")
}

func TestNotify_Validation(t *testing.T) {
	repo := &memoryRepository{}
	svc := NewNotificationService(repo, sse.NewHub())
	ctx := context.Background()

	_, err := svc.Notify(ctx, "emp-1", notification.Kind("promotion"), "hello")
	assert.ErrorIs(t, err, notification.ErrInvalidKind)

	_, err = svc.Notify(ctx, "emp-1", notification.KindOrderStatus, "   ")
	assert.ErrorIs(t, err, notification.ErrEmptyMessage)

	_, err = svc.Notify(ctx, "emp-1", notification.KindOrderStatus, "shipped", notification.Channel("pager"))
	assert.ErrorIs(t, err, notification.ErrInvalidChannel)

	assert.Empty(t, repo.rows)
}

func TestNotify_StoreFailureSkipsPublish(t *testing.T) {
	repo := &memoryRepository{createErr: errors.New("connection reset")}
	hub := sse.NewHub()
	svc := NewNotificationService(repo, hub)

	events, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	_, err := svc.Notify(context.Background(), "emp-1", notification.KindLeaveRejected, "rejected")
	require.Error(t, err)
	assert.Empty(t, events)
}

func TestListAndMarkRead(t *testing.T) {
	repo := &memoryRepository{}
	svc := NewNotificationService(repo, sse.NewHub())
	ctx := context.Background()

	first, err := svc.Notify(ctx, "emp-1", notification.KindLeaveApproved, "first")
	require.NoError(t, err)
	_, err = svc.Notify(ctx, "emp-1", notification.KindLeaveRejected, "second")
	require.NoError(t, err)
	_, err = svc.Notify(ctx, "emp-2", notification.KindLeaveRejected, "other")
	require.NoError(t, err)

	list, err := svc.List(ctx, "emp-1", false, 0)
	require.NoError(t, err)
	assert.Len(t, list.Notifications, 2)
	assert.Equal(t, 2, list.UnreadCount)
	assert.Equal(t, "second", list.Notifications[0].Message)

	require.NoError(t, svc.MarkAsRead(ctx, "emp-1", first[0].ID))
	assert.ErrorIs(t, svc.MarkAsRead(ctx, "emp-2", first[0].ID), notification.ErrNotificationNotFound)

	count, err := svc.UnreadCount(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	marked, err := svc.MarkAllAsRead(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), marked)

	unread, err := svc.List(ctx, "emp-1", true, 10)
	require.NoError(t, err)
	assert.Empty(t, unread.Notifications)
}

func TestSubscribe_EndsWithContext(t *testing.T) {
	hub := sse.NewHub()
	svc := NewNotificationService(&memoryRepository{}, hub)

	ctx, cancel := context.WithCancel(context.Background())
	events, cleanup := svc.Subscribe(ctx, "emp-1")
	defer cleanup()
	assert.Equal(t, 1, hub.SubscriberCount("emp-1"))

	cancel()
	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription was not closed")
	}
	assert.Equal(t, 0, hub.SubscriberCount("emp-1"))
}
