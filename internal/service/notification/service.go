package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrm-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/sse"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type service struct {
	repo notification.Repository
	hub  *sse.Hub
	now  func() time.Time
}

// NewNotificationService writes notifications synchronously and pushes push-channel
// rows to live subscribers once they are stored.
func NewNotificationService(repo notification.Repository, hub *sse.Hub) notification.Service {
	return &service{
		repo: repo,
		hub:  hub,
		now:  time.Now,
	}
}

// Notify implements notification.Service.
func (s *service) Notify(ctx context.Context, recipientID string, kind notification.Kind, message string, channels ...notification.Channel) ([]notification.Notification, error) {
	if !kind.IsValid() {
		return nil, notification.ErrInvalidKind
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, notification.ErrEmptyMessage
	}
	if len(channels) == 0 {
		channels = []notification.Channel{notification.ChannelPush}
	}

	createdAt := s.now().UTC()
	notifications := make([]notification.Notification, 0, len(channels))
	seen := make(map[notification.Channel]bool, len(channels))
	for _, ch := range channels {
		if !ch.IsValid() {
			return nil, notification.ErrInvalidChannel
		}
		if seen[ch] {
			continue
		}
		seen[ch] = true

		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate notification id: %w", err)
		}
		notifications = append(notifications, notification.Notification{
			ID:          id.String(),
			RecipientID: recipientID,
			Kind:        kind,
			Channel:     ch,
			Message:     message,
			Sent:        true,
			Read:        false,
			CreatedAt:   createdAt,
		})
	}

	if err := s.repo.CreateBatch(ctx, notifications); err != nil {
		return nil, fmt.Errorf("failed to store notifications: %w", err)
	}

	for _, n := range notifications {
		if n.Channel != notification.ChannelPush {
			continue
		}
		s.hub.Publish(n.RecipientID, sse.Event{
			Event: "notification",
			Data:  notification.NewNotificationResponse(n),
		})
	}

	slog.Debug("notifications stored", "recipient_id", recipientID, "kind", kind, "count", len(notifications))
	return notifications, nil
}

// List implements notification.Service.
func (s *service) List(ctx context.Context, recipientID string, unreadOnly bool, limit int) (notification.ListResponse, error) {
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	notifications, err := s.repo.GetByRecipient(ctx, recipientID, unreadOnly, limit)
	if err != nil {
		return notification.ListResponse{}, fmt.Errorf("failed to get notifications: %w", err)
	}

	unread, err := s.repo.CountUnread(ctx, recipientID)
	if err != nil {
		return notification.ListResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	resp := notification.ListResponse{
		Notifications: make([]notification.NotificationResponse, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, notification.NewNotificationResponse(n))
	}
	return resp, nil
}

// UnreadCount implements notification.Service.
func (s *service) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return s.repo.CountUnread(ctx, recipientID)
}

// MarkAsRead implements notification.Service.
func (s *service) MarkAsRead(ctx context.Context, recipientID string, id string) error {
	return s.repo.MarkAsRead(ctx, id, recipientID)
}

// MarkAllAsRead implements notification.Service.
func (s *service) MarkAllAsRead(ctx context.Context, recipientID string) (int64, error) {
	return s.repo.MarkAllAsRead(ctx, recipientID)
}

// Subscribe implements notification.Service. The subscription ends when ctx is done
// or cleanup is called, whichever happens first.
func (s *service) Subscribe(ctx context.Context, recipientID string) (<-chan sse.Event, func()) {
	ch, cleanup := s.hub.Subscribe(recipientID)
	stop := context.AfterFunc(ctx, cleanup)

	return ch, func() {
		stop()
		cleanup()
	}
}
