package notification

import (
	"context"

	"github.com/cmlabs-hris/hrm-backend-go/internal/pkg/sse"
)

// Service defines the notification service interface
type Service interface {
	// Notify appends one entry per channel (push when none given), marked sent and unread.
	Notify(ctx context.Context, recipientID string, kind Kind, message string, channels ...Channel) ([]Notification, error)

	List(ctx context.Context, recipientID string, unreadOnly bool, limit int) (ListResponse, error)
	UnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkAsRead(ctx context.Context, recipientID string, id string) error
	MarkAllAsRead(ctx context.Context, recipientID string) (int64, error)

	// SSE subscription
	Subscribe(ctx context.Context, recipientID string) (<-chan sse.Event, func())
}
