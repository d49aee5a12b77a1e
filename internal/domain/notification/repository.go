package notification

import (
	"context"
)

// Repository defines the notification repository interface
type Repository interface {
	CreateBatch(ctx context.Context, notifications []Notification) error
	GetByRecipient(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)

	// MarkAsRead flips read for a notification owned by recipientID.
	MarkAsRead(ctx context.Context, id string, recipientID string) error
	MarkAllAsRead(ctx context.Context, recipientID string) (int64, error)
}
