package notification

import (
	"time"
)

// Kind represents the type of notification
type Kind string

const (
	KindOrderCreated  Kind = "order_created"
	KindOrderStatus   Kind = "order_status"
	KindLeaveApproved Kind = "leave_approved"
	KindLeaveRejected Kind = "leave_rejected"
)

// AllKinds returns all available notification kinds
func AllKinds() []Kind {
	return []Kind{
		KindOrderCreated,
		KindOrderStatus,
		KindLeaveApproved,
		KindLeaveRejected,
	}
}

func (k Kind) IsValid() bool {
	for _, kind := range AllKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// Channel is a descriptive delivery tag; delivery itself is not performed.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
)

func (c Channel) IsValid() bool {
	return c == ChannelEmail || c == ChannelSMS || c == ChannelPush
}

// Notification is an append-only log entry. Only Read changes after creation.
type Notification struct {
	ID          string
	RecipientID string
	Kind        Kind
	Channel     Channel
	Message     string
	Sent        bool
	Read        bool
	CreatedAt   time.Time
}
