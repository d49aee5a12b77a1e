package notification

import "errors"

// Notification domain errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidKind          = errors.New("invalid notification kind")
	ErrInvalidChannel       = errors.New("invalid notification channel")
	ErrEmptyMessage         = errors.New("notification message is empty")
)
