package regdoc

import "time"

// NotificationKind classifies transient user feedback.
type NotificationKind string

// NotificationKind constants.
const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
	NotifyWarning NotificationKind = "warning"
)

// Notification is a transient message shown to the user until it expires.
type Notification struct {
	ID        string
	Kind      NotificationKind
	Message   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Notifier publishes transient notifications. Notifications are never
// persisted and nothing in the data model depends on them.
type Notifier interface {
	Publish(kind NotificationKind, message string)
}
