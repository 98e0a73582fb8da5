package mock

import "github.com/fwojciec/regdoc"

var _ regdoc.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of regdoc.Notifier.
type Notifier struct {
	PublishFn func(kind regdoc.NotificationKind, message string)
}

func (n *Notifier) Publish(kind regdoc.NotificationKind, message string) {
	n.PublishFn(kind, message)
}
