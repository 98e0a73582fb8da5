// Package notify delivers transient notifications to in-process subscribers.
package notify

import (
	"slices"
	"sync"
	"time"

	"github.com/fwojciec/regdoc"
	"github.com/google/uuid"
)

var _ regdoc.Notifier = (*Broker)(nil)

// DefaultTTL is how long a notification stays active.
const DefaultTTL = 5 * time.Second

type subscriber struct {
	id int
	fn func(regdoc.Notification)
}

// Broker implements regdoc.Notifier. Subscribers are called synchronously
// in the order notifications are published. Expired notifications are
// dropped lazily on the next access.
type Broker struct {
	mu     sync.Mutex
	subs   []subscriber
	nextID int
	active []regdoc.Notification

	// TTL is how long a published notification stays active.
	TTL time.Duration

	// Now returns the current time.
	Now func() time.Time
}

// NewBroker creates a new Broker with DefaultTTL.
func NewBroker() *Broker {
	return &Broker{
		TTL: DefaultTTL,
		Now: time.Now,
	}
}

// Publish records a notification and delivers it to every subscriber.
func (b *Broker) Publish(kind regdoc.NotificationKind, message string) {
	b.mu.Lock()
	now := b.Now()
	n := regdoc.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(b.TTL),
	}
	b.expire(now)
	b.active = append(b.active, n)
	subs := slices.Clone(b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(n)
	}
}

// Subscribe registers fn for future notifications and returns a function
// that removes it.
func (b *Broker) Subscribe(fn func(regdoc.Notification)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.subs = slices.DeleteFunc(b.subs, func(s subscriber) bool { return s.id == id })
	}
}

// Active returns the unexpired notifications, oldest first.
func (b *Broker) Active() []regdoc.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expire(b.Now())
	return slices.Clone(b.active)
}

// Dismiss removes a notification before it expires. Unknown ids are ignored.
func (b *Broker) Dismiss(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.active = slices.DeleteFunc(b.active, func(n regdoc.Notification) bool { return n.ID == id })
}

func (b *Broker) expire(now time.Time) {
	b.active = slices.DeleteFunc(b.active, func(n regdoc.Notification) bool {
		return !now.Before(n.ExpiresAt)
	})
}
