package regdoc

import "context"

// Keys under which collections are persisted.
const (
	KeyDocuments = "documents"
	KeyFAQs      = "faqs"
	KeyAuditLog  = "auditLog"
	KeyUser      = "user"
	KeyUsers     = "users"
)

// Store is a durable key/value store holding serialized snapshots.
// Writes are synchronous: a Put that returns nil survives a restart.
type Store interface {
	// Get returns the value stored under key.
	// Returns ENOTFOUND if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
