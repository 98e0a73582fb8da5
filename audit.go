package regdoc

import (
	"context"
	"math"
	"strings"
	"time"
)

// Conventional audit actions.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionLogin  = "LOGIN"
	ActionLogout = "LOGOUT"
)

// Audited resource types.
const (
	ResourceDocument = "Document"
	ResourceFAQ      = "FAQ"
	ResourceSession  = "Session"
)

// AuditEntry is an immutable record of an administrative action.
// UserID and UserName are a snapshot of the actor at the time of the action.
type AuditEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *AuditEntry) Validate() error {
	if e.UserID == "" {
		return Errorf(EINVALID, "audit entry user ID required")
	}
	if e.Action == "" {
		return Errorf(EINVALID, "audit entry action required")
	}
	return nil
}

// AuditService represents the append-only audit log.
type AuditService interface {
	// RecordEntry assigns an ID and timestamp and appends the entry.
	RecordEntry(ctx context.Context, entry *AuditEntry) error

	// FindEntries retrieves entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter AuditFilter) ([]*AuditEntry, error)

	// FindUserNames returns the distinct user names present in the log,
	// ordered by their most recent appearance.
	FindUserNames(ctx context.Context) ([]string, error)
}

// DateRange is a relative time bucket for filtering audit entries.
type DateRange string

// DateRange constants.
const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
)

// Valid reports whether r is a known date range. The empty range is valid
// and behaves like RangeAll.
func (r DateRange) Valid() bool {
	switch r {
	case "", RangeAll, RangeToday, RangeWeek, RangeMonth:
		return true
	}
	return false
}

// Contains reports whether ts falls in the range relative to now.
// Ages are counted in whole elapsed days, so the boundary day is included.
func (r DateRange) Contains(ts, now time.Time) bool {
	days := int(math.Floor(now.Sub(ts).Hours() / 24))
	switch r {
	case RangeToday:
		return days == 0
	case RangeWeek:
		return days <= 7
	case RangeMonth:
		return days <= 30
	default:
		return true
	}
}

// AuditFilter represents a filter for FindEntries. All set filters must match.
type AuditFilter struct {
	Text     string    `json:"text"`
	Action   *string   `json:"action"`
	UserName *string   `json:"userName"`
	Range    DateRange `json:"range"`

	// Now anchors Range. The zero value means the current time.
	Now time.Time `json:"-"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Match reports whether entry satisfies the filter.
func (f AuditFilter) Match(entry *AuditEntry) bool {
	if f.Text != "" {
		q := strings.ToLower(f.Text)
		if !containsFold(entry.Action, q) &&
			!containsFold(entry.Resource, q) &&
			!containsFold(entry.Details, q) &&
			!containsFold(entry.UserName, q) {
			return false
		}
	}
	if f.Action != nil && *f.Action != FacetAll && entry.Action != *f.Action {
		return false
	}
	if f.UserName != nil && *f.UserName != FacetAll && entry.UserName != *f.UserName {
		return false
	}
	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}
	return f.Range.Contains(entry.Timestamp, now)
}
