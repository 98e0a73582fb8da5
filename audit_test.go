package regdoc_test

import (
	"testing"
	"time"

	"github.com/fwojciec/regdoc"
	"github.com/stretchr/testify/assert"
)

func TestDateRange_Contains(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		r     regdoc.DateRange
		age   time.Duration
		match bool
	}{
		{"all matches old entries", regdoc.RangeAll, 400 * 24 * time.Hour, true},
		{"empty range matches everything", "", 400 * 24 * time.Hour, true},
		{"today matches an hour ago", regdoc.RangeToday, time.Hour, true},
		{"today excludes a day ago", regdoc.RangeToday, 25 * time.Hour, false},
		{"week includes the seventh day", regdoc.RangeWeek, 7*24*time.Hour + time.Hour, true},
		{"week excludes the eighth day", regdoc.RangeWeek, 8 * 24 * time.Hour, false},
		{"month includes the thirtieth day", regdoc.RangeMonth, 30*24*time.Hour + time.Hour, true},
		{"month excludes the thirty-first day", regdoc.RangeMonth, 31 * 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.match, tt.r.Contains(now.Add(-tt.age), now))
		})
	}
}

func TestAuditFilter_Match(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	entry := &regdoc.AuditEntry{
		UserID:    "1",
		UserName:  "System Administrator",
		Action:    regdoc.ActionCreate,
		Resource:  regdoc.ResourceDocument,
		Timestamp: now.Add(-2 * time.Hour),
		Details:   "Created document: Banking Act",
	}

	t.Run("text matches any field", func(t *testing.T) {
		t.Parallel()

		for _, q := range []string{"create", "document", "banking", "administrator"} {
			assert.True(t, regdoc.AuditFilter{Text: q, Now: now}.Match(entry), q)
		}
		assert.False(t, regdoc.AuditFilter{Text: "insurance", Now: now}.Match(entry))
	})

	t.Run("action and user are exact", func(t *testing.T) {
		t.Parallel()

		assert.True(t, regdoc.AuditFilter{Action: ptr("CREATE"), Now: now}.Match(entry))
		assert.False(t, regdoc.AuditFilter{Action: ptr("create"), Now: now}.Match(entry))
		assert.True(t, regdoc.AuditFilter{Action: ptr("all"), Now: now}.Match(entry))
		assert.False(t, regdoc.AuditFilter{UserName: ptr("System"), Now: now}.Match(entry))
		assert.True(t, regdoc.AuditFilter{UserName: ptr("System Administrator"), Now: now}.Match(entry))
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		t.Parallel()

		f := regdoc.AuditFilter{Text: "banking", Action: ptr("DELETE"), Now: now}

		assert.False(t, f.Match(entry))
	})

	t.Run("range uses the anchor time", func(t *testing.T) {
		t.Parallel()

		assert.True(t, regdoc.AuditFilter{Range: regdoc.RangeToday, Now: now}.Match(entry))
		later := now.Add(10 * 24 * time.Hour)
		assert.False(t, regdoc.AuditFilter{Range: regdoc.RangeWeek, Now: later}.Match(entry))
	})
}

func TestAuditEntry_Validate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, regdoc.EINVALID, regdoc.ErrorCode((&regdoc.AuditEntry{Action: "CREATE"}).Validate()))
	assert.NoError(t, (&regdoc.AuditEntry{UserID: "1", Action: "CREATE"}).Validate())
}
