package testutil

import (
	"time"

	"datelabel/internal/dateformat"
	"datelabel/internal/domain"

	"go.uber.org/zap"
)

// ReferenceNow is the fixed "now" used across tests (2020-12-01 UTC)
var ReferenceNow = time.Date(2020, 12, 1, 12, 0, 0, 0, time.UTC)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestFormatter creates a formatter pinned to ReferenceNow
func NewTestFormatter(opts ...dateformat.Option) *dateformat.Formatter {
	return dateformat.New(append([]dateformat.Option{dateformat.WithClock(dateformat.FixedClock(ReferenceNow))}, opts...)...)
}

// NewTestLookup creates a test lookup for an ISO date
func NewTestLookup(id int, userID int64, date string) domain.Lookup {
	return domain.Lookup{
		ID:        id,
		UserID:    userID,
		Date:      dateformat.Parse(date).Time(),
		CreatedAt: ReferenceNow,
	}
}
