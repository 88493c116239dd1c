package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain.
// Ledger refresh gating and the new-member grace window both depend on it,
// so tests can pin the clock.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
