// Package expiry clears the capture session at the day boundary so stale
// records never leak into the next day's batches.
package expiry

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"maletas/internal/ports"
)

// Session is the slice of the coordinator the worker needs.
type Session interface {
	ClearAll(ctx context.Context)
}

// Boundary is the local wall-clock instant that ends the capture day.
type Boundary struct {
	Hour   int
	Minute int
	Second int
}

// DefaultBoundary matches the operational cutoff of 23:59:59.
func DefaultBoundary() Boundary { return Boundary{Hour: 23, Minute: 59, Second: 59} }

// Run polls once per second and wipes the session when the boundary instant
// is observed, or when the calendar day has rolled over since the previous
// tick (covers a poll missed across midnight). The wipe is unconditional and
// unconfirmed; a submission already in flight is unaffected, its cleanup is
// a no-op on the emptied ledger. Blocks until ctx is done.
func Run(ctx context.Context, session Session, clock ports.Clock, boundary Boundary, pollInterval time.Duration, log *logrus.Logger) {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	lastDay := clock.Now().YearDay()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := clock.Now()
			atBoundary := now.Hour() == boundary.Hour &&
				now.Minute() == boundary.Minute &&
				now.Second() == boundary.Second
			rolledOver := now.YearDay() != lastDay
			lastDay = now.YearDay()

			if !atBoundary && !rolledOver {
				continue
			}
			session.ClearAll(ctx)
			log.WithFields(logrus.Fields{
				"at": now.Format(time.RFC3339),
			}).Info("day boundary reached, session cleared")
		}
	}
}
