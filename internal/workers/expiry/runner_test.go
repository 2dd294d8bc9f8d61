package expiry

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type lockedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *lockedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *lockedClock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type fakeSession struct {
	cleared chan struct{}
	once    sync.Once
}

func (f *fakeSession) ClearAll(context.Context) {
	f.once.Do(func() { close(f.cleared) })
}

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunClearsAtBoundaryInstant(t *testing.T) {
	clock := &lockedClock{now: time.Date(2026, time.March, 10, 23, 59, 59, 0, time.UTC)}
	session := &fakeSession{cleared: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go Run(ctx, session, clock, DefaultBoundary(), time.Millisecond, quietLog())

	select {
	case <-session.cleared:
	case <-time.After(time.Second):
		t.Fatal("session was not cleared at the boundary instant")
	}
}

func TestRunClearsOnMissedRollover(t *testing.T) {
	// Start just before midnight at a non-boundary second, then jump the
	// clock past midnight so no tick ever observes 23:59:59.
	clock := &lockedClock{now: time.Date(2026, time.March, 10, 23, 58, 0, 0, time.UTC)}
	session := &fakeSession{cleared: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go Run(ctx, session, clock, DefaultBoundary(), time.Millisecond, quietLog())

	clock.set(time.Date(2026, time.March, 11, 0, 0, 5, 0, time.UTC))

	select {
	case <-session.cleared:
	case <-time.After(time.Second):
		t.Fatal("session was not cleared after the day rolled over")
	}
}

func TestRunStopsWithContext(t *testing.T) {
	clock := &lockedClock{now: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)}
	session := &fakeSession{cleared: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Run(ctx, session, clock, DefaultBoundary(), time.Millisecond, quietLog())
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancellation")
	}
}
