package ports

import (
	"context"
	"time"

	"maletas/internal/domain"
)

// KV is the persistence surface the session store writes through. The
// concrete substrate (embedded Badger by default, Postgres for shared hosts)
// is an adapter choice; the core never touches it directly.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Submitter delivers a finalized batch to the remote backend.
type Submitter interface {
	// SendWithRetry returns the attempt that succeeded and the batch id
	// that was sent on every attempt of this batch.
	SendWithRetry(ctx context.Context, records []domain.Record, meta domain.SessionMetadata) (SubmissionResult, error)
	// Ping is a lightweight connectivity probe for diagnostics; it never
	// gates submission.
	Ping(ctx context.Context) error
}

// SubmissionResult reports a successful delivery.
type SubmissionResult struct {
	Attempt      int
	RecordsCount int
	BatchID      string
}

// Clock abstracts time so shift gates, expiry and capture stamps are
// testable with a frozen instant.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
