package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"maletas/internal/domain"
	"maletas/internal/ledger"
	"maletas/internal/ports"
)

var (
	// ErrNothingToSubmit rejects a finalize on an empty ledger.
	ErrNothingToSubmit = errors.New("no records to submit")

	// ErrOperatorRequired rejects a finalize without an operator name.
	ErrOperatorRequired = errors.New("operator name is required")

	// ErrSubmissionInFlight rejects a second finalize while one is still
	// running. Scanning stays open; only the finalize trigger is guarded.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")

	// ErrGateClosed wraps the classifier's reason when the time window for
	// the shift has not opened yet.
	ErrGateClosed = errors.New("submission window closed")
)

// FinalizeResult is the operator-facing summary of a successful finalize.
// Advisory is non-empty when the batch was below the recommended minimum;
// it never blocks submission.
type FinalizeResult struct {
	Count    int
	Attempt  int
	BatchID  string
	Shift    domain.ShiftLabel
	Advisory string
}

// Coordinator runs the finalize protocol: validate, gate, persist, submit,
// reset. It owns the ledger instance and the single re-entrancy guard.
type Coordinator struct {
	ledger    *ledger.Ledger
	store     *Store
	submitter ports.Submitter
	clock     ports.Clock
	policy    domain.ShiftPolicy
	minCount  int
	log       *logrus.Logger

	sending atomic.Bool
}

func NewCoordinator(l *ledger.Ledger, store *Store, submitter ports.Submitter, clock ports.Clock, policy domain.ShiftPolicy, minCount int, log *logrus.Logger) *Coordinator {
	return &Coordinator{
		ledger:    l,
		store:     store,
		submitter: submitter,
		clock:     clock,
		policy:    policy,
		minCount:  minCount,
		log:       log,
	}
}

func (c *Coordinator) Ledger() *ledger.Ledger { return c.ledger }
func (c *Coordinator) Store() *Store          { return c.store }

// Ping probes the backend endpoint. Advisory only; it never gates a finalize.
func (c *Coordinator) Ping(ctx context.Context) error { return c.submitter.Ping(ctx) }

// AddScan runs the camera path: normalize, then register. The duplicate
// signal is distinct from malformed input so the caller can drive its own
// feedback channel.
func (c *Coordinator) AddScan(ctx context.Context, raw string) (domain.Record, error) {
	code, err := domain.NormalizeScan(raw)
	if err != nil {
		return domain.Record{}, err
	}
	return c.register(ctx, code, raw)
}

// AddManual runs the typed-entry path with the exact-six-digit rule.
func (c *Coordinator) AddManual(ctx context.Context, input string) (domain.Record, error) {
	code, err := domain.NormalizeManual(input)
	if err != nil {
		return domain.Record{}, err
	}
	return c.register(ctx, code, input)
}

func (c *Coordinator) register(ctx context.Context, code, raw string) (domain.Record, error) {
	rec, err := c.ledger.Add(code, raw)
	if err != nil {
		return domain.Record{}, err
	}
	c.mirror(ctx)
	return rec, nil
}

// Mutations below funnel through the ledger and refresh the working mirror
// so a restart mid-shift loses nothing.

func (c *Coordinator) Update(ctx context.Context, code string, upd ledger.Update) (domain.Record, error) {
	rec, err := c.ledger.Update(code, upd)
	if err != nil {
		return domain.Record{}, err
	}
	c.mirror(ctx)
	return rec, nil
}

func (c *Coordinator) ToggleCategory(ctx context.Context, code string, cat domain.Category) (domain.Record, error) {
	rec, err := c.ledger.ToggleCategory(code, cat)
	if err != nil {
		return domain.Record{}, err
	}
	c.mirror(ctx)
	return rec, nil
}

func (c *Coordinator) Remove(ctx context.Context, code string) bool {
	removed := c.ledger.Remove(code)
	if removed {
		c.mirror(ctx)
	}
	return removed
}

func (c *Coordinator) mirror(ctx context.Context) {
	if err := c.store.SaveWorking(ctx, c.ledger.All()); err != nil {
		c.log.WithError(err).Warn("mirroring working batch")
	}
}

// Restore reloads the working mirror into an empty ledger after a restart.
func (c *Coordinator) Restore(ctx context.Context) int {
	if c.ledger.Count() > 0 {
		return 0
	}
	records := c.store.LoadWorking(ctx)
	restored := 0
	for _, rec := range records {
		if c.ledger.Restore(rec) {
			restored++
		}
	}
	return restored
}

// Finalize validates, persists and submits the current ledger as one batch.
//
// The snapshot write happens before the network call so a transport failure
// never loses data. On success exactly the submitted codes leave the ledger:
// records scanned while the batch was in flight belong to the next
// generation and survive.
func (c *Coordinator) Finalize(ctx context.Context, meta domain.SessionMetadata) (FinalizeResult, error) {
	if !c.sending.CompareAndSwap(false, true) {
		return FinalizeResult{}, ErrSubmissionInFlight
	}
	defer c.sending.Store(false)

	if strings.TrimSpace(meta.User) == "" {
		return FinalizeResult{}, ErrOperatorRequired
	}

	batch := c.ledger.All()
	if len(batch) == 0 {
		return FinalizeResult{}, ErrNothingToSubmit
	}

	now := c.clock.Now()
	shift := domain.ShiftLabel(meta.Shift)
	if shift == "" {
		shift = c.policy.Classify(now)
		meta.Shift = string(shift)
	}
	if gate := c.policy.CanFinalize(shift, now); !gate.Allowed {
		return FinalizeResult{}, fmt.Errorf("%w: %s", ErrGateClosed, gate.Reason)
	}

	advisory := ""
	if len(batch) < c.minCount {
		advisory = fmt.Sprintf("only %d records captured; at least %d per shift are recommended", len(batch), c.minCount)
	}

	// Persisted regardless of the submission outcome.
	if err := c.store.SavePending(ctx, batch); err != nil {
		c.log.WithError(err).Warn("persisting pending snapshot")
	}
	if err := c.store.SaveMetadata(ctx, meta); err != nil {
		c.log.WithError(err).Warn("persisting session metadata")
	}

	res, err := c.submitter.SendWithRetry(ctx, batch, meta)
	if err != nil {
		// Ledger and snapshot stay untouched; the operator may retry
		// the whole finalize action.
		return FinalizeResult{}, err
	}

	codes := make([]string, len(batch))
	for i, rec := range batch {
		codes[i] = rec.Code
	}
	c.ledger.RemoveBatch(codes)
	c.mirror(ctx)
	if err := c.store.ClearPending(ctx); err != nil {
		c.log.WithError(err).Warn("clearing pending snapshot")
	}

	c.log.WithFields(logrus.Fields{
		"records":  res.RecordsCount,
		"attempt":  res.Attempt,
		"batch_id": res.BatchID,
		"shift":    shift,
	}).Info("finalize complete")

	return FinalizeResult{
		Count:    res.RecordsCount,
		Attempt:  res.Attempt,
		BatchID:  res.BatchID,
		Shift:    shift,
		Advisory: advisory,
	}, nil
}

// ClearAll wipes the ledger and both persisted slots. Used by the explicit
// operator wipe and by the day-boundary expiry; written defensively so a
// wipe racing a finished submission is a no-op.
func (c *Coordinator) ClearAll(ctx context.Context) {
	c.ledger.Clear()
	if err := c.store.ClearWorking(ctx); err != nil {
		c.log.WithError(err).Warn("clearing working batch")
	}
	if err := c.store.ClearPending(ctx); err != nil {
		c.log.WithError(err).Warn("clearing pending snapshot")
	}
	if err := c.store.ClearMetadata(ctx); err != nil {
		c.log.WithError(err).Warn("clearing session metadata")
	}
}
