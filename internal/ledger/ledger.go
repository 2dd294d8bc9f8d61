// Package ledger holds the authoritative in-memory set of not-yet-submitted
// records. One instance per capture session, owned by the coordinator;
// collaborators receive it by handle rather than reaching for shared state.
package ledger

import (
	"errors"
	"sort"
	"sync"

	"maletas/internal/domain"
	"maletas/internal/ports"
)

var (
	// ErrDuplicate signals that the code is already registered. It is a
	// product-visible condition with its own feedback channel, not a
	// generic failure: the existing record is left untouched.
	ErrDuplicate = errors.New("bag already registered")

	// ErrNotFound signals an edit against a code that is not in the ledger.
	ErrNotFound = errors.New("record not found")
)

// Update carries the mutable fields of a record. Nil members are left
// untouched; Code, CapturedAt and Shift can never be changed through it.
type Update struct {
	Categories   map[domain.Category]bool
	Observation  *string
	HasSignature *bool
}

// Ledger is safe for concurrent use by the HTTP handlers and the expiry
// worker. A single coarse mutex is enough at tens of records per shift.
type Ledger struct {
	mu      sync.Mutex
	records map[string]domain.Record
	clock   ports.Clock
	policy  domain.ShiftPolicy

	// defaultSignature is the counter-flow policy: new scans start as
	// signed unless the operator toggles otherwise.
	defaultSignature bool
}

func New(clock ports.Clock, policy domain.ShiftPolicy) *Ledger {
	return &Ledger{
		records:          make(map[string]domain.Record),
		clock:            clock,
		policy:           policy,
		defaultSignature: true,
	}
}

// Add registers a new record under code. The capture timestamp and shift are
// stamped here, once; category edits later never recompute them.
func (l *Ledger) Add(code, rawCode string) (domain.Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.records[code]; exists {
		return domain.Record{}, ErrDuplicate
	}

	now := l.clock.Now()
	rec := domain.Record{
		Code:         code,
		RawCode:      rawCode,
		Categories:   make(map[domain.Category]bool),
		HasSignature: l.defaultSignature,
		CapturedAt:   now,
		Shift:        l.policy.Classify(now),
	}
	l.records[code] = rec
	return rec.Clone(), nil
}

// Restore re-inserts a previously captured record, keeping its original
// capture timestamp and shift. Used when reloading the working mirror after
// a restart; reports false when the code is already present.
func (l *Ledger) Restore(rec domain.Record) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.records[rec.Code]; exists {
		return false
	}
	if rec.Categories == nil {
		rec.Categories = make(map[domain.Category]bool)
	}
	l.records[rec.Code] = rec.Clone()
	return true
}

// Update merges the mutable fields into the stored record.
func (l *Ledger) Update(code string, upd Update) (domain.Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, exists := l.records[code]
	if !exists {
		return domain.Record{}, ErrNotFound
	}
	if upd.Categories != nil {
		for _, c := range domain.AllCategories {
			if v, present := upd.Categories[c]; present {
				rec.Categories[c] = v
			}
		}
	}
	if upd.Observation != nil {
		rec.Observation = *upd.Observation
	}
	if upd.HasSignature != nil {
		rec.HasSignature = *upd.HasSignature
	}
	l.records[code] = rec
	return rec.Clone(), nil
}

// ToggleCategory flips a single category tag. Toggling twice restores the
// original state.
func (l *Ledger) ToggleCategory(code string, cat domain.Category) (domain.Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, exists := l.records[code]
	if !exists {
		return domain.Record{}, ErrNotFound
	}
	if !domain.ValidCategory(cat) {
		return rec.Clone(), nil
	}
	rec.Categories[cat] = !rec.Categories[cat]
	l.records[code] = rec
	return rec.Clone(), nil
}

// Remove deletes a record by code. Idempotent: reports whether anything was
// actually removed, never errors on a missing code.
func (l *Ledger) Remove(code string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, exists := l.records[code]
	delete(l.records, code)
	return exists
}

// RemoveBatch deletes every listed code. Used for post-submission cleanup so
// records scanned while the batch was in flight survive; missing codes (for
// example after a day-boundary wipe) are silently skipped.
func (l *Ledger) RemoveBatch(codes []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range codes {
		delete(l.records, c)
	}
}

func (l *Ledger) Has(code string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, exists := l.records[code]
	return exists
}

// Get returns a copy of the record, or false when absent.
func (l *Ledger) Get(code string) (domain.Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, exists := l.records[code]
	if !exists {
		return domain.Record{}, false
	}
	return rec.Clone(), true
}

// All returns copies of every record, newest-first by capture time.
func (l *Ledger) All() []domain.Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Record, 0, len(l.records))
	for _, rec := range l.records {
		out = append(out, rec.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CapturedAt.Equal(out[j].CapturedAt) {
			return out[i].CapturedAt.After(out[j].CapturedAt)
		}
		return out[i].Code < out[j].Code
	})
	return out
}

func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = make(map[string]domain.Record)
}
