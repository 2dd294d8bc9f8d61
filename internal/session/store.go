// Package session owns durable snapshotting and the finalize protocol.
package session

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"maletas/internal/domain"
	"maletas/internal/ports"
)

// Persistence slots. "working" mirrors the live ledger so a restart mid-shift
// loses nothing; "pending" holds a finalized-but-unsubmitted batch; "metadata"
// pre-populates the next finalize dialog.
const (
	keyWorking  = "session/working"
	keyPending  = "session/pending"
	keyMetadata = "session/metadata"
)

// Store serializes batches through the KV port with day-scoped expiry and
// merge-on-write. Read failures and corrupt payloads degrade to "no prior
// snapshot": they are logged, never propagated.
type Store struct {
	kv    ports.KV
	clock ports.Clock
	log   *logrus.Logger
}

func NewStore(kv ports.KV, clock ports.Clock, log *logrus.Logger) *Store {
	return &Store{kv: kv, clock: clock, log: log}
}

// SaveWorking overwrites the live-ledger mirror.
func (s *Store) SaveWorking(ctx context.Context, records []domain.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, keyWorking, data)
}

// LoadWorking returns the live-ledger mirror, empty on any read problem.
func (s *Store) LoadWorking(ctx context.Context) []domain.Record {
	data, ok, err := s.kv.Get(ctx, keyWorking)
	if err != nil {
		s.log.WithError(err).Warn("reading working batch, defaulting to empty")
		return nil
	}
	if !ok {
		return nil
	}
	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.WithError(err).Warn("corrupt working batch, defaulting to empty")
		return nil
	}
	return records
}

func (s *Store) ClearWorking(ctx context.Context) error {
	return s.kv.Delete(ctx, keyWorking)
}

// SavePending merges records into any unexpired pending snapshot by code
// (new entries win) and writes the result stamped with savedAt = now and
// expiresAt = 23:59:00 of today. Saving batch A then batch B therefore
// yields the same code set as saving their union with B winning.
func (s *Store) SavePending(ctx context.Context, records []domain.Record) error {
	now := s.clock.Now()
	prior := s.LoadPending(ctx)
	snap := domain.Snapshot{
		Records:   domain.MergeRecords(prior, records),
		SavedAt:   now,
		ExpiresAt: domain.EndOfDay(now),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, keyPending, data)
}

// LoadPending returns the pending snapshot's records. An expired snapshot is
// treated as absent and physically deleted as housekeeping.
func (s *Store) LoadPending(ctx context.Context) []domain.Record {
	data, ok, err := s.kv.Get(ctx, keyPending)
	if err != nil {
		s.log.WithError(err).Warn("reading pending snapshot, defaulting to empty")
		return nil
	}
	if !ok {
		return nil
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.log.WithError(err).Warn("corrupt pending snapshot, defaulting to empty")
		return nil
	}
	if snap.Expired(s.clock.Now()) {
		if err := s.kv.Delete(ctx, keyPending); err != nil {
			s.log.WithError(err).Warn("deleting expired snapshot")
		}
		return nil
	}
	return snap.Records
}

func (s *Store) ClearPending(ctx context.Context) error {
	return s.kv.Delete(ctx, keyPending)
}

// SaveMetadata overwrites the session metadata used to pre-populate the next
// finalize dialog.
func (s *Store) SaveMetadata(ctx context.Context, meta domain.SessionMetadata) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, keyMetadata, data)
}

// LoadMetadata returns the stored metadata and whether any was present.
func (s *Store) LoadMetadata(ctx context.Context) (domain.SessionMetadata, bool) {
	data, ok, err := s.kv.Get(ctx, keyMetadata)
	if err != nil || !ok {
		if err != nil {
			s.log.WithError(err).Warn("reading session metadata")
		}
		return domain.SessionMetadata{}, false
	}
	var meta domain.SessionMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		s.log.WithError(err).Warn("corrupt session metadata")
		return domain.SessionMetadata{}, false
	}
	return meta, true
}

func (s *Store) ClearMetadata(ctx context.Context) error {
	return s.kv.Delete(ctx, keyMetadata)
}
