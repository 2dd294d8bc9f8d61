package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maletas/internal/domain"
)

// memKV is an in-memory stand-in for the KV port.
type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV { return &memKV{data: make(map[string][]byte)} }

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Put(_ context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memKV) Close() error { return nil }

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testRecord(code string, capturedAt time.Time) domain.Record {
	return domain.Record{
		Code:         code,
		Categories:   map[domain.Category]bool{},
		HasSignature: true,
		CapturedAt:   capturedAt,
		Shift:        "BRC-ERC",
	}
}

func newTestStore() (*Store, *memKV, *fakeClock) {
	kv := newMemKV()
	clock := &fakeClock{now: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)}
	return NewStore(kv, clock, quietLog()), kv, clock
}

func TestWorkingMirrorRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _, clock := newTestStore()

	records := []domain.Record{testRecord("123456", clock.now)}
	require.NoError(t, store.SaveWorking(ctx, records))

	got := store.LoadWorking(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "123456", got[0].Code)
	assert.True(t, got[0].CapturedAt.Equal(clock.now))

	require.NoError(t, store.ClearWorking(ctx))
	assert.Empty(t, store.LoadWorking(ctx))
}

func TestSavePendingMergesByCode(t *testing.T) {
	ctx := context.Background()
	store, _, clock := newTestStore()

	first := testRecord("111111", clock.now)
	require.NoError(t, store.SavePending(ctx, []domain.Record{first}))

	// Second save updates the colliding code and adds a new one.
	updated := testRecord("111111", clock.now.Add(time.Minute))
	updated.Observation = "handle torn off"
	second := testRecord("222222", clock.now.Add(2*time.Minute))
	require.NoError(t, store.SavePending(ctx, []domain.Record{updated, second}))

	got := store.LoadPending(ctx)
	require.Len(t, got, 2)

	byCode := map[string]domain.Record{}
	for _, r := range got {
		byCode[r.Code] = r
	}
	assert.Equal(t, "handle torn off", byCode["111111"].Observation)
	assert.Contains(t, byCode, "222222")
}

func TestLoadPendingExpiresAtDayBoundary(t *testing.T) {
	ctx := context.Background()
	store, kv, clock := newTestStore()

	require.NoError(t, store.SavePending(ctx, []domain.Record{testRecord("123456", clock.now)}))

	// Still valid at the expiry instant itself.
	clock.now = domain.EndOfDay(clock.now)
	assert.Len(t, store.LoadPending(ctx), 1)

	// One second past 23:59:00 the snapshot is absent and deleted.
	clock.now = clock.now.Add(time.Second)
	assert.Empty(t, store.LoadPending(ctx))
	_, present, err := kv.Get(ctx, keyPending)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestLoadPendingToleratesCorruptPayload(t *testing.T) {
	ctx := context.Background()
	store, kv, _ := newTestStore()

	require.NoError(t, kv.Put(ctx, keyPending, []byte("{not json")))
	assert.Empty(t, store.LoadPending(ctx))

	require.NoError(t, kv.Put(ctx, keyWorking, []byte("[broken")))
	assert.Empty(t, store.LoadWorking(ctx))
}

func TestMetadataRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newTestStore()

	_, ok := store.LoadMetadata(ctx)
	assert.False(t, ok)

	meta := domain.SessionMetadata{User: "mjimenez", Shift: "BRC-ERC", Airline: "LATAM"}
	require.NoError(t, store.SaveMetadata(ctx, meta))

	got, ok := store.LoadMetadata(ctx)
	require.True(t, ok)
	assert.Equal(t, meta, got)

	require.NoError(t, store.ClearMetadata(ctx))
	_, ok = store.LoadMetadata(ctx)
	assert.False(t, ok)
}
