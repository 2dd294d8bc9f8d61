package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maletas/internal/domain"
	"maletas/internal/ledger"
	"maletas/internal/ports"
	"maletas/internal/session"
)

type memKV struct{ data map[string][]byte }

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

type fakeSubmitter struct {
	sent    int
	err     error
	pingErr error
}

func (f *fakeSubmitter) SendWithRetry(_ context.Context, records []domain.Record, _ domain.SessionMetadata) (ports.SubmissionResult, error) {
	if f.err != nil {
		return ports.SubmissionResult{}, f.err
	}
	f.sent += len(records)
	return ports.SubmissionResult{Attempt: 1, RecordsCount: len(records), BatchID: "batch-1"}, nil
}

func (f *fakeSubmitter) Ping(context.Context) error { return f.pingErr }

func newTestServer(sub *fakeSubmitter) (*httptest.Server, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)}
	policy := domain.DefaultShiftPolicy()
	log := logrus.New()
	log.SetOutput(io.Discard)

	led := ledger.New(clock, policy)
	store := session.NewStore(newMemKV(), clock, log)
	coord := session.NewCoordinator(led, store, sub, clock, policy, 50, log)

	return httptest.NewServer(New(coord).Routes()), clock
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestScanLifecycle(t *testing.T) {
	srv, _ := newTestServer(&fakeSubmitter{})
	defer srv.Close()

	// Camera path: long tag reduced to trailing six digits.
	resp := postJSON(t, srv.URL+"/scans", map[string]string{"raw": "AB123456789012"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Record struct {
			Code  string `json:"code"`
			Shift string `json:"shift"`
		} `json:"record"`
	}
	decode(t, resp, &created)
	assert.Equal(t, "789012", created.Record.Code)
	assert.Equal(t, "BRC-ERC", created.Record.Shift)

	// Same bag again is the duplicate signal.
	resp = postJSON(t, srv.URL+"/scans", map[string]string{"raw": "789012"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var dup struct {
		Signal *string `json:"signal"`
	}
	decode(t, resp, &dup)
	require.NotNil(t, dup.Signal)
	assert.Equal(t, "duplicate", *dup.Signal)

	// Malformed input is a different failure.
	resp = postJSON(t, srv.URL+"/scans", map[string]string{"raw": "12345"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/records")
	require.NoError(t, err)
	var list struct {
		Count int `json:"count"`
	}
	decode(t, resp, &list)
	assert.Equal(t, 1, list.Count)
}

func TestManualEntryRejectsWrongLength(t *testing.T) {
	srv, _ := newTestServer(&fakeSubmitter{})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/records", map[string]string{"code": "1234567"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/records", map[string]string{"code": "123456"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestCategoryToggleAndUpdate(t *testing.T) {
	srv, _ := newTestServer(&fakeSubmitter{})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/records", map[string]string{"code": "123456"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/records/123456/categories/C", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled struct {
		Record struct {
			Categories []string `json:"categories"`
		} `json:"record"`
	}
	decode(t, resp, &toggled)
	assert.Equal(t, []string{"C"}, toggled.Record.Categories)

	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/records/123456", bytes.NewReader([]byte(`{"observation":"wheel missing","hasSignature":false}`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated struct {
		Record struct {
			Observation  string `json:"observation"`
			HasSignature bool   `json:"hasSignature"`
		} `json:"record"`
	}
	decode(t, resp, &updated)
	assert.Equal(t, "wheel missing", updated.Record.Observation)
	assert.False(t, updated.Record.HasSignature)

	resp = postJSON(t, srv.URL+"/records/999999/categories/A", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestDeleteRecordIsIdempotent(t *testing.T) {
	srv, _ := newTestServer(&fakeSubmitter{})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/records", map[string]string{"code": "123456"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/records/123456", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var del struct {
		Removed bool `json:"removed"`
	}
	decode(t, resp, &del)
	assert.True(t, del.Removed)

	resp, err = http.DefaultClient.Do(req.Clone(context.Background()))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &del)
	assert.False(t, del.Removed)
}

func TestFinalizeOverHTTP(t *testing.T) {
	sub := &fakeSubmitter{}
	srv, clock := newTestServer(sub)
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/records", map[string]string{"code": "123456"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Gate still closed at 09:00.
	resp = postJSON(t, srv.URL+"/session/finalize", map[string]string{"user": "mjimenez"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	clock.now = time.Date(2026, time.March, 10, 12, 30, 0, 0, time.UTC)
	resp = postJSON(t, srv.URL+"/session/finalize", map[string]string{"user": "mjimenez", "airline": "LATAM"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fin struct {
		Count    int     `json:"count"`
		BatchId  string  `json:"batchId"`
		Shift    string  `json:"shift"`
		Advisory *string `json:"advisory"`
	}
	decode(t, resp, &fin)
	assert.Equal(t, 1, fin.Count)
	assert.Equal(t, "batch-1", fin.BatchId)
	assert.Equal(t, "BRC-ERC", fin.Shift)
	require.NotNil(t, fin.Advisory)
	assert.Contains(t, *fin.Advisory, "recommended")
	assert.Equal(t, 1, sub.sent)

	// Nothing left to submit afterwards.
	resp = postJSON(t, srv.URL+"/session/finalize", map[string]string{"user": "mjimenez"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	// Metadata survives for the next dialog.
	resp, err := http.Get(srv.URL + "/session/metadata")
	require.NoError(t, err)
	var meta struct {
		User    string `json:"user"`
		Airline string `json:"airline"`
	}
	decode(t, resp, &meta)
	assert.Equal(t, "mjimenez", meta.User)
	assert.Equal(t, "LATAM", meta.Airline)
}

func TestFinalizeTransportFailure(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("failed after 3 attempts: endpoint unreachable")}
	srv, clock := newTestServer(sub)
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/records", map[string]string{"code": "123456"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	clock.now = time.Date(2026, time.March, 10, 12, 30, 0, 0, time.UTC)
	resp = postJSON(t, srv.URL+"/session/finalize", map[string]string{"user": "mjimenez"})
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	var msg struct {
		Message string `json:"message"`
	}
	decode(t, resp, &msg)
	assert.Contains(t, msg.Message, "failed after 3 attempts")
}

func TestSessionWipeAndConnectivity(t *testing.T) {
	sub := &fakeSubmitter{pingErr: errors.New("connectivity probe: http 503")}
	srv, _ := newTestServer(sub)
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/records", map[string]string{"code": "123456"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/session", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/records")
	require.NoError(t, err)
	var list struct {
		Count int `json:"count"`
	}
	decode(t, resp, &list)
	assert.Equal(t, 0, list.Count)

	resp, err = http.Get(srv.URL + "/session/connectivity")
	require.NoError(t, err)
	var conn struct {
		Ok      bool   `json:"ok"`
		Message string `json:"message"`
	}
	decode(t, resp, &conn)
	assert.False(t, conn.Ok)
	assert.Contains(t, conn.Message, "503")
}
