// Package appsscript delivers finalized batches to the backend sheet
// endpoint. The transport is request/response: one POST carries the whole
// batch, success is all-or-nothing per call. The endpoint keeps no dedup
// key, so a client-side timeout after a server-side commit duplicates rows
// on retry; the batch_id field is sent on every attempt so the backend can
// close that gap without a client change.
package appsscript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"maletas/internal/domain"
	"maletas/internal/ports"
	"maletas/internal/retry"
)

var (
	// ErrEmptyBatch rejects a send before any network call is made.
	ErrEmptyBatch = errors.New("no records to submit")

	// ErrEndpointNotConfigured marks a misconfigured endpoint. It is
	// fatal for the submission attempt and never retried.
	ErrEndpointNotConfigured = errors.New("submission endpoint not configured")
)

// WireRecord is the flattened, string-encoded form of a record. Capture
// metadata that is not stored per-record (user, shift) is filled in from the
// session metadata at format time.
type WireRecord struct {
	Code         string `json:"code"`
	Categories   string `json:"categories"`
	Observation  string `json:"observation"`
	DateTime     string `json:"dateTime"`
	User         string `json:"user"`
	Shift        string `json:"shift"`
	HasSignature bool   `json:"hasSignature"`
}

// Config carries the transport knobs; see config.Load for defaults.
type Config struct {
	Endpoint     string
	Source       string
	SendTimeout  time.Duration
	ProbeTimeout time.Duration
	MaxAttempts  int
	BackoffUnit  time.Duration
}

// Client implements ports.Submitter.
type Client struct {
	cfg   Config
	http  *http.Client
	clock ports.Clock
	sleep retry.SleepFunc
	log   *logrus.Logger
}

func New(cfg Config, clock ports.Clock, log *logrus.Logger) *Client {
	return &Client{
		cfg:   cfg,
		http:  &http.Client{},
		clock: clock,
		sleep: retry.Sleep,
		log:   log,
	}
}

// Format maps a record and the batch metadata into the wire shape.
func Format(rec domain.Record, meta domain.SessionMetadata) WireRecord {
	user := strings.TrimSpace(meta.User)
	if user == "" {
		user = "desconocido"
	}
	return WireRecord{
		Code:         rec.Code,
		Categories:   rec.FormatCategories(),
		Observation:  rec.Observation,
		DateTime:     domain.FormatDateTime(rec.CapturedAt),
		User:         user,
		Shift:        string(rec.Shift),
		HasSignature: rec.HasSignature,
	}
}

// endpointConfigured is the basic well-formedness check: an absolute
// http(s) URL with a host.
func (c *Client) endpointConfigured() bool {
	u, err := url.Parse(c.cfg.Endpoint)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// send issues one submission attempt with the hard send timeout. Canceling
// the context aborts the in-flight call, so retries never pile up sockets.
func (c *Client) send(ctx context.Context, wires []WireRecord, batchID string) error {
	payload, err := json.Marshal(wires)
	if err != nil {
		return retry.Permanent(fmt.Errorf("encoding records: %w", err))
	}

	form := url.Values{}
	form.Set("action", "addRecords")
	form.Set("records", string(payload))
	form.Set("timestamp", c.clock.Now().Format(time.RFC3339))
	form.Set("source", c.cfg.Source)
	form.Set("batch_id", batchID)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.SendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return retry.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("submission timed out after %s", c.cfg.SendTimeout)
		}
		return fmt.Errorf("submission request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("http error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	// The endpoint reports application failures inside a 200 body.
	var appResp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &appResp) == nil && appResp.Error != "" {
		return fmt.Errorf("backend rejected batch: %s", appResp.Error)
	}
	return nil
}

// SendWithRetry submits the batch with bounded retries and linear backoff.
// The first success short-circuits; exhaustion surfaces an error naming the
// attempt count and wrapping the last failure. One batch id covers every
// attempt of the same batch.
func (c *Client) SendWithRetry(ctx context.Context, records []domain.Record, meta domain.SessionMetadata) (ports.SubmissionResult, error) {
	if len(records) == 0 {
		return ports.SubmissionResult{}, ErrEmptyBatch
	}
	if !c.endpointConfigured() {
		return ports.SubmissionResult{}, ErrEndpointNotConfigured
	}

	wires := make([]WireRecord, len(records))
	for i, rec := range records {
		wires[i] = Format(rec, meta)
	}
	batchID := uuid.NewString()

	res, err := retry.Do(ctx, c.cfg.MaxAttempts, retry.Linear(c.cfg.BackoffUnit), c.sleep, func(ctx context.Context) error {
		err := c.send(ctx, wires, batchID)
		if err != nil {
			c.log.WithFields(logrus.Fields{
				"batch_id": batchID,
				"records":  len(wires),
			}).WithError(err).Warn("submission attempt failed")
		}
		return err
	})
	if err != nil {
		return ports.SubmissionResult{}, err
	}

	c.log.WithFields(logrus.Fields{
		"batch_id": batchID,
		"records":  len(wires),
		"attempt":  res.Attempt,
	}).Info("batch submitted")
	return ports.SubmissionResult{
		Attempt:      res.Attempt,
		RecordsCount: len(wires),
		BatchID:      batchID,
	}, nil
}

// Ping is a connectivity probe with its own shorter timeout. Diagnostics
// only; it never gates SendWithRetry.
func (c *Client) Ping(ctx context.Context) error {
	if !c.endpointConfigured() {
		return ErrEndpointNotConfigured
	}

	form := url.Values{}
	form.Set("action", "ping")
	form.Set("timestamp", c.clock.Now().Format(time.RFC3339))

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("connectivity probe: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("connectivity probe: http %d", resp.StatusCode)
	}
	return nil
}
