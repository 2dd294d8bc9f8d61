package domain

import (
	"sort"
	"strings"
	"time"
)

// Core domain models. API types are generated from OpenAPI and sit in
// internal/api; keep these decoupled where helpful.

// Category is one of the fixed damage-category tags.
type Category string

const (
	CategoryHandleBroken Category = "A"
	CategoryCaseBroken   Category = "B"
	CategoryWheelBroken  Category = "C"
)

// AllCategories lists the enumeration in the fixed wire order.
var AllCategories = []Category{CategoryHandleBroken, CategoryCaseBroken, CategoryWheelBroken}

// ValidCategory reports whether c belongs to the fixed enumeration.
func ValidCategory(c Category) bool {
	for _, v := range AllCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ShiftLabel names a work shift. The concrete label strings come from
// configuration (ShiftPolicy); BRC-ERC and IRC-KRC are the operational
// defaults.
type ShiftLabel string

// Record is one physical bag under inspection. Code, RawCode, CapturedAt and
// Shift are fixed at capture time; only Categories, Observation and
// HasSignature may change afterwards.
type Record struct {
	Code         string             `json:"code"`
	RawCode      string             `json:"rawCode,omitempty"`
	Categories   map[Category]bool  `json:"categories"`
	Observation  string             `json:"observation"`
	HasSignature bool               `json:"hasSignature"`
	CapturedAt   time.Time          `json:"capturedAt"`
	Shift        ShiftLabel         `json:"shift"`
}

// Clone returns a deep copy so callers can hand records across goroutines
// without sharing the category map.
func (r Record) Clone() Record {
	out := r
	out.Categories = make(map[Category]bool, len(r.Categories))
	for k, v := range r.Categories {
		if v {
			out.Categories[k] = true
		}
	}
	return out
}

// ActiveCategories returns the set members in fixed A, B, C order.
func (r Record) ActiveCategories() []Category {
	var active []Category
	for _, c := range AllCategories {
		if r.Categories[c] {
			active = append(active, c)
		}
	}
	return active
}

// FormatCategories renders the category set as the comma-joined string the
// backend sheet expects, e.g. "A, C". Empty set renders as "".
func (r Record) FormatCategories() string {
	active := r.ActiveCategories()
	parts := make([]string, len(active))
	for i, c := range active {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

// FormatDateTime renders a capture timestamp as dd/mm/yyyy HH:mm, the format
// the backend sheet expects.
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// SessionMetadata is attached to a finalized batch at submission time, not at
// capture time. It persists independently of records so it can pre-populate
// the next finalize dialog.
type SessionMetadata struct {
	User    string `json:"user"`
	Shift   string `json:"shift"`
	Airline string `json:"airline"`
}

// Snapshot is the durable form of a batch. ExpiresAt is always 23:59:00 of
// the calendar day SavedAt falls on.
type Snapshot struct {
	Records   []Record  `json:"records"`
	SavedAt   time.Time `json:"savedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the snapshot must be treated as absent at the
// given instant.
func (s Snapshot) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// EndOfDay returns 23:59:00 local time on t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, t.Location())
}

// MergeRecords unions old and fresh by code, last-write-wins: wherever codes
// collide the record from fresh replaces the one from old. The result is
// ordered newest-first by capture time, matching ledger listing order.
func MergeRecords(old, fresh []Record) []Record {
	byCode := make(map[string]Record, len(old)+len(fresh))
	for _, r := range old {
		byCode[r.Code] = r
	}
	for _, r := range fresh {
		byCode[r.Code] = r
	}
	out := make([]Record, 0, len(byCode))
	for _, r := range byCode {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CapturedAt.Equal(out[j].CapturedAt) {
			return out[i].CapturedAt.After(out[j].CapturedAt)
		}
		return out[i].Code < out[j].Code
	})
	return out
}
