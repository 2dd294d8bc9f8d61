package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(code string, capturedAt time.Time) Record {
	return Record{
		Code:       code,
		Categories: map[Category]bool{},
		CapturedAt: capturedAt,
	}
}

func TestMergeRecordsLastWriteWins(t *testing.T) {
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	old := []Record{rec("111111", base), rec("222222", base.Add(time.Minute))}
	updated := rec("222222", base.Add(2*time.Minute))
	updated.Observation = "wheel cracked"
	fresh := []Record{updated, rec("333333", base.Add(3*time.Minute))}

	merged := MergeRecords(old, fresh)
	require.Len(t, merged, 3)

	// Newest first, and the colliding code carries the fresh version.
	assert.Equal(t, "333333", merged[0].Code)
	assert.Equal(t, "222222", merged[1].Code)
	assert.Equal(t, "wheel cracked", merged[1].Observation)
	assert.Equal(t, "111111", merged[2].Code)
}

func TestMergeRecordsEmptySides(t *testing.T) {
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	only := []Record{rec("111111", base)}

	assert.Equal(t, only, MergeRecords(nil, only))
	assert.Equal(t, only, MergeRecords(only, nil))
	assert.Empty(t, MergeRecords(nil, nil))
}

func TestSnapshotExpiry(t *testing.T) {
	saved := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)
	snap := Snapshot{SavedAt: saved, ExpiresAt: EndOfDay(saved)}

	assert.Equal(t, time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC), snap.ExpiresAt)
	assert.False(t, snap.Expired(saved))
	assert.False(t, snap.Expired(snap.ExpiresAt))
	assert.True(t, snap.Expired(snap.ExpiresAt.Add(time.Second)))
	assert.True(t, snap.Expired(saved.AddDate(0, 0, 1)))
}

func TestFormatCategories(t *testing.T) {
	r := Record{Categories: map[Category]bool{
		CategoryWheelBroken:  true,
		CategoryHandleBroken: true,
		CategoryCaseBroken:   false,
	}}
	assert.Equal(t, "A, C", r.FormatCategories())

	r.Categories = map[Category]bool{}
	assert.Equal(t, "", r.FormatCategories())
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, time.March, 5, 8, 7, 42, 0, time.UTC)
	assert.Equal(t, "05/03/2026 08:07", FormatDateTime(ts))
}

func TestCloneIsolatesCategories(t *testing.T) {
	r := Record{Code: "123456", Categories: map[Category]bool{CategoryHandleBroken: true}}
	c := r.Clone()
	c.Categories[CategoryCaseBroken] = true

	assert.False(t, r.Categories[CategoryCaseBroken])
	assert.True(t, c.Categories[CategoryHandleBroken])
}
