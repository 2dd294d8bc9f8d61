package domain

import (
	"fmt"
	"time"
)

// ShiftPolicy maps timestamps to work shifts and gates when a shift's batch
// may be finalized. All hours are local-time hours; the boundaries are
// configuration, not business rules baked into code. With the defaults:
//
//	04:00–12:59  early shift (BRC-ERC)
//	13:00–23:59  late shift (IRC-KRC)
//	00:00–03:59  late shift, by operational convention
//
// The early batch may be finalized from 12:00 (wrapping past midnight until
// 04:00), the late batch from 21:00.
type ShiftPolicy struct {
	EarlyStartHour    int
	LateStartHour     int
	EarlyFinalizeHour int
	LateFinalizeHour  int
	EarlyLabel        ShiftLabel
	LateLabel         ShiftLabel
}

// DefaultShiftPolicy returns the operational defaults.
func DefaultShiftPolicy() ShiftPolicy {
	return ShiftPolicy{
		EarlyStartHour:    4,
		LateStartHour:     13,
		EarlyFinalizeHour: 12,
		LateFinalizeHour:  21,
		EarlyLabel:        "BRC-ERC",
		LateLabel:         "IRC-KRC",
	}
}

// Classify maps a timestamp to a shift label. Computed once at capture time
// and stored; never recomputed when categories are edited later.
func (p ShiftPolicy) Classify(t time.Time) ShiftLabel {
	h := t.Hour()
	if h >= p.EarlyStartHour && h < p.LateStartHour {
		return p.EarlyLabel
	}
	return p.LateLabel
}

// Gate is the outcome of a finalize-time check.
type Gate struct {
	Allowed bool
	Reason  string
}

// CanFinalize reports whether a batch classified under shift may be
// submitted at the current time. The window opens at the shift's finalize
// hour and wraps past midnight until the early shift starts again.
func (p ShiftPolicy) CanFinalize(shift ShiftLabel, t time.Time) Gate {
	h := t.Hour()
	openHour := p.LateFinalizeHour
	if shift == p.EarlyLabel {
		openHour = p.EarlyFinalizeHour
	}
	if h >= openHour || h < p.EarlyStartHour {
		return Gate{Allowed: true}
	}
	return Gate{
		Allowed: false,
		Reason:  fmt.Sprintf("shift %s can only submit records from %02d:00 onward", shift, openHour),
	}
}
