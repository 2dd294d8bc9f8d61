package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	p := DefaultShiftPolicy()

	tests := []struct {
		name string
		at   time.Time
		want ShiftLabel
	}{
		{name: "early boundary opens", at: at(4, 0), want: "BRC-ERC"},
		{name: "late morning", at: at(12, 59), want: "BRC-ERC"},
		{name: "late boundary", at: at(13, 0), want: "IRC-KRC"},
		{name: "evening", at: at(23, 59), want: "IRC-KRC"},
		{name: "after midnight belongs to late", at: at(0, 30), want: "IRC-KRC"},
		{name: "just before early start", at: at(3, 59), want: "IRC-KRC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Classify(tt.at))
		})
	}
}

func TestCanFinalize(t *testing.T) {
	p := DefaultShiftPolicy()

	tests := []struct {
		name    string
		shift   ShiftLabel
		at      time.Time
		allowed bool
	}{
		{name: "early blocked before noon", shift: "BRC-ERC", at: at(11, 59), allowed: false},
		{name: "early opens at noon", shift: "BRC-ERC", at: at(12, 0), allowed: true},
		{name: "early still open past midnight", shift: "BRC-ERC", at: at(2, 0), allowed: true},
		{name: "early closes when next shift starts", shift: "BRC-ERC", at: at(4, 0), allowed: false},
		{name: "late blocked before nine", shift: "IRC-KRC", at: at(20, 59), allowed: false},
		{name: "late opens at nine", shift: "IRC-KRC", at: at(21, 0), allowed: true},
		{name: "late open past midnight", shift: "IRC-KRC", at: at(3, 30), allowed: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := p.CanFinalize(tt.shift, tt.at)
			assert.Equal(t, tt.allowed, gate.Allowed)
			if !tt.allowed {
				assert.Contains(t, gate.Reason, string(tt.shift))
			}
		})
	}
}
